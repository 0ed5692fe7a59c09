package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"deltav.dev/deltav/internal/cli/common"
	"deltav.dev/deltav/internal/engine"
	"deltav.dev/deltav/internal/runtime"
	"deltav.dev/deltav/internal/tui"
)

const maxWizardStages = 20

// stageAnswers receives one stage from the wizard prompts
type stageAnswers struct {
	Wet string `survey:"wet"`
	Dry string `survey:"dry"`
	Isp string `survey:"isp"`
}

// newWizardCmd creates the wizard command
func newWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer a few questions to calculate delta-v step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tui.IsTTY() {
				return fmt.Errorf("wizard needs an interactive terminal; use `deltav calc` instead")
			}

			return common.RunWithLogFile(cmd, func(ctx *runtime.Context) error {
				raw, plot, err := askStages(ctx.Config.Session.InitialStages)
				if err != nil {
					return err
				}

				session := ctx.NewSession(0)
				if err := loadStages(session, raw); err != nil {
					return err
				}
				ctx.Splog.Newline()
				return report(ctx, session, plot)
			})
		},
	}

	return cmd
}

func askStages(defaultCount int) ([]engine.RawStage, bool, error) {
	if defaultCount < 1 {
		defaultCount = 1
	}

	var countStr string
	countPrompt := &survey.Input{
		Message: "How many stages does the rocket have?",
		Default: strconv.Itoa(defaultCount),
	}
	if err := survey.AskOne(countPrompt, &countStr, survey.WithValidator(validateStageCount)); err != nil {
		return nil, false, fmt.Errorf("canceled")
	}
	count, _ := strconv.Atoi(strings.TrimSpace(countStr))

	raw := make([]engine.RawStage, 0, count)
	for i := 1; i <= count; i++ {
		var answers stageAnswers
		if err := survey.Ask(stageQuestions(i), &answers); err != nil {
			return nil, false, fmt.Errorf("canceled")
		}
		raw = append(raw, engine.RawStage{Wet: answers.Wet, Dry: answers.Dry, Isp: answers.Isp})
	}

	plot := true
	if err := survey.AskOne(&survey.Confirm{Message: "Plot the breakdown?", Default: true}, &plot); err != nil {
		return nil, false, fmt.Errorf("canceled")
	}

	return raw, plot, nil
}

func stageQuestions(num int) []*survey.Question {
	return []*survey.Question{
		{
			Name:     "wet",
			Prompt:   &survey.Input{Message: fmt.Sprintf("Stage %d wet mass (kg):", num)},
			Validate: survey.ComposeValidators(survey.Required, validatePositiveNumber),
		},
		{
			Name:     "dry",
			Prompt:   &survey.Input{Message: fmt.Sprintf("Stage %d dry mass (kg):", num)},
			Validate: survey.ComposeValidators(survey.Required, validatePositiveNumber),
		},
		{
			Name:     "isp",
			Prompt:   &survey.Input{Message: fmt.Sprintf("Stage %d specific impulse (s):", num)},
			Validate: survey.ComposeValidators(survey.Required, validatePositiveNumber),
		},
	}
}

// validateStageCount accepts a whole number of stages between 1 and maxWizardStages
func validateStageCount(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected text")
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a whole number", s)
	}
	if n < 1 || n > maxWizardStages {
		return fmt.Errorf("enter between 1 and %d stages", maxWizardStages)
	}
	return nil
}

// validatePositiveNumber gives early feedback; the engine still validates every stage
func validatePositiveNumber(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected text")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}
