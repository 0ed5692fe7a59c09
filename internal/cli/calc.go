package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deltav.dev/deltav/internal/actions"
	"deltav.dev/deltav/internal/chart"
	"deltav.dev/deltav/internal/cli/common"
	"deltav.dev/deltav/internal/demo"
	"deltav.dev/deltav/internal/engine"
	"deltav.dev/deltav/internal/runtime"
	"deltav.dev/deltav/internal/stage"
	"deltav.dev/deltav/internal/tui"
	"deltav.dev/deltav/internal/utils"
)

// readStdin is replaced in tests
var readStdin = utils.ReadFromStdin

// newCalcCmd creates the calc command
func newCalcCmd() *cobra.Command {
	var (
		stageSpecs []string
		example    string
		plot       bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate delta-v for stages given on the command line",
		Long: `Calculate delta-v for stages given on the command line.

Pass one --stage per stage, in burn order (first stage to burn first).
Without --stage or --example, stages are read from stdin, one WET,DRY,ISP per line.

Examples:
  deltav calc --stage 1000,200,250 --stage 300,50,300
  deltav calc -s 1000,200,250 -s 300,50,300 --plot
  deltav calc --example saturn-v
  deltav calc < stages.txt`,
		Aliases: []string{"c"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := collectStages(stageSpecs, example)
			if err != nil {
				return err
			}

			return common.Run(cmd, func(ctx *runtime.Context) error {
				session := ctx.NewSession(0)
				if err := loadStages(session, raw); err != nil {
					return err
				}
				return report(ctx, session, plot)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&stageSpecs, "stage", "s", nil, "A stage as WET,DRY,ISP (repeatable, in burn order)")
	cmd.Flags().StringVarP(&example, "example", "e", "", "Use a sample rocket instead of --stage")
	cmd.Flags().BoolVarP(&plot, "plot", "p", false, "Also draw a bar chart of the per-stage delta-v")

	_ = cmd.RegisterFlagCompletionFunc("example", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return demo.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// collectStages returns the stages named by --example, given as --stage flags, or piped on stdin
func collectStages(specs []string, example string) ([]engine.RawStage, error) {
	if example != "" {
		if len(specs) > 0 {
			return nil, fmt.Errorf("--example cannot be combined with --stage")
		}
		rocket, err := demo.Lookup(example)
		if err != nil {
			return nil, err
		}
		return rocket.Stages, nil
	}

	if len(specs) == 0 {
		text, err := readStdin()
		if err != nil {
			return nil, fmt.Errorf("failed to read stages from stdin: %w", err)
		}
		specs = utils.Lines(text)
	}

	raw := make([]engine.RawStage, 0, len(specs))
	for _, spec := range specs {
		r, err := parseStageSpec(spec)
		if err != nil {
			return nil, err
		}
		raw = append(raw, r)
	}
	return raw, nil
}

// parseStageSpec splits WET,DRY,ISP. Numbers are validated later by the engine.
func parseStageSpec(spec string) (engine.RawStage, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return engine.RawStage{}, fmt.Errorf("invalid --stage %q: expected WET,DRY,ISP", spec)
	}
	return engine.RawStage{
		Wet: strings.TrimSpace(parts[0]),
		Dry: strings.TrimSpace(parts[1]),
		Isp: strings.TrimSpace(parts[2]),
	}, nil
}

// loadStages appends one stage per raw entry to session
func loadStages(session *actions.Session, raw []engine.RawStage) error {
	for _, r := range raw {
		view := session.Dispatch(actions.NewAddStage())
		id := view.Stages[len(view.Stages)-1].ID
		for _, f := range stage.Fields {
			value := r.Wet
			switch f {
			case stage.FieldDry:
				value = r.Dry
			case stage.FieldIsp:
				value = r.Isp
			}
			if v := session.Dispatch(actions.NewSetField(id, f, value)); v.Err != nil {
				return v.Err
			}
		}
	}
	return nil
}

// report calculates and prints the breakdown, and the chart when plot is set.
// A validation failure is printed as the status line and returned.
func report(ctx *runtime.Context, session *actions.Session, plot bool) error {
	view := session.Dispatch(actions.NewCalculate())
	if view.Err != nil {
		ctx.Splog.Info(tui.ColorRed(view.Status))
		return view.Err
	}

	for i, dv := range view.Result.StageDeltaV {
		ctx.Splog.Info("Stage %d: %.2f m/s", i+1, dv)
	}
	ctx.Splog.Info(tui.ColorGreen(view.Status))

	if plot {
		view = session.Dispatch(actions.NewPlot())
		if view.Chart == nil {
			ctx.Splog.Info(view.Status)
			return nil
		}
		ctx.Splog.Newline()
		ctx.Splog.Page(chart.Render(*view.Chart, ctx.ChartOptions()))
	}
	return nil
}
