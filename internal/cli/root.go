package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deltav.dev/deltav/internal/cli/common"
	"deltav.dev/deltav/internal/demo"
	"deltav.dev/deltav/internal/runtime"
	"deltav.dev/deltav/internal/tui"
	"deltav.dev/deltav/internal/tui/components/calculator"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var stages int

	rootCmd := &cobra.Command{
		Use:   "deltav",
		Short: "Deltav calculates the velocity change of a multi-stage rocket",
		Long: `Deltav calculates the velocity change of a multi-stage rocket.

Enter the wet mass, dry mass and specific impulse of each stage in burn order.
Any consistent mass unit works; results are in m/s.

Run without arguments for the interactive calculator.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.RunWithLogFile(cmd, func(ctx *runtime.Context) error {
				if !tui.IsTTY() {
					ctx.Splog.Tip("No terminal detected. Use `deltav calc --stage WET,DRY,ISP` instead.")
					return nil
				}

				initial := -1
				if cmd.Flags().Changed("stages") {
					if stages < 0 {
						return fmt.Errorf("--stages must not be negative")
					}
					initial = stages
				}

				ctx.Splog.SetQuiet(true)
				defer ctx.Splog.SetQuiet(false)
				ctx.Splog.Debug("starting interactive calculator")

				if demo.IsDemoMode() {
					initial = 0
				}
				session := ctx.NewSession(initial)
				if demo.IsDemoMode() {
					rocket, err := demo.Lookup(demo.DefaultRocket)
					if err != nil {
						return err
					}
					if err := loadStages(session, rocket.Stages); err != nil {
						return err
					}
				}

				return calculator.Run(session, ctx.ChartOptions())
			})
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ~/.deltav/config.toml)")
	rootCmd.Flags().IntVarP(&stages, "stages", "n", 0, "Number of empty stages to start with (default from config)")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newWizardCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
