package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deltav.dev/deltav/internal/cli/common"
	"deltav.dev/deltav/internal/config"
	"deltav.dev/deltav/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set user preferences",
		Long: `Get and set user preferences.

Examples:
  deltav config list
  deltav config get chart.height
  deltav config set chart.height 16
  deltav config set session.initial_stages 2`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "get <key>",
		Short:             "Get a configuration value",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				value, err := ctx.Config.Get(args[0])
				if err != nil {
					return err
				}
				ctx.Splog.Info(value)
				return nil
			})
		},
	}

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a configuration value",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				key, value := args[0], args[1]
				if err := ctx.Config.Set(key, value); err != nil {
					return err
				}

				path := common.ConfigPath(cmd)
				if err := config.Save(path, ctx.Config); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				ctx.Splog.Info("Set %s to: %s", key, value)
				return nil
			})
		},
	}

	return cmd
}

// newConfigListCmd creates the config list command
func newConfigListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				for _, key := range config.Keys() {
					value, err := ctx.Config.Get(key)
					if err != nil {
						return err
					}
					ctx.Splog.Info("%s = %s", key, value)
				}
				return nil
			})
		},
	}

	return cmd
}
