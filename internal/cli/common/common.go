// Package common provides shared helper functions for CLI commands.
package common

import (
	"fmt"

	"github.com/spf13/cobra"

	"deltav.dev/deltav/internal/config"
	"deltav.dev/deltav/internal/runtime"
)

// ConfigPath returns the --config flag value, or the default config path
func ConfigPath(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return config.GetConfigPath()
}

// LoadConfig loads the config selected by the command's flags
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(ConfigPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Run is a helper that provides a runtime context to a command's execution function.
// Output goes to the command's stdout.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := runtime.NewContext(cfg, cmd.OutOrStdout())
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// RunWithLogFile is like Run but also logs to the rotating log file
func RunWithLogFile(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, err := runtime.NewContextWithLogFile(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}
