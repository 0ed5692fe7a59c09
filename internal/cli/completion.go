package cli

import (
	"github.com/spf13/cobra"

	"deltav.dev/deltav/internal/config"
)

// completeConfigKeys is a helper for cobra.ValidArgsFunction
// that returns all configuration keys for the first argument.
func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}
