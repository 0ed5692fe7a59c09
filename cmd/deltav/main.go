package main

import (
	"fmt"
	"os"

	"deltav.dev/deltav/internal/cli"
	"deltav.dev/deltav/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Validation failures were already shown as the status line
		if !errors.IsValidation(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
