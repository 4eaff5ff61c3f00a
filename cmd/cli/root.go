package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layoutdss",
	Short: "Layout DSS - Discadelta segment layout service",
	Long: `Layout DSS solves segment strip layouts with the Discadelta solver.
It partitions a root distance across ordered segments, compressing or
expanding them against per-segment constraints, and serves the solver over a
REST API with stored presets.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
