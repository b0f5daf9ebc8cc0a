package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fwpack",
	Short: "fwpack - firmware package explorer",
	Long:  `fwpack discovers vendor firmware packages, the boards and project templates they contain, and imports a chosen template into a new workspace.`,
}

func Execute() error {
	// Silence usage and errors to avoid cluttering output with Cobra defaults
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}
