//go:build unix

package cmd

import "github.com/spf13/cobra"

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "Manage registered firmware packages",
}

func init() {
	rootCmd.AddCommand(packsCmd)
}
