//go:build unix

package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/fwpack/fwpack/internal/discovery"
	"github.com/spf13/cobra"
)

type analyzeResp struct {
	Package *discovery.Package `json:"package"`
}

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <pack-path-or-id>",
	Short: "Identify a firmware package",
	Long: `Identify the firmware package at the given root directory.

Reads the package descriptor (package.xml, *.pdsc or package.json) when one
exists, falling back to directory-name inference otherwise.

Examples:
  fwpack analyze ~/STM32Cube_FW_U5
  fwpack analyze 4f3c... --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	c := newClient()
	path, err := resolvePackPath(cmd.Context(), c, args[0])
	if err != nil {
		return err
	}

	var resp analyzeResp
	endpoint := "/api/package?path=" + url.QueryEscape(path)
	if err := c.GetJSON(cmd.Context(), endpoint, &resp); err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	p := resp.Package
	fmt.Printf("Name:    %s\n", p.Name)
	fmt.Printf("Version: %s\n", p.Version)
	fmt.Printf("Root:    %s\n", p.RootPath)
	if p.Description != "" {
		fmt.Printf("About:   %s\n", p.Description)
	}
	return nil
}
