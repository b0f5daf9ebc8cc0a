//go:build unix

package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fwpack/fwpack/internal/discovery"
	"github.com/spf13/cobra"
)

type listProjectsResp struct {
	Projects []discovery.ProjectTemplate `json:"projects"`
	Count    int                         `json:"count"`
}

var projectsJSON bool

var projectsCmd = &cobra.Command{
	Use:   "projects <pack-path-or-id> <board-id>",
	Short: "List project templates for a board",
	Long: `Enumerate the importable example/application templates a board offers.

The board id is the raw directory name as printed by 'fwpack boards'.

Examples:
  fwpack projects ~/STM32Cube_FW_U5 NUCLEO-U575ZI-Q
  fwpack projects ~/STM32Cube_FW_U5 NUCLEO-U575ZI-Q --json`,
	Args: cobra.ExactArgs(2),
	RunE: runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().BoolVar(&projectsJSON, "json", false, "output JSON")
}

func runProjects(cmd *cobra.Command, args []string) error {
	c := newClient()
	path, err := resolvePackPath(cmd.Context(), c, args[0])
	if err != nil {
		return err
	}
	boardID := args[1]

	var resp listProjectsResp
	endpoint := "/api/boards/" + url.PathEscape(boardID) + "/projects?path=" + url.QueryEscape(path)
	if err := c.GetJSON(cmd.Context(), endpoint, &resp); err != nil {
		return err
	}

	if projectsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if resp.Count == 0 {
		fmt.Println("No project templates found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTOOLCHAINS\tSOURCE")
	for _, p := range resp.Projects {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, strings.Join(p.SupportedToolchains, ","), p.SourcePath)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d template(s)\n", resp.Count)
	return nil
}
