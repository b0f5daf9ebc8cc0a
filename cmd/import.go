//go:build unix

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type importReq struct {
	Path        string `json:"path"`
	BoardID     string `json:"board_id"`
	Project     string `json:"project"`
	SourcePath  string `json:"source_path,omitempty"`
	Destination string `json:"destination"`
	TargetName  string `json:"target_name,omitempty"`
	GitInit     bool   `json:"git_init,omitempty"`
}

type importResp struct {
	Destination string `json:"destination"`
}

var (
	importDest   string
	importName   string
	importSource string
	importGit    bool
	importJSON   bool
)

var importCmd = &cobra.Command{
	Use:   "import <pack-path-or-id> <board-id> <project>",
	Short: "Import a project template into a new workspace",
	Long: `Copy a project template out of a firmware package into a new workspace folder.

The project argument is the template name as printed by 'fwpack projects'
(pass --source to pin the exact source directory instead). The destination
folder defaults to the configured default_destination, then the current
directory.

Examples:
  fwpack import ~/STM32Cube_FW_U5 NUCLEO-U575ZI-Q Blinky --dest ~/work
  fwpack import ~/STM32Cube_FW_U5 NUCLEO-U575ZI-Q Blinky --name my-blinky --git`,
	Args: cobra.ExactArgs(3),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importDest, "dest", "d", "", "destination folder")
	importCmd.Flags().StringVarP(&importName, "name", "n", "", "workspace folder name (defaults to the project name)")
	importCmd.Flags().StringVar(&importSource, "source", "", "explicit source directory (skips re-resolution)")
	importCmd.Flags().BoolVar(&importGit, "git", false, "initialize a git repository in the workspace")
	importCmd.Flags().BoolVar(&importJSON, "json", false, "output JSON")
}

func runImport(cmd *cobra.Command, args []string) error {
	c := newClient()
	path, err := resolvePackPath(cmd.Context(), c, args[0])
	if err != nil {
		return err
	}

	cfg, _ := loadCLIConfig()

	dest := importDest
	if dest == "" && cfg != nil {
		dest = cfg.DefaultDestination
	}
	if dest == "" {
		if dest, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	dest = expandPath(dest)

	gitInit := importGit
	if !cmd.Flags().Changed("git") && cfg != nil {
		gitInit = cfg.GitInit
	}

	req := importReq{
		Path:        path,
		BoardID:     args[1],
		Project:     args[2],
		Destination: dest,
		TargetName:  importName,
		GitInit:     gitInit,
	}
	if importSource != "" {
		req.SourcePath = expandPath(importSource)
	}

	var resp importResp
	if err := c.PostJSON(cmd.Context(), "/api/imports", req, &resp); err != nil {
		return err
	}

	if importJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Println("Imported to", resp.Destination)
	return nil
}
