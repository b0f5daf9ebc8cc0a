//go:build unix

package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/fwpack/fwpack/internal/discovery"
	"github.com/spf13/cobra"
)

type listBoardsResp struct {
	Boards []discovery.Board `json:"boards"`
	Count  int               `json:"count"`
}

var boardsJSON bool

var boardsCmd = &cobra.Command{
	Use:   "boards <pack-path-or-id>",
	Short: "List boards in a firmware package",
	Long: `Enumerate the hardware boards a firmware package supports.

Examples:
  fwpack boards ~/STM32Cube_FW_U5
  fwpack boards ~/STM32Cube_FW_U5 --json | jq '.boards[].id'`,
	Args: cobra.ExactArgs(1),
	RunE: runBoards,
}

func init() {
	rootCmd.AddCommand(boardsCmd)
	boardsCmd.Flags().BoolVar(&boardsJSON, "json", false, "output JSON")
}

func runBoards(cmd *cobra.Command, args []string) error {
	c := newClient()
	path, err := resolvePackPath(cmd.Context(), c, args[0])
	if err != nil {
		return err
	}

	var resp listBoardsResp
	endpoint := "/api/boards?path=" + url.QueryEscape(path)
	if err := c.GetJSON(cmd.Context(), endpoint, &resp); err != nil {
		return err
	}

	if boardsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if resp.Count == 0 {
		fmt.Println("No boards found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMCU")
	for _, b := range resp.Boards {
		mcu := b.MCUFamily
		if mcu == "" {
			mcu = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, b.DisplayName, mcu)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d board(s)\n", resp.Count)
	return nil
}
