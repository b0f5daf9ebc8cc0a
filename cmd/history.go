//go:build unix

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fwpack/fwpack/internal/history"
	"github.com/spf13/cobra"
)

type historyResp struct {
	Imports []*history.Entry `json:"imports"`
	Count   int              `json:"count"`
}

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past project imports",
	Long: `List past project imports, newest first.

Examples:
  fwpack history
  fwpack history --limit 10 --json | jq '.imports[].destination'`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum entries to show (0 = server default)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	c := newClient()

	endpoint := "/api/imports"
	if historyLimit > 0 {
		endpoint = fmt.Sprintf("%s?limit=%d", endpoint, historyLimit)
	}

	var resp historyResp
	if err := c.GetJSON(cmd.Context(), endpoint, &resp); err != nil {
		return err
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if resp.Count == 0 {
		fmt.Println("No imports recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tBOARD\tTEMPLATE\tDESTINATION")
	for _, e := range resp.Imports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format(time.RFC3339), e.BoardID, e.Template, e.Destination)
	}
	return w.Flush()
}
