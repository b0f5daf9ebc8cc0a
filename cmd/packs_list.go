//go:build unix

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

type packsListResp struct {
	Packs []struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Path         string    `json:"path"`
		RegisteredAt time.Time `json:"registered_at"`
	} `json:"packs"`
}

var packsListJSON bool

var packsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered firmware packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		var out packsListResp
		if err := c.GetJSON(cmd.Context(), "/api/packs", &out); err != nil {
			return err
		}
		if packsListJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		if len(out.Packs) == 0 {
			fmt.Println("No packs registered")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPATH\tREGISTERED")
		for _, p := range out.Packs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Path, p.RegisteredAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	packsCmd.AddCommand(packsListCmd)
	packsListCmd.Flags().BoolVar(&packsListJSON, "json", false, "print JSON")
}
