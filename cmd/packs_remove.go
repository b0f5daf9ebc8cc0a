//go:build unix

package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var packRmJSON bool
var packRmYes bool

var packsRemoveCmd = &cobra.Command{
	Use:   "remove <pack-id>",
	Short: "Remove a registered pack by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		id := strings.TrimSpace(args[0])

		// refuse to prompt on non-tty unless -y
		if !packRmYes && !packRmJSON {
			if fi, _ := os.Stdin.Stat(); (fi.Mode() & os.ModeCharDevice) == 0 {
				return errors.New("refusing to prompt on non-interactive stdin; use -y to confirm")
			}
			fmt.Printf("Remove pack %s? [y/N]: ", id)
			reader := bufio.NewReader(os.Stdin)
			ans, _ := reader.ReadString('\n')
			ans = strings.ToLower(strings.TrimSpace(ans))
			if ans != "y" && ans != "yes" {
				fmt.Println("aborted")
				return nil
			}
		}

		if err := c.Delete(cmd.Context(), "/api/packs/"+url.PathEscape(id)); err != nil {
			return err
		}

		if packRmJSON {
			// API returns 204; supply a tiny confirmation object for scripting
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"removed": true, "id": id})
		}
		fmt.Println("Removed", id)
		return nil
	},
}

func init() {
	packsCmd.AddCommand(packsRemoveCmd)
	packsRemoveCmd.Flags().BoolVarP(&packRmYes, "yes", "y", false, "assume yes")
	packsRemoveCmd.Flags().BoolVar(&packRmJSON, "json", false, "print JSON")
}
