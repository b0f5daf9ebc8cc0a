//go:build unix

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type packRegisterReq struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
type packRegisterResp struct {
	Pack struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Path string `json:"path"`
	} `json:"pack"`
}

var packRegName, packRegPath string
var packRegJSON bool

var packsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a firmware package root",
	RunE: func(cmd *cobra.Command, args []string) error {
		packRegName = strings.TrimSpace(packRegName)
		packRegPath = strings.TrimSpace(packRegPath)
		if packRegName == "" || packRegPath == "" {
			return errors.New("--name and --path are required")
		}
		// client-side friendliness: expand ~ and make absolute (daemon also validates)
		packRegPath = expandPath(packRegPath)

		c := newClient()
		var out packRegisterResp
		if err := c.PostJSON(cmd.Context(), "/api/packs", packRegisterReq{Name: packRegName, Path: packRegPath}, &out); err != nil {
			return err
		}
		if packRegJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		fmt.Printf("Registered %q at %s (id=%s)\n", out.Pack.Name, out.Pack.Path, out.Pack.ID)
		return nil
	},
}

func init() {
	packsCmd.AddCommand(packsRegisterCmd)
	packsRegisterCmd.Flags().StringVarP(&packRegName, "name", "n", "", "pack name (required)")
	packsRegisterCmd.Flags().StringVarP(&packRegPath, "path", "p", "", "pack root path (required)")
	packsRegisterCmd.Flags().BoolVar(&packRegJSON, "json", false, "print JSON")
	_ = packsRegisterCmd.MarkFlagRequired("name")
	_ = packsRegisterCmd.MarkFlagRequired("path")
}
