//go:build unix

package cmd

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwpack/fwpack/internal/apiclient"
	"github.com/fwpack/fwpack/internal/config"
	"github.com/fwpack/fwpack/internal/registry"
)

// loadCLIConfig loads the user config, tolerating a missing file.
func loadCLIConfig() (*config.Config, error) {
	return config.Load()
}

// newClient builds an API client honoring the configured socket path.
func newClient() *apiclient.Client {
	cfg, err := loadCLIConfig()
	if err != nil {
		return apiclient.New()
	}
	return apiclient.NewWithSocket(cfg.SocketPath)
}

// expandPath applies ~ expansion and makes the path absolute (client-side
// friendliness; the daemon validates independently).
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, _ := os.UserHomeDir(); home != "" {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}

// resolvePackPath turns a CLI pack argument into a package root path. An
// existing directory is used as-is; anything else is treated as a registered
// pack id and resolved through the daemon.
func resolvePackPath(ctx context.Context, c *apiclient.Client, arg string) (string, error) {
	expanded := expandPath(arg)
	if st, err := os.Stat(expanded); err == nil && st.IsDir() {
		return expanded, nil
	}

	var out struct {
		Pack *registry.Pack `json:"pack"`
	}
	if err := c.GetJSON(ctx, "/api/packs/"+url.PathEscape(arg), &out); err != nil {
		return "", err
	}
	return out.Pack.Path, nil
}
