package paths

import (
	"os"
	"path/filepath"
)

func DefaultRuntimeDir() string {
	if x := os.Getenv("XDG_RUNTIME_DIR"); x != "" {
		return filepath.Join(x, "fwpack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".fwpack")
}

func DefaultStateDir() string {
	if x := os.Getenv("XDG_STATE_HOME"); x != "" {
		return filepath.Join(x, "fwpack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "fwpack")
}

func DefaultConfigDir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "fwpack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fwpack")
}

func DefaultSocketPath() string   { return filepath.Join(DefaultRuntimeDir(), "daemon.sock") }
func DefaultPIDPath() string      { return filepath.Join(DefaultRuntimeDir(), "daemon.pid") }
func DefaultRegistryPath() string { return filepath.Join(DefaultStateDir(), "packs.yaml") }
func DefaultHistoryPath() string  { return filepath.Join(DefaultStateDir(), "history.db") }
