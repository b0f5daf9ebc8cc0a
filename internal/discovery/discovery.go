// Package discovery inspects a firmware package directory tree and decides
// which subdirectories represent hardware boards and which represent
// importable project templates. All checks are heuristic single-pass scans
// over directory listings; nothing is cached between calls.
package discovery

import (
	"github.com/charmbracelet/log"
)

// Categories are the recognized project groupings, in declaration order.
// Board verification and project enumeration both honor this order.
var Categories = []string{"Examples", "Applications", "Demonstrations", "Templates"}

// Package is a vendor firmware distribution rooted at one directory.
type Package struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	RootPath    string `json:"root_path"`
	Description string `json:"description,omitempty"`
}

// Board is one supported hardware target under the package's project
// hierarchy. ID is the raw directory name and is the stable key;
// DisplayName is cosmetic and not guaranteed unique.
type Board struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path,omitempty"`
	MCUFamily   string `json:"mcu_family,omitempty"`
}

// ProjectTemplate is one buildable example/application directory under a
// board and category. Name is category-prefixed ("Examples/Blinky") and
// unique within one board's template list.
type ProjectTemplate struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	SourcePath          string   `json:"source_path"`
	SupportedToolchains []string `json:"supported_toolchains"`
}

// Engine runs the discovery heuristics. It holds no state beyond a logger;
// every call re-reads the filesystem.
type Engine struct {
	log *log.Logger
}

// New creates an Engine. A nil logger falls back to the package default.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{log: logger}
}
