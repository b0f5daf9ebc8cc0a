package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

type readmeMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// readFrontmatterDescription pulls a description from YAML frontmatter at the
// top of a README.md directly inside dir, when one exists. Vendor packs often
// annotate board and example folders this way; absence or malformed
// frontmatter is ignored silently.
func readFrontmatterDescription(dir string) string {
	f, err := os.Open(filepath.Join(dir, "README.md"))
	if err != nil {
		return ""
	}
	defer f.Close()

	var meta readmeMeta
	if _, err := frontmatter.Parse(f, &meta); err != nil {
		return ""
	}
	if d := strings.TrimSpace(meta.Description); d != "" {
		return d
	}
	return strings.TrimSpace(meta.Title)
}
