package discovery

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwpack/fwpack/internal/limits"
)

// descriptorNames are probed in priority order directly under the root.
// If none exists, the root listing is scanned for any *.pdsc file.
var descriptorNames = []string{"package.xml", "package.pdsc", ".pdsc", "package.json"}

type jsonDescriptor struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

type xmlDescriptor struct {
	XMLName     xml.Name
	Name        string `xml:"name,attr"`
	Version     string `xml:"version,attr"`
	Description string `xml:"description"`
}

// AnalyzePackage identifies the firmware package rooted at root. A descriptor
// file wins when present and parseable; otherwise the package identity is
// inferred from the directory name. Descriptor parse failures downgrade to
// inference; I/O failures while locating or reading the descriptor are fatal.
func (e *Engine) AnalyzePackage(root string) (*Package, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("package analysis failed: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("package analysis failed: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("package analysis failed: %s is not a directory", abs)
	}

	descriptor, err := e.findDescriptor(abs)
	if err != nil {
		return nil, fmt.Errorf("package analysis failed: %w", err)
	}

	if descriptor != "" {
		pkg, err := e.parseDescriptor(abs, descriptor)
		if err != nil {
			return nil, fmt.Errorf("package analysis failed: %w", err)
		}
		if pkg != nil {
			return pkg, nil
		}
		// Malformed descriptor: fall through to directory-name inference.
		e.log.Debug("descriptor unparseable, inferring from directory name", "descriptor", descriptor)
	}

	name := filepath.Base(abs)
	return &Package{
		Name:        name,
		Version:     "Unknown",
		RootPath:    abs,
		Description: fmt.Sprintf("Firmware package %s (no descriptor found)", name),
	}, nil
}

// findDescriptor returns the path of the highest-priority descriptor file
// under root, or "" when none exists.
func (e *Engine) findDescriptor(root string) (string, error) {
	for _, name := range descriptorNames {
		p := filepath.Join(root, name)
		info, err := os.Stat(p)
		if err == nil && info.Mode().IsRegular() {
			return p, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", err
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", err
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(ent.Name()), ".pdsc") {
			return filepath.Join(root, ent.Name()), nil
		}
	}
	return "", nil
}

// parseDescriptor reads and parses a descriptor file. A read failure is an
// error; a parse failure returns (nil, nil) so the caller can downgrade to
// directory-name inference.
func (e *Engine) parseDescriptor(root, path string) (*Package, error) {
	data, err := readFileCapped(path, limits.DescriptorFile)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		var d jsonDescriptor
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, nil
		}
		if d.Name == "" {
			d.Name = "Unknown Package"
		}
		if d.Version == "" {
			d.Version = "1.0.0"
		}
		return &Package{Name: d.Name, Version: d.Version, RootPath: root, Description: d.Description}, nil
	}

	var d xmlDescriptor
	if err := xml.Unmarshal(data, &d); err != nil {
		return nil, nil
	}
	if d.XMLName.Local != "package" || d.Name == "" {
		return nil, nil
	}
	if d.Version == "" {
		d.Version = "1.0.0"
	}
	return &Package{
		Name:        d.Name,
		Version:     d.Version,
		RootPath:    root,
		Description: strings.TrimSpace(d.Description),
	}, nil
}
