package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Markers whose presence in a directory listing marks it as an importable
// project. File markers match any entry name by case-insensitive substring;
// dir markers only match directory entries.
var (
	projectFileMarkers = []string{
		".uvprojx", ".eww", ".ewp", ".cproject", "makefile", ".ioc", "main.c", "main.cpp",
	}
	projectDirMarkers = []string{"inc", "src", "core"}
)

// toolchainMarkers map marker-file glob patterns to toolchain identities,
// tested in declaration order against immediate files (case-insensitive).
var toolchainMarkers = []struct {
	pattern   string
	toolchain string
}{
	{"*.uvprojx", "Keil"},
	{"*.eww", "IAR"},
	{"stm32*", "STM32CubeIDE"},
	{"makefile", "GCC"},
	{"*.cproject", "Eclipse"},
}

// ProjectsForBoard enumerates the importable project templates of one board,
// category by category in declaration order. A missing board or category is
// a structural mismatch yielding an empty list; unreadable directories are
// skipped with a logged diagnostic.
func (e *Engine) ProjectsForBoard(root, boardID string) []ProjectTemplate {
	templates := []ProjectTemplate{}

	boardDir := e.resolveBoardDir(root, boardID)
	if boardDir == "" {
		e.log.Debug("board directory not found", "root", root, "board", boardID)
		return templates
	}

	for _, category := range Categories {
		categoryDir := filepath.Join(boardDir, category)
		entries, err := os.ReadDir(categoryDir)
		if err != nil {
			if !os.IsNotExist(err) {
				e.log.Warn("skipping unreadable category", "dir", categoryDir, "err", err)
			}
			continue
		}
		for _, ent := range entries {
			if !ent.IsDir() {
				continue
			}
			projectDir := filepath.Join(categoryDir, ent.Name())
			if !looksLikeProject(projectDir) {
				continue
			}
			templates = append(templates, e.buildTemplate(category, ent.Name(), projectDir))
		}
	}
	return templates
}

// resolveBoardDir locates the board directory under Projects or, in fallback
// mode, under one of the flattened category roots.
func (e *Engine) resolveBoardDir(root, boardID string) string {
	primary := filepath.Join(root, "Projects", boardID)
	if isDir(primary) {
		return primary
	}
	if isDir(filepath.Join(root, "Projects")) {
		// Projects exists but the board doesn't: no fallback.
		return ""
	}
	for _, category := range fallbackCategories {
		dir := filepath.Join(root, category, boardID)
		if isDir(dir) {
			return dir
		}
	}
	return ""
}

// looksLikeProject reports whether a directory's immediate entries carry any
// recognizable build/source artifact.
func looksLikeProject(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, ent := range entries {
		name := strings.ToLower(ent.Name())
		for _, marker := range projectFileMarkers {
			if strings.Contains(name, marker) {
				return true
			}
		}
		if ent.IsDir() {
			for _, marker := range projectDirMarkers {
				if strings.Contains(name, marker) {
					return true
				}
			}
		}
	}
	return false
}

func (e *Engine) buildTemplate(category, rawName, projectDir string) ProjectTemplate {
	display := FormatName(rawName)

	synthesized := fmt.Sprintf("%s project template", display)
	if fm := readFrontmatterDescription(projectDir); fm != "" {
		synthesized = fm
	}

	return ProjectTemplate{
		Name:                category + "/" + display,
		Description:         category + ": " + synthesized,
		SourcePath:          projectDir,
		SupportedToolchains: detectToolchains(projectDir),
	}
}

// detectToolchains inspects the immediate files of a project directory for
// toolchain marker files. Never returns an empty set.
func detectToolchains(projectDir string) []string {
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return []string{"Generic"}
	}

	var names []string
	for _, ent := range entries {
		if !ent.IsDir() {
			names = append(names, strings.ToLower(ent.Name()))
		}
	}

	var toolchains []string
	for _, marker := range toolchainMarkers {
		for _, name := range names {
			if ok, _ := filepath.Match(marker.pattern, name); ok {
				toolchains = append(toolchains, marker.toolchain)
				break
			}
		}
	}
	if len(toolchains) == 0 {
		return []string{"Generic"}
	}
	return toolchains
}
