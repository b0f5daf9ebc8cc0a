package discovery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwpack/fwpack/internal/limits"
)

// fallbackCategories are scanned directly under the package root when no
// Projects directory exists (packages that flatten the hierarchy).
var fallbackCategories = []string{"Examples", "Applications", "Demonstrations"}

var (
	imageExtensions = map[string]bool{
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	}
	imageNameHints = []string{"board", "image", "picture", "photo"}

	mcuFamilyRe = regexp.MustCompile(`(?i)STM32[A-Z]\d+`)
)

// Bounds for the "board actually contains projects" verification. The check
// is deliberately non-exhaustive so huge packages stay cheap to scan.
const (
	maxCategoryProbes = 2
	maxSubdirProbes   = 3
)

// Boards enumerates the hardware boards of the package rooted at root, in
// directory listing order, deduplicated by id (first occurrence wins).
// Structural mismatches and scan-level I/O errors yield an empty or partial
// list with a logged diagnostic, never an error.
func (e *Engine) Boards(root string) []Board {
	boards := []Board{}
	seen := map[string]bool{}

	projectsDir := filepath.Join(root, "Projects")
	if isDir(projectsDir) {
		e.scanBoardCandidates(projectsDir, seen, &boards)
		return boards
	}

	for _, category := range fallbackCategories {
		dir := filepath.Join(root, category)
		if isDir(dir) {
			e.scanBoardCandidates(dir, seen, &boards)
		}
	}
	return boards
}

func (e *Engine) scanBoardCandidates(dir string, seen map[string]bool, boards *[]Board) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		e.log.Warn("board scan failed, skipping directory", "dir", dir, "err", err)
		return
	}

	for _, ent := range entries {
		if !ent.IsDir() {
			continue
		}
		id := ent.Name()
		if seen[id] {
			continue
		}
		boardDir := filepath.Join(dir, id)
		if !e.containsProjects(boardDir) {
			continue
		}
		seen[id] = true
		*boards = append(*boards, e.buildBoard(id, boardDir))
	}
}

// containsProjects verifies that the candidate directory has at least one
// recognized category subdirectory which itself holds a project-like
// subdirectory. Only the first maxCategoryProbes category directories and
// the first maxSubdirProbes subdirectories of each are inspected.
func (e *Engine) containsProjects(boardDir string) bool {
	entries, err := os.ReadDir(boardDir)
	if err != nil {
		return false
	}

	probed := 0
	for _, ent := range entries {
		if !ent.IsDir() || !isCategory(ent.Name()) {
			continue
		}
		categoryDir := filepath.Join(boardDir, ent.Name())
		subdirs, err := os.ReadDir(categoryDir)
		if err != nil {
			e.log.Debug("unreadable category directory", "dir", categoryDir, "err", err)
		} else {
			checked := 0
			for _, sub := range subdirs {
				if !sub.IsDir() {
					continue
				}
				if looksLikeProject(filepath.Join(categoryDir, sub.Name())) {
					return true
				}
				checked++
				if checked == maxSubdirProbes {
					break
				}
			}
		}
		probed++
		if probed == maxCategoryProbes {
			break
		}
	}
	return false
}

func (e *Engine) buildBoard(id, boardDir string) Board {
	display := FormatName(id)
	mcu := e.detectMCUFamily(boardDir)

	description := fmt.Sprintf("%s development board", display)
	if mcu != "" {
		description = fmt.Sprintf("%s development board (%s)", display, mcu)
	}
	if fm := readFrontmatterDescription(boardDir); fm != "" {
		description = fm
	}

	return Board{
		ID:          id,
		DisplayName: display,
		Description: description,
		ImagePath:   findBoardImage(boardDir),
		MCUFamily:   mcu,
	}
}

// findBoardImage returns the first image file directly under the board
// directory whose name suggests a board picture, or "".
func findBoardImage(boardDir string) string {
	entries, err := os.ReadDir(boardDir)
	if err != nil {
		return ""
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := strings.ToLower(ent.Name())
		if !imageExtensions[filepath.Ext(name)] {
			continue
		}
		for _, hint := range imageNameHints {
			if strings.Contains(name, hint) {
				return filepath.Join(boardDir, ent.Name())
			}
		}
	}
	return ""
}

// detectMCUFamily scans .h and .ioc files directly under the board directory
// for an STM32 family designator. First match wins, uppercased. Unreadable
// files are skipped.
func (e *Engine) detectMCUFamily(boardDir string) string {
	entries, err := os.ReadDir(boardDir)
	if err != nil {
		return ""
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(ent.Name()))
		if ext != ".h" && ext != ".ioc" {
			continue
		}
		path := filepath.Join(boardDir, ent.Name())
		data, err := readFileCapped(path, limits.SourceScan)
		if err != nil {
			e.log.Debug("skipping unreadable source file", "path", path, "err", err)
			continue
		}
		if m := mcuFamilyRe.Find(data); m != nil {
			return strings.ToUpper(string(m))
		}
	}
	return ""
}

func isCategory(name string) bool {
	for _, c := range Categories {
		if name == c {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func readFileCapped(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, limit))
}
