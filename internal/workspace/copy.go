package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// copyTree recursively copies the contents of source into destination,
// creating destination if needed. File permissions are preserved; entries are
// copied in directory listing order. Symlinks are skipped, never followed.
func copyTree(source, destination string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(destination, info.Mode().Perm()|0o700); err != nil {
		return err
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return err
	}

	for _, ent := range entries {
		src := filepath.Join(source, ent.Name())
		dst := filepath.Join(destination, ent.Name())

		if ent.Type()&os.ModeSymlink != 0 {
			continue
		}
		if ent.IsDir() {
			if err := copyTree(src, dst); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file, preserving its permissions.
func copyFile(source, destination string) error {
	contents, err := os.ReadFile(source)
	if err != nil {
		return err
	}
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if err := os.WriteFile(destination, contents, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", destination, err)
	}
	return nil
}
