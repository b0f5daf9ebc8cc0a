// Package workspace materializes a discovered project template into a new
// workspace folder. Copied files are never rewritten; post-copy adjustments
// (renaming targets inside project files, regenerating IDE metadata) are a
// deliberate extension point left to the tools that open the workspace.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var (
	// ErrProjectNotFound indicates no source directory could be resolved
	// for the requested board/project pair.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDestinationExists indicates the target workspace folder is already
	// occupied. The engine never overwrites or merges.
	ErrDestinationExists = errors.New("destination already exists")
)

// ImportOptions describe one materialization request.
type ImportOptions struct {
	// Root is the package root path.
	Root string
	// BoardID is the raw board directory name.
	BoardID string
	// Project is the project identifier as surfaced by enumeration.
	Project string
	// SourcePath, when set, skips re-resolution and is used directly.
	SourcePath string
	// Destination is the folder the new workspace is created under.
	Destination string
	// TargetName overrides the final path segment; defaults to Project.
	TargetName string
	// GitInit initializes a git repository with an initial commit in the
	// materialized workspace.
	GitInit bool
}

// Import copies the resolved project tree into a new workspace folder and
// returns the absolute destination path. Every failure is wrapped into a
// single "project import failed" error carrying the underlying cause.
func Import(opts ImportOptions) (string, error) {
	source, err := resolveSource(opts)
	if err != nil {
		return "", fmt.Errorf("project import failed: %w", err)
	}

	target := opts.TargetName
	if target == "" {
		target = opts.Project
	}
	dest, err := filepath.Abs(filepath.Join(opts.Destination, target))
	if err != nil {
		return "", fmt.Errorf("project import failed: %w", err)
	}

	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("project import failed: %w: %s", ErrDestinationExists, dest)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("project import failed: %w", err)
	}

	if err := copyTree(source, dest); err != nil {
		return "", fmt.Errorf("project import failed: %w", err)
	}

	if opts.GitInit {
		if err := initRepository(dest); err != nil {
			return "", fmt.Errorf("project import failed: %w", err)
		}
	}

	return dest, nil
}

// resolveSource returns the project source directory. An explicit source path
// from enumeration wins; otherwise the conventional locations are probed with
// the raw project identifier.
func resolveSource(opts ImportOptions) (string, error) {
	if opts.SourcePath != "" {
		if !isDir(opts.SourcePath) {
			return "", fmt.Errorf("%w: %s", ErrProjectNotFound, opts.SourcePath)
		}
		return opts.SourcePath, nil
	}

	candidates := []string{
		filepath.Join(opts.Root, "Projects", opts.BoardID, opts.Project),
		filepath.Join(opts.Root, "Examples", opts.BoardID, opts.Project),
		filepath.Join(opts.Root, "Applications", opts.BoardID, opts.Project),
	}
	for _, c := range candidates {
		if isDir(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s for board %s", ErrProjectNotFound, opts.Project, opts.BoardID)
}

// initRepository creates a git repository in the workspace and commits the
// imported tree so the user starts from a clean baseline.
func initRepository(dir string) error {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("git worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	_, err = wt.Commit("Import project template", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "fwpack",
			Email: "fwpack@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
