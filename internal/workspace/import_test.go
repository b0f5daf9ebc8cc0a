package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TestImport_RoundTrip copies every file and subdirectory byte-for-byte and
// returns destination/targetName.
func TestImport_RoundTrip(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "Projects", "BoardA", "Blinky")
	writeFile(t, filepath.Join(source, "main.c"), "int main(void) { return 0; }")
	writeFile(t, filepath.Join(source, "Makefile"), "all:\n\t$(CC) main.c\n")
	writeFile(t, filepath.Join(source, "Inc", "config.h"), "#define LED 1\n")

	dest := t.TempDir()
	got, err := Import(ImportOptions{
		Root:        root,
		BoardID:     "BoardA",
		Project:     "Blinky",
		Destination: dest,
		TargetName:  "my-blinky",
	})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	want := filepath.Join(dest, "my-blinky")
	if got != want {
		t.Errorf("returned path = %q, want %q", got, want)
	}

	for rel, content := range map[string]string{
		"main.c":       "int main(void) { return 0; }",
		"Makefile":     "all:\n\t$(CC) main.c\n",
		"Inc/config.h": "#define LED 1\n",
	} {
		data, err := os.ReadFile(filepath.Join(got, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("copied file %s missing: %v", rel, err)
		}
		if string(data) != content {
			t.Errorf("copied %s = %q, want %q", rel, data, content)
		}
	}
}

// TestImport_DefaultTargetName falls back to the project identifier when no
// target name is supplied.
func TestImport_DefaultTargetName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Projects", "BoardA", "Blinky", "main.c"), "")

	dest := t.TempDir()
	got, err := Import(ImportOptions{
		Root:        root,
		BoardID:     "BoardA",
		Project:     "Blinky",
		Destination: dest,
	})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if want := filepath.Join(dest, "Blinky"); got != want {
		t.Errorf("returned path = %q, want %q", got, want)
	}
}

// TestImport_ExplicitSourcePath skips re-resolution when the caller pins the
// source directory.
func TestImport_ExplicitSourcePath(t *testing.T) {
	source := t.TempDir()
	writeFile(t, filepath.Join(source, "main.c"), "")

	dest := t.TempDir()
	got, err := Import(ImportOptions{
		Project:     "Anything",
		SourcePath:  source,
		Destination: dest,
		TargetName:  "ws",
	})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(got, "main.c")); err != nil {
		t.Errorf("copied file missing: %v", err)
	}
}

// TestImport_FallbackResolution probes Examples/ when the project is not
// under Projects/.
func TestImport_FallbackResolution(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Examples", "BoardA", "Blinky", "main.c"), "")

	dest := t.TempDir()
	if _, err := Import(ImportOptions{
		Root:        root,
		BoardID:     "BoardA",
		Project:     "Blinky",
		Destination: dest,
	}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
}

// TestImport_ProjectNotFound surfaces a wrapped sentinel when no source can
// be resolved.
func TestImport_ProjectNotFound(t *testing.T) {
	_, err := Import(ImportOptions{
		Root:        t.TempDir(),
		BoardID:     "BoardA",
		Project:     "Ghost",
		Destination: t.TempDir(),
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

// TestImport_DestinationExists refuses to overwrite an occupied workspace
// folder.
func TestImport_DestinationExists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Projects", "BoardA", "Blinky", "main.c"), "")

	dest := t.TempDir()
	writeFile(t, filepath.Join(dest, "Blinky", "existing.txt"), "keep me")

	_, err := Import(ImportOptions{
		Root:        root,
		BoardID:     "BoardA",
		Project:     "Blinky",
		Destination: dest,
	})
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("err = %v, want ErrDestinationExists", err)
	}
	// The existing tree is untouched.
	if _, err := os.Stat(filepath.Join(dest, "Blinky", "existing.txt")); err != nil {
		t.Errorf("pre-existing file was disturbed: %v", err)
	}
}

// TestImport_GitInit leaves a repository with an initial commit in the
// workspace.
func TestImport_GitInit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Projects", "BoardA", "Blinky", "main.c"), "")

	dest := t.TempDir()
	got, err := Import(ImportOptions{
		Root:        root,
		BoardID:     "BoardA",
		Project:     "Blinky",
		Destination: dest,
		GitInit:     true,
	})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if st, err := os.Stat(filepath.Join(got, ".git")); err != nil || !st.IsDir() {
		t.Errorf("expected a .git directory in the workspace: %v", err)
	}
}
