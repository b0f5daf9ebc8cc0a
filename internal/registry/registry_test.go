package registry

import (
	"errors"
	"path/filepath"
	"testing"
)

// TestRegisterAndSave_RoundTrip persists a pack and reloads it from disk.
func TestRegisterAndSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "packs.yaml")
	packDir := t.TempDir()

	r, err := New(regPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	pack := &Pack{Name: "U5 firmware", Path: packDir}
	if err := r.RegisterAndSave(pack); err != nil {
		t.Fatalf("RegisterAndSave failed: %v", err)
	}
	if pack.ID == "" {
		t.Error("expected a generated pack ID")
	}
	if pack.RegisteredAt.IsZero() {
		t.Error("expected RegisteredAt to be set")
	}

	// A fresh instance reads the persisted state.
	r2, err := New(regPath)
	if err != nil {
		t.Fatalf("New (reload) failed: %v", err)
	}
	got, err := r2.Get(pack.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "U5 firmware" {
		t.Errorf("Name = %q, want U5 firmware", got.Name)
	}
}

// TestRegisterAndSave_DuplicatePath rejects registering the same directory
// twice.
func TestRegisterAndSave_DuplicatePath(t *testing.T) {
	r, err := New(filepath.Join(t.TempDir(), "packs.yaml"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	packDir := t.TempDir()

	if err := r.RegisterAndSave(&Pack{Name: "first", Path: packDir}); err != nil {
		t.Fatalf("first RegisterAndSave failed: %v", err)
	}
	err = r.RegisterAndSave(&Pack{Name: "second", Path: packDir})
	if !errors.Is(err, ErrPackAlreadyExists) {
		t.Fatalf("err = %v, want ErrPackAlreadyExists", err)
	}
}

// TestRegisterAndSave_InvalidPath rejects paths that are not readable
// directories.
func TestRegisterAndSave_InvalidPath(t *testing.T) {
	r, err := New(filepath.Join(t.TempDir(), "packs.yaml"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	err = r.RegisterAndSave(&Pack{Name: "ghost", Path: filepath.Join(t.TempDir(), "missing")})
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
}

// TestUnregisterAndSave removes a pack and reports unknown ids.
func TestUnregisterAndSave(t *testing.T) {
	r, err := New(filepath.Join(t.TempDir(), "packs.yaml"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	pack := &Pack{Name: "temp", Path: t.TempDir()}
	if err := r.RegisterAndSave(pack); err != nil {
		t.Fatalf("RegisterAndSave failed: %v", err)
	}

	removed, err := r.UnregisterAndSave(pack.ID)
	if err != nil {
		t.Fatalf("UnregisterAndSave failed: %v", err)
	}
	if removed.ID != pack.ID {
		t.Errorf("removed ID = %q, want %q", removed.ID, pack.ID)
	}
	if _, err := r.UnregisterAndSave(pack.ID); !errors.Is(err, ErrPackNotFound) {
		t.Fatalf("err = %v, want ErrPackNotFound", err)
	}
}

// TestList sorts packs by name then ID.
func TestList(t *testing.T) {
	r, err := New(filepath.Join(t.TempDir(), "packs.yaml"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, name := range []string{"zeta", "alpha"} {
		if err := r.RegisterAndSave(&Pack{Name: name, Path: t.TempDir()}); err != nil {
			t.Fatalf("RegisterAndSave(%s) failed: %v", name, err)
		}
	}

	packs := r.List()
	if len(packs) != 2 {
		t.Fatalf("expected 2 packs, got %d", len(packs))
	}
	if packs[0].Name != "alpha" || packs[1].Name != "zeta" {
		t.Errorf("got order %q, %q; want alpha, zeta", packs[0].Name, packs[1].Name)
	}
}
