package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// TestRecordAndList inserts entries and reads them back newest first.
func TestRecordAndList(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, tpl := range []string{"Blinky", "WebServer", "LowPower"} {
		err := s.Record(ctx, &Entry{
			PackRoot:    "/packs/u5",
			BoardID:     "NUCLEO-U575ZI-Q",
			Template:    tpl,
			Destination: "/work/" + tpl,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record(%s) failed: %v", tpl, err)
		}
	}

	entries, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Template != "LowPower" {
		t.Errorf("entries[0].Template = %q, want LowPower (newest first)", entries[0].Template)
	}
	if entries[0].ID == 0 {
		t.Error("expected assigned row ids")
	}
}

// TestList_Limit caps the result set.
func TestList_Limit(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, &Entry{PackRoot: "/p", BoardID: "b", Template: "t", Destination: "/d"}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

// TestOpen_CreatesStateDir creates missing parent directories.
func TestOpen_CreatesStateDir(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nested", "state", "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := s.List(context.Background(), 1); err != nil {
		t.Fatalf("List on fresh store failed: %v", err)
	}
}
