package discovery

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestBoards_EmptyTree returns an empty list when neither Projects nor any
// fallback category directory exists.
func TestBoards_EmptyTree(t *testing.T) {
	boards := newTestEngine().Boards(t.TempDir())
	if len(boards) != 0 {
		t.Fatalf("expected no boards, got %d", len(boards))
	}
}

// TestBoards_ProjectlessCandidateExcluded drops a board whose category
// folders hold no recognizable project directory.
func TestBoards_ProjectlessCandidateExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Projects", "NUCLEO-U575ZI-Q", "Examples", "Foo", "notes.txt"), "nothing here")

	boards := newTestEngine().Boards(root)
	if len(boards) != 0 {
		t.Fatalf("expected no boards, got %d", len(boards))
	}
}

// TestBoards_ValidBoardIncluded surfaces a board whose Examples folder holds
// a directory with a main.c, and keeps the raw directory name as the id.
func TestBoards_ValidBoardIncluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Projects", "NUCLEO-U575ZI-Q", "Examples", "Blinky", "main.c"), "int main(void) {}")

	boards := newTestEngine().Boards(root)
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}
	b := boards[0]
	if b.ID != "NUCLEO-U575ZI-Q" {
		t.Errorf("ID = %q, want raw directory name NUCLEO-U575ZI-Q", b.ID)
	}
	if b.DisplayName != "NUCLEO- U575ZI Q" {
		t.Errorf("DisplayName = %q, want NUCLEO- U575ZI Q", b.DisplayName)
	}
	if !strings.Contains(b.Description, b.DisplayName) {
		t.Errorf("Description %q should embed the display name", b.Description)
	}
}

// TestBoards_ImageHeuristic picks the first image whose name hints at a board
// picture and ignores other images.
func TestBoards_ImageHeuristic(t *testing.T) {
	root := t.TempDir()
	boardDir := filepath.Join(root, "Projects", "DISCO-KIT")
	writeFile(t, filepath.Join(boardDir, "Examples", "Demo", "main.c"), "")
	writeFile(t, filepath.Join(boardDir, "logo.png"), "png")
	writeFile(t, filepath.Join(boardDir, "the_board.png"), "png")

	boards := newTestEngine().Boards(root)
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}
	want := filepath.Join(boardDir, "the_board.png")
	if boards[0].ImagePath != want {
		t.Errorf("ImagePath = %q, want %q", boards[0].ImagePath, want)
	}
}

// TestBoards_MCUFamilyFromHeader extracts the STM32 family designator from a
// header file, uppercased, first match wins.
func TestBoards_MCUFamilyFromHeader(t *testing.T) {
	root := t.TempDir()
	boardDir := filepath.Join(root, "Projects", "NUCLEO-U575ZI-Q")
	writeFile(t, filepath.Join(boardDir, "Examples", "Blinky", "main.c"), "")
	writeFile(t, filepath.Join(boardDir, "board_config.h"), "#include \"stm32u575xx.h\"\n")

	boards := newTestEngine().Boards(root)
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}
	if boards[0].MCUFamily != "STM32U575" {
		t.Errorf("MCUFamily = %q, want STM32U575", boards[0].MCUFamily)
	}
	if !strings.Contains(boards[0].Description, "STM32U575") {
		t.Errorf("Description %q should mention the MCU family", boards[0].Description)
	}
}

// TestBoards_FallbackScanDeduplicates finds the same board id via two
// fallback category roots and keeps only the first occurrence.
func TestBoards_FallbackScanDeduplicates(t *testing.T) {
	root := t.TempDir()
	// No Projects directory: fallback mode scans Examples then Applications.
	writeFile(t, filepath.Join(root, "Examples", "BoardA", "Examples", "Blinky", "main.c"), "")
	writeFile(t, filepath.Join(root, "Applications", "BoardA", "Examples", "Net", "main.c"), "")
	writeFile(t, filepath.Join(root, "Applications", "BoardB", "Templates", "Base", "Makefile"), "")

	boards := newTestEngine().Boards(root)
	if len(boards) != 2 {
		t.Fatalf("expected 2 boards, got %d: %+v", len(boards), boards)
	}
	if boards[0].ID != "BoardA" || boards[1].ID != "BoardB" {
		t.Errorf("got ids %q, %q; want BoardA, BoardB", boards[0].ID, boards[1].ID)
	}
}

// TestBoards_BoundedVerification inspects at most the first two category
// directories; a board whose only projects sit in the third is dropped.
func TestBoards_BoundedVerification(t *testing.T) {
	root := t.TempDir()
	boardDir := filepath.Join(root, "Projects", "EdgeBoard")
	// Listing order is lexical: Applications, Demonstrations, Examples.
	mkdir(t, filepath.Join(boardDir, "Applications"))
	mkdir(t, filepath.Join(boardDir, "Demonstrations"))
	writeFile(t, filepath.Join(boardDir, "Examples", "Blinky", "main.c"), "")

	boards := newTestEngine().Boards(root)
	if len(boards) != 0 {
		t.Fatalf("expected bounded check to drop the board, got %d boards", len(boards))
	}
}

// TestBoards_BoundedSubdirProbe checks only the first three subdirectories of
// a category directory.
func TestBoards_BoundedSubdirProbe(t *testing.T) {
	root := t.TempDir()
	category := filepath.Join(root, "Projects", "DeepBoard", "Examples")
	// Lexical order: A, B, C hold nothing; D holds the only real project.
	for _, name := range []string{"A", "B", "C"} {
		writeFile(t, filepath.Join(category, name, "notes.txt"), "")
	}
	writeFile(t, filepath.Join(category, "D", "main.c"), "")

	boards := newTestEngine().Boards(root)
	if len(boards) != 0 {
		t.Fatalf("expected bounded subdir probe to drop the board, got %d boards", len(boards))
	}
}

// TestBoards_ReadmeFrontmatterDescription lets a README with YAML
// frontmatter override the synthesized description.
func TestBoards_ReadmeFrontmatterDescription(t *testing.T) {
	root := t.TempDir()
	boardDir := filepath.Join(root, "Projects", "NUCLEO-U575ZI-Q")
	writeFile(t, filepath.Join(boardDir, "Examples", "Blinky", "main.c"), "")
	writeFile(t, filepath.Join(boardDir, "README.md"), `---
title: Nucleo U575
description: Mainstream ultra-low-power board
---

# Readme body
`)

	boards := newTestEngine().Boards(root)
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}
	if boards[0].Description != "Mainstream ultra-low-power board" {
		t.Errorf("Description = %q, want frontmatter description", boards[0].Description)
	}
}
