// Package history records successful project imports in a sqlite database
// under the state directory, so past workspace locations can be recalled.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS imports (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	pack_root   TEXT NOT NULL,
	board_id    TEXT NOT NULL,
	template    TEXT NOT NULL,
	destination TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_imports_created_at ON imports(created_at DESC);
`

// Entry is one recorded import.
type Entry struct {
	ID          int64     `json:"id"`
	PackRoot    string    `json:"pack_root"`
	BoardID     string    `json:"board_id"`
	Template    string    `json:"template"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one import entry.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO imports (pack_root, board_id, template, destination, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.PackRoot, e.BoardID, e.Template, e.Destination, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		e.ID = id
	}
	return nil
}

// List returns the most recent entries, newest first, capped at limit
// (limit <= 0 means a default of 50).
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, pack_root, board_id, template, destination, created_at
		 FROM imports ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.PackRoot, &e.BoardID, &e.Template, &e.Destination, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
