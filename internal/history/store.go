// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion runs in a local SQLite database so
// past conversions can be listed and exported.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/linkconv/pkg/types"
)

const (
	defaultLimit = 20
	exportLimit  = 100000

	// DefaultFile is the database file name under the linkconv config directory.
	DefaultFile = "history.db"
)

// DefaultPath returns ~/.config/linkconv/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "linkconv", DefaultFile), nil
}

// Store manages the history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at path, creating the
// parent directory and schema when missing.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			folder TEXT NOT NULL,
			converted INTEGER NOT NULL,
			no_url INTEGER NOT NULL,
			unsupported INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			duration_ns INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_folder ON runs(folder)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores run and returns it with its assigned ID.
func (s *Store) Record(ctx context.Context, run types.Run) (types.Run, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (folder, converted, no_url, unsupported, started_at, duration_ns)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Folder, run.Converted, run.NoURL, run.Unsupported,
		run.StartedAt.UTC().Format(time.RFC3339Nano), int64(run.Duration),
	)
	if err != nil {
		return run, fmt.Errorf("recording run for %s: %w", run.Folder, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return run, fmt.Errorf("reading run id: %w", err)
	}
	run.ID = id
	return run, nil
}

// Recent returns up to limit runs, newest first. A limit of zero or less
// uses the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, folder, converted, no_url, unsupported, started_at, duration_ns
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var (
			r         types.Run
			startedAt string
			duration  int64
		)
		if err := rows.Scan(&r.ID, &r.Folder, &r.Converted, &r.NoURL, &r.Unsupported, &startedAt, &duration); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at for run %d: %w", r.ID, err)
		}
		r.Duration = time.Duration(duration)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
