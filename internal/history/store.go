// Package history keeps a SQLite ledger of every transcript the watcher processed or failed on.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

//go:embed schema.sql
var schemaSQL string

// Store persists per-file outcomes
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one recorded run
type Entry struct {
	ID            string
	File          string
	OutputPath    string
	ProcessedPath string
	Outcome       string
	Error         string
	SummaryPoints int
	Actions       int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Open opens (creating if needed) the ledger at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record implements watcher.Recorder
func (s *Store) Record(ctx context.Context, result watcher.Result) error {
	errText := ""
	if result.Err != nil {
		errText = result.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, file, output_path, processed_path, outcome, error, summary_points, actions, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.RunID,
		filepath.Base(result.Path),
		result.OutputPath,
		result.ProcessedPath,
		string(result.Outcome),
		errText,
		result.SummaryPoints,
		result.Actions,
		result.StartedAt.UnixNano(),
		result.FinishedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file, output_path, processed_path, outcome, error, summary_points, actions, started_at, finished_at
		FROM runs
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                 Entry
			started, finished int64
		)
		if err := rows.Scan(&e.ID, &e.File, &e.OutputPath, &e.ProcessedPath, &e.Outcome, &e.Error,
			&e.SummaryPoints, &e.Actions, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.StartedAt = time.Unix(0, started)
		e.FinishedAt = time.Unix(0, finished)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return entries, nil
}
