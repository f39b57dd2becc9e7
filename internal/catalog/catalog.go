// Package catalog keeps a small local history of conversion runs so
// past conversions can be reviewed with the history command.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded conversion.
type Run struct {
	ID          int64
	ConvertedAt time.Time
	InputPath   string
	Source      string
	Format      string
	Documents   int
	Warnings    int
}

// Catalog wraps the SQLite database holding run history.
type Catalog struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	converted_at TEXT NOT NULL,
	input_path   TEXT NOT NULL,
	source       TEXT NOT NULL,
	format       TEXT NOT NULL,
	documents    INTEGER NOT NULL,
	warnings     INTEGER NOT NULL
);`

// Open opens (creating if needed) the catalog database at path.
func Open(path string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize catalog schema: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// RecordRun appends one run to the history.
func (c *Catalog) RecordRun(r Run) error {
	_, err := c.db.Exec(
		`INSERT INTO runs (converted_at, input_path, source, format, documents, warnings)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ConvertedAt.Format(time.RFC3339), r.InputPath, r.Source, r.Format, r.Documents, r.Warnings,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (c *Catalog) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.db.Query(
		`SELECT id, converted_at, input_path, source, format, documents, warnings
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&r.ID, &ts, &r.InputPath, &r.Source, &r.Format, &r.Documents, &r.Warnings); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.ConvertedAt, _ = time.Parse(time.RFC3339, ts)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return runs, nil
}
