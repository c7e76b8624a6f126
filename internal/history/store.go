// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists mapping runs in a local SQLite index so past
// reports stay searchable after their artifact files are overwritten.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/theorem-mapper/pkg/types"
)

const dbFile = "history.db"

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
			id TEXT PRIMARY KEY,
			generated_at TEXT NOT NULL,
			stored_at TEXT NOT NULL,
			whitepaper_statements INTEGER,
			tla_statements INTEGER,
			mapping_candidates INTEGER,
			coverage REAL
		)`,
		`CREATE TABLE IF NOT EXISTS mappings (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			whitepaper_id TEXT NOT NULL,
			tla_id TEXT NOT NULL,
			confidence REAL,
			mapping_type TEXT,
			tlaps_status TEXT,
			tlc_status TEXT,
			stateright_status TEXT,
			file_location TEXT,
			line_start INTEGER,
			line_end INTEGER,
			notes TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_mappings_run_id ON mappings(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='mappings_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE mappings_fts USING fts5(whitepaper_id, tla_id, notes, content=mappings, content_rowid=rowid)`,
			`CREATE TRIGGER mappings_ai AFTER INSERT ON mappings BEGIN
				INSERT INTO mappings_fts(rowid, whitepaper_id, tla_id, notes)
				VALUES (new.rowid, new.whitepaper_id, new.tla_id, new.notes);
			END`,
			`CREATE TRIGGER mappings_ad AFTER DELETE ON mappings BEGIN
				INSERT INTO mappings_fts(mappings_fts, rowid, whitepaper_id, tla_id, notes)
				VALUES('delete', old.rowid, old.whitepaper_id, old.tla_id, old.notes);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// StoreReport ingests one Report as a new run and returns its identifier.
func (s *Store) StoreReport(ctx context.Context, r *types.Report) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, generated_at, stored_at, whitepaper_statements,
			tla_statements, mapping_candidates, coverage)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID,
		r.GeneratedAt.UTC().Format(time.RFC3339Nano),
		time.Now().UTC().Format(time.RFC3339Nano),
		r.TotalWhitepaperTheorems,
		r.TotalTLATheorems,
		r.MappedTheorems,
		r.Coverage(),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO mappings (run_id, whitepaper_id, tla_id, confidence, mapping_type,
			tlaps_status, tlc_status, stateright_status, file_location, line_start, line_end, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range r.Mappings {
		_, err := stmt.ExecContext(ctx,
			runID, m.WhitepaperID, m.TLAID, m.Confidence, m.MappingType,
			m.Verification.TLAPSStatus, m.Verification.TLCStatus, m.Verification.StaterightStatus,
			m.FileLocation, m.LineStart, m.LineEnd, m.Notes,
		)
		if err != nil {
			return "", fmt.Errorf("inserting mapping %s->%s: %w", m.WhitepaperID, m.TLAID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing transaction: %w", err)
	}
	return runID, nil
}
