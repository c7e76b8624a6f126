// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"time"
)

// RunSummary is one stored run's headline numbers.
type RunSummary struct {
	ID                   string    `json:"id" yaml:"id"`
	GeneratedAt          time.Time `json:"generated_at" yaml:"generated_at"`
	StoredAt             time.Time `json:"stored_at" yaml:"stored_at"`
	WhitepaperStatements int       `json:"whitepaper_statements" yaml:"whitepaper_statements"`
	TLAStatements        int       `json:"tla_statements" yaml:"tla_statements"`
	MappingCandidates    int       `json:"mapping_candidates" yaml:"mapping_candidates"`
	Coverage             float64   `json:"coverage" yaml:"coverage"`
}

// SearchResult is one stored mapping with its owning run.
type SearchResult struct {
	RunID        string  `json:"run_id" yaml:"run_id"`
	WhitepaperID string  `json:"whitepaper_id" yaml:"whitepaper_id"`
	TLAID        string  `json:"tla_id" yaml:"tla_id"`
	Confidence   float64 `json:"confidence" yaml:"confidence"`
	MappingType  string  `json:"mapping_type" yaml:"mapping_type"`
	TLAPSStatus  string  `json:"tlaps_status" yaml:"tlaps_status"`
	FileLocation string  `json:"file_location" yaml:"file_location"`
	Notes        string  `json:"notes" yaml:"notes"`
}

// ListRuns returns stored runs, most recently stored first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, generated_at, stored_at, whitepaper_statements,
			tla_statements, mapping_candidates, coverage
		 FROM runs ORDER BY stored_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var generated, stored string
		if err := rows.Scan(&r.ID, &generated, &stored, &r.WhitepaperStatements,
			&r.TLAStatements, &r.MappingCandidates, &r.Coverage); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.GeneratedAt, _ = time.Parse(time.RFC3339Nano, generated)
		r.StoredAt, _ = time.Parse(time.RFC3339Nano, stored)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Search runs an FTS5 query over stored mapping identifiers and notes,
// ranked by relevance. maxResults <= 0 uses the store default.
func (s *Store) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT m.run_id, m.whitepaper_id, m.tla_id, m.confidence, m.mapping_type,
			m.tlaps_status, m.file_location, m.notes
		 FROM mappings_fts
		 JOIN mappings m ON m.rowid = mappings_fts.rowid
		 WHERE mappings_fts MATCH ?
		 ORDER BY mappings_fts.rank
		 LIMIT ?`, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching mappings: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.RunID, &r.WhitepaperID, &r.TLAID, &r.Confidence,
			&r.MappingType, &r.TLAPSStatus, &r.FileLocation, &r.Notes); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
