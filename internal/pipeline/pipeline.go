// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates one mapping run: prose extraction, formal
// extraction, matching, report assembly, and artifact output. The flow is
// linear and single-pass; the two extractors are order-insensitive and share
// no state.
package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/internal/formal"
	"github.com/pdiddy/theorem-mapper/internal/match"
	"github.com/pdiddy/theorem-mapper/internal/prose"
	"github.com/pdiddy/theorem-mapper/internal/report"
	"github.com/pdiddy/theorem-mapper/pkg/types"
)

// Run executes the full pipeline and writes all report artifacts. The
// returned Report owns every record produced during the run; nothing
// outlives it except the serialized output files.
func Run(logger *zap.Logger, cfg types.PipelineConfig) (*types.Report, error) {
	r, err := Analyze(logger, cfg)
	if err != nil {
		return nil, err
	}
	if err := report.Write(logger, r, resolve(cfg.ProjectRoot, cfg.Report.OutputDir)); err != nil {
		return nil, err
	}
	return r, nil
}

// Analyze runs extraction and matching and assembles the Report without
// writing artifacts.
func Analyze(logger *zap.Logger, cfg types.PipelineConfig) (*types.Report, error) {
	proseStatements, err := prose.ExtractStatements(logger, resolve(cfg.ProjectRoot, cfg.Sources.WhitepaperPath))
	if err != nil {
		return nil, fmt.Errorf("extracting whitepaper statements: %w", err)
	}

	formalStatements, err := formal.ExtractModules(logger,
		resolve(cfg.ProjectRoot, cfg.Sources.SpecsDir),
		resolve(cfg.ProjectRoot, cfg.Sources.ProofsDir))
	if err != nil {
		return nil, fmt.Errorf("extracting formal statements: %w", err)
	}

	mappings := match.Statements(logger, proseStatements, formalStatements)

	return assemble(proseStatements, formalStatements, mappings), nil
}

// assemble builds the run's Report. MappedTheorems counts mapping
// candidates, which equals len(Mappings) by construction. The unmapped
// lists are declared but not populated by the current matcher.
func assemble(proseStatements map[string]types.ProseStatement, formalStatements map[string]types.FormalStatement, mappings []types.Mapping) *types.Report {
	r := &types.Report{
		GeneratedAt:             time.Now().UTC(),
		TotalWhitepaperTheorems: len(proseStatements),
		TotalTLATheorems:        len(formalStatements),
		MappedTheorems:          len(mappings),
		Mappings:                mappings,
		UnmappedWhitepaper:      []string{},
		UnmappedTLA:             []string{},
		CrossReferences:         map[string][]string{},
	}

	statusCounts := map[types.ProofStatus]int{}
	for _, f := range formalStatements {
		statusCounts[f.ProofStatus]++
	}

	r.Statistics = map[string]any{
		"whitepaper_statements": r.TotalWhitepaperTheorems,
		"tla_statements":        r.TotalTLATheorems,
		"mapping_candidates":    r.MappedTheorems,
		"coverage_percent":      r.Coverage(),
		"proofs_complete":       statusCounts[types.ProofComplete],
		"proofs_incomplete":     statusCounts[types.ProofIncomplete],
		"proofs_unknown":        statusCounts[types.ProofUnknown],
	}
	return r
}

// resolve anchors a relative path at the project root.
func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
