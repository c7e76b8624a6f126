package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/pkg/types"
)

const whitepaperText = "Theorem 1. Safety holds for all byzantine validators.\n"

const moduleText = `---- MODULE Protocol ----
THEOREM Safety == TypeOK /\ NoByzantineMajority
PROOF
<1>1. QED
====
`

func setupProject(t *testing.T) types.PipelineConfig {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "specs"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proofs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "whitepaper.md"), []byte(whitepaperText), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "specs", "Protocol.tla"), []byte(moduleText), 0o644))

	return types.PipelineConfig{
		ProjectRoot: root,
		Sources: types.SourceConfig{
			WhitepaperPath: "whitepaper.md",
			SpecsDir:       "specs",
			ProofsDir:      "proofs",
		},
		Report: types.ReportConfig{
			OutputDir: "theorem_mapping_reports",
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := setupProject(t)

	r, err := Run(zap.NewNop(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, r.TotalWhitepaperTheorems)
	assert.Equal(t, 1, r.TotalTLATheorems)
	require.Len(t, r.Mappings, 1)
	assert.Equal(t, len(r.Mappings), r.MappedTheorems)

	m := r.Mappings[0]
	assert.Equal(t, "theorem_1", m.WhitepaperID)
	assert.Equal(t, "Protocol_Safety", m.TLAID)
	assert.Equal(t, 0.7, m.Confidence)
	assert.Equal(t, "complete", m.Verification.TLAPSStatus)

	outDir := filepath.Join(cfg.ProjectRoot, cfg.Report.OutputDir)
	for _, name := range []string{"theorem_mapping.json", "theorem_mapping.csv", "theorem_mapping.md", "theorem_mapping.html"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "artifact %s missing", name)
	}

	// The JSON artifact must carry the same numbers as the in-memory report.
	data, err := os.ReadFile(filepath.Join(outDir, "theorem_mapping.json"))
	require.NoError(t, err)
	var decoded types.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.MappedTheorems, decoded.MappedTheorems)
	assert.Equal(t, r.TotalWhitepaperTheorems, decoded.TotalWhitepaperTheorems)
}

func TestAnalyzeMissingWhitepaper(t *testing.T) {
	cfg := setupProject(t)
	cfg.Sources.WhitepaperPath = "missing.md"

	r, err := Analyze(zap.NewNop(), cfg)
	require.NoError(t, err, "a missing whitepaper degrades gracefully")

	assert.Equal(t, 0, r.TotalWhitepaperTheorems)
	assert.Equal(t, 1, r.TotalTLATheorems)
	assert.Empty(t, r.Mappings)
	assert.Equal(t, 0.0, r.Coverage())
}

func TestAnalyzeStatistics(t *testing.T) {
	cfg := setupProject(t)

	r, err := Analyze(zap.NewNop(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, r.Statistics["whitepaper_statements"])
	assert.Equal(t, 1, r.Statistics["tla_statements"])
	assert.Equal(t, 1, r.Statistics["mapping_candidates"])
	assert.Equal(t, 100.0, r.Statistics["coverage_percent"])
	assert.Equal(t, 1, r.Statistics["proofs_complete"])
}

func TestAnalyzeUnmappedListsStayEmpty(t *testing.T) {
	cfg := setupProject(t)

	r, err := Analyze(zap.NewNop(), cfg)
	require.NoError(t, err)

	assert.NotNil(t, r.UnmappedWhitepaper)
	assert.NotNil(t, r.UnmappedTLA)
	assert.Empty(t, r.UnmappedWhitepaper)
	assert.Empty(t, r.UnmappedTLA)
}
