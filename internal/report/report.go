// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders one mapping Report into its serialized views:
// JSON, CSV, Markdown, and HTML. Every view reads its numbers from the same
// Report value; nothing is recomputed per view, so the artifacts cannot
// disagree.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/pkg/types"
)

const (
	jsonFile     = "theorem_mapping.json"
	csvFile      = "theorem_mapping.csv"
	markdownFile = "theorem_mapping.md"
	htmlFile     = "theorem_mapping.html"
)

// Write emits all four report artifacts into outDir, creating it if absent.
func Write(logger *zap.Logger, r *types.Report, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating report directory %s: %w", outDir, err)
	}

	writers := []struct {
		name  string
		write func(*types.Report, string) error
	}{
		{jsonFile, writeJSON},
		{csvFile, writeCSV},
		{markdownFile, writeMarkdown},
		{htmlFile, writeHTML},
	}

	for _, w := range writers {
		path := filepath.Join(outDir, w.name)
		if err := w.write(r, path); err != nil {
			return fmt.Errorf("writing %s: %w", w.name, err)
		}
		logger.Info("wrote report artifact", zap.String("path", path))
	}
	return nil
}

// writeJSON dumps the full Report as indented JSON.
func writeJSON(r *types.Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// csvHeader fixes the flat view's column order.
var csvHeader = []string{
	"whitepaper_id", "tla_id", "confidence", "mapping_type",
	"tlaps_status", "tlc_status", "stateright_status",
	"file_location", "line_range",
}

// writeCSV emits one row per mapping in csvHeader order.
func writeCSV(r *types.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range r.Mappings {
		row := []string{
			m.WhitepaperID,
			m.TLAID,
			strconv.FormatFloat(m.Confidence, 'f', 2, 64),
			m.MappingType,
			m.Verification.TLAPSStatus,
			m.Verification.TLCStatus,
			m.Verification.StaterightStatus,
			m.FileLocation,
			m.LineRange(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeMarkdown emits the narrative view: summary counts, coverage, and a
// mapping table. The table mirrors the CSV but omits the two backend
// statuses the matcher never populates.
func writeMarkdown(r *types.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Theorem Mapping Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- Whitepaper statements: %d\n", r.TotalWhitepaperTheorems)
	fmt.Fprintf(&b, "- TLA+ statements: %d\n", r.TotalTLATheorems)
	fmt.Fprintf(&b, "- Mapping candidates: %d\n", r.MappedTheorems)
	fmt.Fprintf(&b, "- Coverage: %.1f%%\n\n", r.Coverage())

	fmt.Fprintf(&b, "## Mappings\n\n")
	fmt.Fprintf(&b, "| Whitepaper ID | TLA+ ID | Confidence | Type | TLAPS | File | Lines |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|---|\n")
	for _, m := range r.Mappings {
		fmt.Fprintf(&b, "| %s | %s | %.2f | %s | %s | %s | %s |\n",
			m.WhitepaperID, m.TLAID, m.Confidence, m.MappingType,
			m.Verification.TLAPSStatus, m.FileLocation, m.LineRange())
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Theorem Mapping Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>Theorem Mapping Report</h1>
<p>{{.Report.MappedTheorems}} mapping candidates covering {{printf "%.1f" .Coverage}}% of {{.Report.TotalWhitepaperTheorems}} whitepaper statements.</p>
<table>
<tr><th>Whitepaper ID</th><th>TLA+ ID</th><th>Confidence</th><th>TLAPS</th><th>File</th></tr>
{{range .Report.Mappings}}<tr><td>{{.WhitepaperID}}</td><td>{{.TLAID}}</td><td>{{printf "%.2f" .Confidence}}</td><td>{{.Verification.TLAPSStatus}}</td><td>{{.FileLocation}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// writeHTML emits the minimal styled hypertext view.
func writeHTML(r *types.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		Report   *types.Report
		Coverage float64
	}{r, r.Coverage()}

	return htmlTemplate.Execute(f, data)
}
