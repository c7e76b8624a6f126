// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceConfig identifies the input corpus for one mapping run.
type SourceConfig struct {
	// WhitepaperPath is the path to the whitepaper text or Markdown file.
	WhitepaperPath string `json:"whitepaper_path" yaml:"whitepaper_path"`

	// SpecsDir is the root searched recursively for .tla specification modules.
	SpecsDir string `json:"specs_dir" yaml:"specs_dir"`

	// ProofsDir is the root searched recursively for .tla proof modules.
	ProofsDir string `json:"proofs_dir" yaml:"proofs_dir"`
}

// ReportConfig holds settings for report artifact output.
type ReportConfig struct {
	// OutputDir receives theorem_mapping.{json,csv,md,html}
	// (default "./theorem_mapping_reports"). Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// HistoryConfig holds settings for the run-history index.
type HistoryConfig struct {
	// Dir is the directory containing history.db
	// (default "<project-root>/.theorem-mapper").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	// ProjectRoot anchors relative input paths (default ".").
	ProjectRoot string `json:"project_root" yaml:"project_root"`

	Sources SourceConfig  `json:"sources" yaml:"sources"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	History HistoryConfig `json:"history" yaml:"history"`
}
