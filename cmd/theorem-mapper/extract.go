// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/theorem-mapper/internal/formal"
	"github.com/pdiddy/theorem-mapper/internal/prose"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the extractors only and dump raw statements as YAML",
	Long: `Extract runs the prose and formal extractors without matching and writes
whitepaper-statements.yaml and tla-statements.yaml into the output
directory, for inspecting what the pattern scan recovered.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	proseStatements, err := prose.ExtractStatements(logger, resolvePath(cfg.ProjectRoot, cfg.Sources.WhitepaperPath))
	if err != nil {
		logger.Error("prose extraction failed", zap.Error(err))
		return err
	}

	formalStatements, err := formal.ExtractModules(logger,
		resolvePath(cfg.ProjectRoot, cfg.Sources.SpecsDir),
		resolvePath(cfg.ProjectRoot, cfg.Sources.ProofsDir))
	if err != nil {
		logger.Error("formal extraction failed", zap.Error(err))
		return err
	}

	outDir := resolvePath(cfg.ProjectRoot, cfg.Report.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	dumps := []struct {
		name string
		data any
	}{
		{"whitepaper-statements.yaml", proseStatements},
		{"tla-statements.yaml", formalStatements},
	}
	for _, d := range dumps {
		out, err := yaml.Marshal(d.data)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", d.name, err)
		}
		path := filepath.Join(outDir, d.name)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", d.name, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	}

	return nil
}

func init() {
	addSourceFlags(extractCmd)
	rootCmd.AddCommand(extractCmd)
}
