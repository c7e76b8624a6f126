// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/internal/pipeline"
	"github.com/pdiddy/theorem-mapper/pkg/types"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Run the full correlation pipeline and write report artifacts",
	Long: `Map extracts numbered statements from the whitepaper and THEOREM/LEMMA
declarations from the TLA+ modules, computes keyword-based mapping
candidates, and writes theorem_mapping.{json,csv,md,html} into the output
directory.`,
	RunE: runMap,
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)

	r, err := pipeline.Run(logger, cfg)
	if err != nil {
		logger.Error("mapping pipeline failed", zap.Error(err))
		return err
	}

	fmt.Fprintf(os.Stdout, "mapped %d candidate(s) across %d whitepaper and %d TLA+ statements (%.1f%% coverage)\n",
		r.MappedTheorems, r.TotalWhitepaperTheorems, r.TotalTLATheorems, r.Coverage())
	fmt.Fprintf(os.Stdout, "reports written to %s\n", cfg.Report.OutputDir)
	return nil
}

// pipelineConfig assembles the run configuration from flags.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	projectRoot, _ := cmd.Flags().GetString("project-root")
	whitepaper, _ := cmd.Flags().GetString("whitepaper")
	specsDir, _ := cmd.Flags().GetString("specs-dir")
	proofsDir, _ := cmd.Flags().GetString("proofs-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")

	return types.PipelineConfig{
		ProjectRoot: projectRoot,
		Sources: types.SourceConfig{
			WhitepaperPath: whitepaper,
			SpecsDir:       specsDir,
			ProofsDir:      proofsDir,
		},
		Report: types.ReportConfig{
			OutputDir: outputDir,
		},
	}
}

// resolvePath anchors a relative path at the project root.
func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// addSourceFlags registers the input-corpus flags shared by map and extract.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("whitepaper", "", "path to the whitepaper text or Markdown file")
	cmd.Flags().String("specs-dir", "", "directory searched recursively for .tla specification modules")
	cmd.Flags().String("proofs-dir", "", "directory searched recursively for .tla proof modules")
	cmd.Flags().String("output-dir", "./theorem_mapping_reports", "directory for report artifacts")
	_ = cmd.MarkFlagRequired("whitepaper")
	_ = cmd.MarkFlagRequired("specs-dir")
	_ = cmd.MarkFlagRequired("proofs-dir")
}

func init() {
	addSourceFlags(mapCmd)
	rootCmd.AddCommand(mapCmd)
}
