// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/theorem-mapper/internal/history"
	"github.com/pdiddy/theorem-mapper/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Index and search past mapping runs",
	Long: `History keeps a local SQLite index of mapping runs. Use "store" to ingest
a generated theorem_mapping.json, "list" to see stored runs, and "search"
for full-text retrieval across stored mappings.`,
}

// --- store subcommand ---

var historyStoreCmd = &cobra.Command{
	Use:   "store [report.json]",
	Short: "Ingest a generated theorem_mapping.json into the history index",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryStore,
}

func runHistoryStore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading report %s: %w", args[0], err)
	}

	var r types.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parsing report %s: %w", args[0], err)
	}

	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.StoreReport(context.Background(), &r)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "stored run %s (%d mapping(s))\n", runID, len(r.Mappings))
	return nil
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored mapping runs",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs stored.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %8s  %8s  %8s  %8s\n",
		"Run", "Generated", "Prose", "TLA+", "Mapped", "Coverage")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %8d  %8d  %8d  %7.1f%%\n",
			r.ID, r.GeneratedAt.Format(time.DateTime),
			r.WhitepaperStatements, r.TLAStatements, r.MappingCandidates, r.Coverage)
	}
	return nil
}

// --- search subcommand ---

var historySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search across stored mappings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHistorySearch,
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	maxResults, _ := cmd.Flags().GetInt("max-results")
	results, err := store.Search(context.Background(), strings.Join(args, " "), maxResults)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%s -> %s  conf=%.2f  tlaps=%s  %s\n",
			r.WhitepaperID, r.TLAID, r.Confidence, r.TLAPSStatus, r.FileLocation)
		if r.Notes != "" {
			fmt.Fprintf(os.Stdout, "    %s\n", r.Notes)
		}
	}
	return nil
}

// openHistory opens the run-history store under the project root.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	projectRoot, _ := cmd.Flags().GetString("project-root")
	dir, _ := cmd.Flags().GetString("history-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return history.NewStore(types.HistoryConfig{
		Dir:        resolvePath(projectRoot, dir),
		MaxResults: maxResults,
	})
}

func init() {
	historyCmd.PersistentFlags().String("history-dir", ".theorem-mapper", "directory holding history.db")
	historyCmd.PersistentFlags().Int("max-results", 0, "maximum search results (0: store default)")
	historyListCmd.Flags().Bool("json", false, "emit JSON instead of a table")
	historySearchCmd.Flags().Bool("json", false, "emit JSON instead of text")

	historyCmd.AddCommand(historyStoreCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	rootCmd.AddCommand(historyCmd)
}
