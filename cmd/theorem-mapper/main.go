// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the theorem-mapper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built once in PersistentPreRunE and passed into every component.
var logger *zap.Logger

// rootCmd is the base command for the theorem-mapper CLI.
var rootCmd = &cobra.Command{
	Use:   "theorem-mapper",
	Short: "Cross-corpus theorem correlation for whitepapers and TLA+ specs",
	Long: `theorem-mapper correlates informally numbered theorems and assumptions in
a protocol whitepaper with THEOREM/LEMMA declarations in TLA+ specification
and proof modules, and emits a consistent audit report in JSON, CSV,
Markdown, and HTML views.

Use "map" for the full pipeline, "extract" to inspect the raw statement
extraction, and "history" to index and search past runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logPath, _ := cmd.Flags().GetString("log-file")
		verbose, _ := cmd.Flags().GetBool("verbose")

		var err error
		logger, err = logging.New(logPath, verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./theorem-mapper.yaml or ~/.config/theorem-mapper/config.yaml)")
	rootCmd.PersistentFlags().String("project-root", ".", "project root directory anchoring relative paths")
	rootCmd.PersistentFlags().String("log-file", "theorem_mapper.log", "log file path (empty disables the file sink)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("theorem-mapper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "theorem-mapper"))
		}
	}

	viper.SetEnvPrefix("THEOREM_MAPPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
