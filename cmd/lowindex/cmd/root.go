// Package cmd implements the lowindex CLI: a cobra/viper command tree
// with persistent flags parsed in PersistentPreRunE, and a package-level
// logger other commands fetch via GetLogger.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lowindex/sims/internal/config"
	"github.com/lowindex/sims/internal/logging"
)

var (
	configPath     string
	verbose        bool
	threadsFlag    int
	presFile       string
	maxNodesFlag   uint32
	reportInterval time.Duration

	logger *slog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lowindex",
	Short: "Enumerate low-index congruences of a finitely presented semigroup or monoid",
	Long: `lowindex searches, by backtracking over partial word graphs, for every
congruence of a finitely presented semigroup or monoid whose index (number
of classes) is at most a given bound.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger = logging.New(logging.Config{Level: level, Format: cfg.Log.Format})
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetLogger returns the logger built from persistent flags/config.
func GetLogger() *slog.Logger { return logger }

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to lowindex.yaml (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&threadsFlag, "threads", "t", 1, "Worker thread count")
	rootCmd.PersistentFlags().StringVarP(&presFile, "presentation", "p", "", "Path to a presentation JSON file (required)")
	rootCmd.MarkPersistentFlagRequired("presentation")
	rootCmd.PersistentFlags().Uint32VarP(&maxNodesFlag, "max-nodes", "n", 4, "Maximum number of classes")
	rootCmd.PersistentFlags().DurationVar(&reportInterval, "report-interval", 0, "Log a Stats snapshot on this interval while the search runs (0 disables)")
}
