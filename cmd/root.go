package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/akshara/internal/config"
	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/learner"
	"github.com/abhisek/akshara/internal/logging"
	"github.com/abhisek/akshara/internal/store"
)

// memoryDSN selects a throwaway in-process store instead of SQLite.
const memoryDSN = ":memory:"

var rootCmd = &cobra.Command{
	Use:   "akshara",
	Short: "Learn to read and write the Kannada alphabet",
	Long:  "Akshara is a terminal app for learning the Kannada alphabet letter by letter, with daily review of what you already know.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file, or :memory: (overrides AKSHARA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(lettersCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AKSHARA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = cfg.DBPath
	}
	switch p {
	case "":
		return store.DefaultDBPath()
	case memoryDSN:
		return p, nil
	}
	return p, store.EnsureDir(p)
}

// openLearner loads configuration, sets up logging, opens the store and
// builds a Learner. The returned function releases the store and log file.
// Without AKSHARA_LOG_FILE logs go to logSink; a nil sink discards them,
// which keeps the TUI's screen clean.
func openLearner(cmd *cobra.Command, logSink io.Writer) (*learner.Learner, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile, logSink)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)

	closers := []func() error{closeLog}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("cleanup failed", "error", err)
			}
		}
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}

	var medium store.Medium
	if dbPath == memoryDSN {
		medium = store.NewMemory()
	} else {
		st, err := store.Open(dbPath)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
		closers = append(closers, st.Close)
		medium = st
	}
	logger.Debug("store opened", "path", dbPath)

	cur, err := curriculum.LoadFile(cfg.Curriculum)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load curriculum: %w", err)
	}

	l, err := learner.New(cur, store.New(medium, logger), learner.WithReviewLimit(cfg.ReviewLimit))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return l, cleanup, nil
}
