package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/priyankac/axon/internal/gateway"
	"github.com/priyankac/axon/internal/store"
	"github.com/priyankac/axon/internal/tutor"
)

var rootCmd = &cobra.Command{
	Use:   "axon",
	Short: "AI study companion for neural circuits",
	Long:  "Axon — ask an AI tutor about neural circuits, run what-if mutation experiments, and fact-check claims. Answers degrade gracefully when the tutor is unreachable.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; the environment may be set directly.
		_ = godotenv.Load()

		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AXON_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(mutateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then AXON_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newSession wires config, event store, client, and pipeline for the
// question commands. The returned store must be closed by the caller.
func newSession(ctx context.Context, cmd *cobra.Command) (*tutor.Session, *store.Store, error) {
	cfg := gateway.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		// Fall back to credential discovery before giving up.
		discovered, ok := gateway.DiscoverConfig()
		if !ok {
			return nil, nil, fmt.Errorf("no answering service configured: %w", err)
		}
		discovered.Retry = cfg.Retry
		cfg = discovered
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	client, err := gateway.NewClient(ctx, cfg, s.EventRepo())
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	tutorCfg := tutor.DefaultConfig()
	tutorCfg.Retry = cfg.Retry
	if level, _ := cmd.Flags().GetString("level"); level != "" {
		tutorCfg.Level = gateway.ExperienceLevel(level)
	}
	tutorCfg.Notifier = printNotice

	return tutor.NewSession(client, tutorCfg), s, nil
}

// printNotice is the observability side channel: retry progress and
// review warnings go to stderr, never to the answer output.
func printNotice(n tutor.Notice) {
	switch n.Kind {
	case tutor.NoticeReview:
		slog.Warn(n.Message)
	default:
		fmt.Fprintln(os.Stderr, n.Message)
	}
}
