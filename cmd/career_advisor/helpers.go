package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/matching"
)

// loadAdvisorConfig merges config file, environment and persistent flags.
// Flags win when explicitly set.
func loadAdvisorConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	} else {
		cfg.FromEnv()
	}

	if cmd.Flags().Changed("data") && flagDataDir != "" {
		cfg.DataDir = flagDataDir
		cfg.DatabaseURL = ""
	}
	if cmd.Flags().Changed("db-url") && flagDBURL != "" {
		cfg.DatabaseURL = flagDBURL
		cfg.DataDir = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// buildCatalog loads and validates the dataset from the configured source.
func buildCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	var (
		snap *catalog.Snapshot
		err  error
	)
	if cfg.DatabaseURL != "" {
		snap, err = catalog.LoadPostgres(ctx, cfg.DatabaseURL)
	} else {
		snap, err = catalog.LoadDir(cfg.DataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return catalog.Build(snap)
}

// buildScorer returns the configured semantic scorer, or nil for the
// built-in one. The returned closer is never nil.
func buildScorer(ctx context.Context, cfg *config.Config) (matching.SemanticScorer, func(), error) {
	if cfg.GeminiAPIKey == "" {
		return nil, func() {}, nil
	}
	scorer, err := matching.NewGeminiScorer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create semantic scorer: %w", err)
	}
	return scorer, func() { _ = scorer.Close() }, nil
}

// setupLogger installs a text slog handler at the requested verbosity.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// printJSON writes a value to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
