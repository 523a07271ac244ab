package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/normalize"
)

var matchTop int

var matchCmd = &cobra.Command{
	Use:   "match [skills...]",
	Short: "Rank careers for a set of skills",
	Long: `Rank every career in the catalog against the given skills.

Skills are free text and may carry a level annotation, e.g. "Python (Advanced)"
or "SQL - Intermediate". Unannotated skills get a default level by skill class.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Limit output to the top N careers (0 = all)")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	cfg, err := loadAdvisorConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	cat, err := buildCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	scorer, closeScorer, err := buildScorer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeScorer()

	normalizer := normalize.New(cat, cfg.FuzzyThreshold)
	norm := normalizer.Normalize(args)
	for _, name := range norm.Unrecognized {
		logger.Warn("unrecognized skill ignored", "skill", name)
	}

	engine := matching.New(cat, scorer, matching.Config{MaxMissing: cfg.MaxMissing}, logger)
	matches, err := engine.Match(ctx, norm.Skills)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	if matchTop > 0 && len(matches) > matchTop {
		matches = matches[:matchTop]
	}
	return printJSON(matches)
}
