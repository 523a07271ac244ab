package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/resume"
	"github.com/jonathan/career-advisor/internal/types"
)

var (
	scoreFeaturesPath string
	scoreCareerID     string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score pre-extracted resume features",
	Long: `Score resume features for ATS readiness and career fit.

The features file is JSON produced by an external resume parser: extracted
skill ids, raw text and structural counts. This tool never parses resume
files itself.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreFeaturesPath, "features", "f", "", "Path to resume features JSON file")
	scoreCmd.Flags().StringVar(&scoreCareerID, "career", "", "Target career id for keyword scoring (defaults to the top fit)")
	_ = scoreCmd.MarkFlagRequired("features")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
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

	data, err := os.ReadFile(scoreFeaturesPath)
	if err != nil {
		return fmt.Errorf("failed to read features file: %w", err)
	}
	var features types.ResumeFeatures
	if err := json.Unmarshal(data, &features); err != nil {
		return fmt.Errorf("failed to parse features JSON: %w", err)
	}

	if scoreCareerID != "" {
		if _, ok := cat.Career(scoreCareerID); !ok {
			return fmt.Errorf("unknown career: %q", scoreCareerID)
		}
	}

	matcher := matching.New(cat, scorer, matching.Config{MaxMissing: cfg.MaxMissing}, logger)
	result, err := resume.New(cat, matcher).Score(ctx, features, scoreCareerID)
	if err != nil {
		return err
	}
	return printJSON(result)
}
