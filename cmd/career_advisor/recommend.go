package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/benchmark"
	"github.com/jonathan/career-advisor/internal/gap"
	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/jonathan/career-advisor/internal/normalize"
	"github.com/jonathan/career-advisor/internal/recommend"
	"github.com/jonathan/career-advisor/internal/resume"
	"github.com/jonathan/career-advisor/internal/types"
)

var (
	recSkills       []string
	recCareerID     string
	recFeaturesPath string
	recExperience   float64
	recSalary       int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Compose a full career recommendation",
	Long:  `Run matching, gap analysis, peer benchmarking and optional resume scoring, composed into one recommendation bundle with priority skills and a learning path.`,
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringSliceVarP(&recSkills, "skills", "s", nil, "Skills held (repeatable or comma-separated)")
	recommendCmd.Flags().StringVar(&recCareerID, "career", "", "Target career id (defaults to the top match)")
	recommendCmd.Flags().StringVarP(&recFeaturesPath, "features", "f", "", "Optional resume features JSON file")
	recommendCmd.Flags().Float64Var(&recExperience, "experience", 0, "Years of experience (omit to skip the percentile)")
	recommendCmd.Flags().IntVar(&recSalary, "salary", 0, "Current salary (omit to skip the percentile)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
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

	req := recommend.Request{
		RawSkills:      recSkills,
		TargetCareerID: recCareerID,
	}
	if recFeaturesPath != "" {
		data, err := os.ReadFile(recFeaturesPath)
		if err != nil {
			return fmt.Errorf("failed to read features file: %w", err)
		}
		var features types.ResumeFeatures
		if err := json.Unmarshal(data, &features); err != nil {
			return fmt.Errorf("failed to parse features JSON: %w", err)
		}
		req.Resume = &features
	}
	if cmd.Flags().Changed("experience") {
		req.ExperienceYears = &recExperience
	}
	if cmd.Flags().Changed("salary") {
		req.Salary = &recSalary
	}

	normalizer := normalize.New(cat, cfg.FuzzyThreshold)
	matcher := matching.New(cat, scorer, matching.Config{MaxMissing: cfg.MaxMissing}, logger)
	composer := recommend.New(cat, normalizer, matcher,
		gap.New(cat), benchmark.New(cat), resume.New(cat, matcher), logger)

	bundle, err := composer.Recommend(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(bundle)
}
