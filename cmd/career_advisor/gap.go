package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/gap"
	"github.com/jonathan/career-advisor/internal/normalize"
)

var gapSkills []string

var gapCmd = &cobra.Command{
	Use:   "gap <career-id>",
	Short: "Analyze the skill gap against one career",
	Long:  `Compute importance-weighted completion and the missing required, optional and soft skills for a target career.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGap,
}

func init() {
	gapCmd.Flags().StringSliceVarP(&gapSkills, "skills", "s", nil, "Skills held (repeatable or comma-separated)")
	rootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	cfg, err := loadAdvisorConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := buildCatalog(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	normalizer := normalize.New(cat, cfg.FuzzyThreshold)
	norm := normalizer.Normalize(gapSkills)
	for _, name := range norm.Unrecognized {
		logger.Warn("unrecognized skill ignored", "skill", name)
	}

	report, err := gap.New(cat).Report(norm.Skills, args[0])
	if err != nil {
		return err
	}
	return printJSON(report)
}
