package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/benchmark"
	"github.com/jonathan/career-advisor/internal/normalize"
)

var (
	benchSkills     []string
	benchExperience float64
	benchSalary     int
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark <career-id>",
	Short: "Compare a skill profile against the peers of one career",
	Args:  cobra.ExactArgs(1),
	RunE:  runBenchmark,
}

func init() {
	benchmarkCmd.Flags().StringSliceVarP(&benchSkills, "skills", "s", nil, "Skills held (repeatable or comma-separated)")
	benchmarkCmd.Flags().Float64Var(&benchExperience, "experience", 0, "Years of experience (omit to skip the percentile)")
	benchmarkCmd.Flags().IntVar(&benchSalary, "salary", 0, "Current salary (omit to skip the percentile)")
	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
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
	norm := normalizer.Normalize(benchSkills)
	for _, name := range norm.Unrecognized {
		logger.Warn("unrecognized skill ignored", "skill", name)
	}

	in := benchmark.Input{Skills: norm.Skills}
	if cmd.Flags().Changed("experience") {
		in.ExperienceYears = &benchExperience
	}
	if cmd.Flags().Changed("salary") {
		in.Salary = &benchSalary
	}

	cmp, err := benchmark.New(cat).Compare(in, args[0])
	if err != nil {
		return err
	}
	return printJSON(cmp)
}
