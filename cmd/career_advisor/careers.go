package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "List the careers in the catalog",
	RunE:  runCareers,
}

func init() {
	rootCmd.AddCommand(careersCmd)
}

func runCareers(cmd *cobra.Command, _ []string) error {
	setupLogger()

	cfg, err := loadAdvisorConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := buildCatalog(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	fmt.Printf("Dataset version: %s\n", cat.Version())
	for _, career := range cat.Careers() {
		fmt.Printf("  %-24s %s (%d requirements)\n", career.ID, career.Name, len(career.Requirements))
	}
	return nil
}
