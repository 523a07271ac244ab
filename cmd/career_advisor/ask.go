package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/qa"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask a career question answered from the curated Q&A table",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	setupLogger()

	cfg, err := loadAdvisorConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := buildCatalog(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	question := strings.Join(args, " ")
	answer, ok := qa.New(cat, cfg.QAFloor).Lookup(question)
	if !ok {
		fmt.Println("No stored answer matches that question.")
		return nil
	}
	return printJSON(answer)
}
