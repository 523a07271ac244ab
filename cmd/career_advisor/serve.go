package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for career matching, gap analysis, resume scoring, peer benchmarking and recommendations.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := setupLogger()

	cfg, err := loadAdvisorConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	ctx := cmd.Context()
	cat, err := buildCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	logger.Info("catalog loaded",
		"version", cat.Version(),
		"careers", len(cat.Careers()),
		"skills", len(cat.Skills()))

	scorer, closeScorer, err := buildScorer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeScorer()

	srv := server.New(cat, server.Config{
		Port:           cfg.Port,
		FuzzyThreshold: cfg.FuzzyThreshold,
		QAFloor:        cfg.QAFloor,
		MaxMissing:     cfg.MaxMissing,
		Scorer:         scorer,
		Logger:         logger,
	})
	return srv.Start()
}
