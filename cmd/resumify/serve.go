package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumify/backend/internal/ai"
	"github.com/resumify/backend/internal/config"
	"github.com/resumify/backend/internal/logger"
	"github.com/resumify/backend/internal/pipeline"
	"github.com/resumify/backend/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume parsing and usage endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var extractor pipeline.Extractor
	if cfg.AIAssistActive() {
		client, err := ai.NewGeminiClient(cmd.Context(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return fmt.Errorf("failed to create AI client: %w", err)
		}
		defer func() { _ = client.Close() }()
		extractor = ai.NewExtractor(client, log)
		log.Info("AI assist enabled", zap.String("model", client.Model()))
	}

	srv := server.New(cfg, pipeline.New(extractor, log), log)
	return srv.Start()
}
