package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/resumify/backend/internal/ai"
	"github.com/resumify/backend/internal/config"
	"github.com/resumify/backend/internal/extract"
	"github.com/resumify/backend/internal/logger"
	"github.com/resumify/backend/internal/observability"
	"github.com/resumify/backend/internal/pipeline"
)

var (
	parseUseAI   bool
	parseVerbose bool
	parseOutFile string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume document and print the analysis as JSON",
	Long:  "Extract text from a resume document (PDF, DOCX, HTML, or plain text), parse it into structured fields, and score content quality and ATS readiness.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseUseAI, "ai", false, "Use the AI extraction backend (requires GEMINI_API_KEY)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	parseCmd.Flags().StringVarP(&parseOutFile, "out", "o", "", "Write JSON to a file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text, err := extract.FromUpload(filepath.Base(path), "", data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	cfg := config.Load()
	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var extractor pipeline.Extractor
	if parseUseAI {
		if cfg.AI.APIKey == "" {
			return fmt.Errorf("--ai requires GEMINI_API_KEY to be set")
		}
		client, err := ai.NewGeminiClient(cmd.Context(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return fmt.Errorf("failed to create AI client: %w", err)
		}
		defer func() { _ = client.Close() }()
		extractor = ai.NewExtractor(client, log)
	}

	result, err := pipeline.New(extractor, log).Run(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutFile != "" {
		if err := os.WriteFile(parseOutFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResume(result.Resume)
		printer.PrintQualityReport(result.Quality)
		printer.PrintAtsReport(result.Ats)
	}

	return nil
}
