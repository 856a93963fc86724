// Package main provides the entry point for the resume parsing backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "resumify",
	Short:   "Resume parsing HTTP API and CLI",
	Long:    "Resumify extracts structured data from resume documents (PDF, DOCX, HTML, plain text) and scores content quality and ATS readiness, served over REST or run as a one-shot command.",
	Version: "1.0.0",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
