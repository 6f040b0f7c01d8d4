// Package main provides the entry point for the Portfolio Builder HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_builder",
	Short: "Resume-to-portfolio HTTP API server",
	Long:  "Portfolio Builder extracts a structured professional profile from an uploaded resume (PDF/DOC/DOCX) and renders it into a static portfolio website via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
