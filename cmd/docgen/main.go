// Package main provides the entry point for the docgen document generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Document generator driven by free-text analysis",
	Long:  "docgen turns unstructured French or English text into finished PDF documents. It classifies the input (CV, invoice or report), extracts structured fields with a language model, normalizes them into a canonical record and renders it through HTML to PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
