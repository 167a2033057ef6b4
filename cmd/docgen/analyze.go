package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/config"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/ingestion"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/observability"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify input text and extract its fields without rendering",
	Long: `Runs classification and extraction only and prints the raw field bag.

The JSON written with --out can later be fed to "docgen render" to produce a
document without calling the model again.`,
	RunE: runAnalyze,
}

var (
	analyzeInput   string
	analyzeType    string
	analyzeAPIKey  string
	analyzeModel   string
	analyzeOut     string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", `Path to input text file ("-" for stdin)`)
	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", "", "Force document type (cv, facture, rapport) and skip classification")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model name override")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "Write the analysis JSON to this file instead of stdout")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a summary of the analysis")

	_ = analyzeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := ingestion.ReadInput(analyzeInput, os.Stdin)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	if text == "" {
		return fmt.Errorf("ingestion failed: input is empty")
	}

	cfg := config.Config{APIKey: analyzeAPIKey, Model: analyzeModel}
	logger := newLogger(analyzeVerbose)

	analyzer, closeAnalyzer, err := newAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeAnalyzer()

	var result *types.Analysis
	if analyzeType != "" {
		docType := types.ParseDocumentType(analyzeType)
		bag, err := analyzer.Extract(ctx, text, docType)
		if err != nil {
			return err
		}
		result = &types.Analysis{
			DocumentType: docType,
			Confidence:   1.0,
			Data:         bag,
			RawText:      text,
		}
	} else {
		result, err = analyzer.Analyze(ctx, text)
		if err != nil {
			return err
		}
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(result)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	if analyzeOut == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(analyzeOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write analysis file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Analysis written to %s\n", analyzeOut)
	return nil
}
