package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/config"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/normalize"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/rendering"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/schemas"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <analysis.json>",
	Short: "Render a document from a saved analysis, without calling the model",
	Long: `Normalizes a field bag previously produced by "docgen analyze" and renders
it to PDF (or HTML only). No API key is needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderOutputDir  string
	renderType       string
	renderHTMLOnly   bool
	renderChromePath string
	renderNoSandbox  bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutputDir, "output", "o", "out", "Output directory for generated documents")
	renderCmd.Flags().StringVarP(&renderType, "type", "t", "", "Override the document type stored in the analysis")
	renderCmd.Flags().BoolVar(&renderHTMLOnly, "html-only", false, "Write HTML and skip the PDF step (no browser needed)")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome-path", "", "Chrome/Chromium executable path")
	renderCmd.Flags().BoolVar(&renderNoSandbox, "no-sandbox", false, "Disable the Chrome sandbox (needed in some containers)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := newLogger(false)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}

	var analysisResult types.Analysis
	if err := json.Unmarshal(data, &analysisResult); err != nil {
		return fmt.Errorf("failed to parse analysis file: %w", err)
	}

	docType := analysisResult.DocumentType
	if renderType != "" {
		docType = types.ParseDocumentType(renderType)
	}

	record, outcome := normalize.DispatchWithOutcome(docType, analysisResult.Data, logger)
	if outcome.Defaulted {
		fmt.Fprintf(os.Stderr, "Warning: normalization fell back to defaults: %s\n", outcome.Reason)
	}
	if err := schemas.ValidateRecord(docType, record); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: schema validation: %v\n", err)
	}

	html, err := rendering.RenderHTML(record)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if err := os.MkdirAll(renderOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	baseName := fmt.Sprintf("%s-%s", docType, base)

	if renderHTMLOnly {
		htmlPath := filepath.Join(renderOutputDir, baseName+".html")
		if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Generated %s document: %s\n", docType, htmlPath)
		return nil
	}

	renderer, closeRenderer, err := newRenderer(config.Config{
		ChromePath: renderChromePath,
		NoSandbox:  renderNoSandbox,
	})
	if err != nil {
		return err
	}
	defer closeRenderer()

	pdfPath := filepath.Join(renderOutputDir, baseName+".pdf")
	if err := renderer.RenderPDFToFile(ctx, html, pdfPath); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Generated %s document: %s\n", docType, pdfPath)
	return nil
}
