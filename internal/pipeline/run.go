// Package pipeline provides the high-level orchestration for the document generation process.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/analysis"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/ingestion"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/normalize"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/observability"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/rendering"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/schemas"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline stage names reported through ProgressEvent.
const (
	StageIngest    = "ingest"
	StageClassify  = "classify"
	StageExtract   = "extract"
	StageNormalize = "normalize"
	StageValidate  = "validate"
	StageRender    = "render"
)

// DocumentAnalyzer is the language-model surface the pipeline depends on.
// *analysis.Analyzer satisfies it; tests substitute a stub.
type DocumentAnalyzer interface {
	Classify(ctx context.Context, text string) (types.DocumentType, float64, error)
	Extract(ctx context.Context, text string, docType types.DocumentType) (types.Bag, error)
}

// PDFWriter converts rendered HTML into a PDF file. *rendering.PDFRenderer
// satisfies it; tests substitute a stub to avoid requiring a browser.
type PDFWriter interface {
	RenderPDFToFile(ctx context.Context, html, path string) error
}

// RunOptions holds configuration for a single document generation run.
type RunOptions struct {
	InputPath  string    // Path to input file, "-" for stdin
	Reader     io.Reader // Stdin source when InputPath is "-"
	RawText    string    // Direct text input; takes precedence over InputPath
	OutputDir  string    // Destination directory, created if missing
	BaseName   string    // Output file base name; derived from type and run ID if empty
	ForcedType string    // Skip classification and use this document type
	KeepHTML   bool      // Write the intermediate HTML next to the PDF
	Verbose    bool      // Print stage summaries through the Printer
	Printer    *observability.Printer
	OnProgress ProgressCallback
}

// Result holds the outputs of a completed run.
type Result struct {
	RunID        string             `json:"run_id"`
	DocumentType types.DocumentType `json:"document_type"`
	Confidence   float64            `json:"confidence"`
	Record       types.Record       `json:"record"`
	HTMLPath     string             `json:"html_path,omitempty"`
	PDFPath      string             `json:"pdf_path"`
	Defaulted    bool               `json:"defaulted"`
	Reason       string             `json:"reason,omitempty"`
}

// Runner executes the generation pipeline: ingest, classify, extract,
// normalize, validate, render. A Runner is safe for concurrent use.
type Runner struct {
	analyzer DocumentAnalyzer
	renderer PDFWriter
	logger   *slog.Logger
}

// NewRunner creates a Runner from its collaborators. A nil logger falls
// back to slog.Default().
func NewRunner(analyzer DocumentAnalyzer, renderer PDFWriter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{analyzer: analyzer, renderer: renderer, logger: logger}
}

// Run generates one document from free text and writes the PDF under
// opts.OutputDir. Normalization never fails; upstream stages (ingestion,
// model calls, rendering) surface their errors.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	runID := uuid.New().String()
	logger := r.logger.With(slog.String("run_id", runID))

	// Stage 1: ingest
	text, err := r.ingest(opts)
	if err != nil {
		return nil, fmt.Errorf("ingestion failed: %w", err)
	}
	if text == "" {
		return nil, fmt.Errorf("ingestion failed: input is empty")
	}
	r.emit(opts, StageIngest, fmt.Sprintf("ingested %d characters", len(text)))

	// Stage 2: classify
	docType, confidence, err := r.classify(ctx, opts, text)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	r.emit(opts, StageClassify, fmt.Sprintf("classified as %s (%.2f)", docType, confidence))

	// Stage 3: extract
	bag, err := r.analyzer.Extract(ctx, text, docType)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	r.emit(opts, StageExtract, fmt.Sprintf("extracted %d fields", len(bag)))
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintAnalysis(&types.Analysis{
			DocumentType: docType,
			Confidence:   confidence,
			Data:         bag,
		})
	}

	// Stage 4: normalize
	record, outcome := normalize.DispatchWithOutcome(docType, bag, logger)
	if outcome.Defaulted {
		logger.Warn("normalization fell back to defaults",
			slog.String("document_type", string(docType)),
			slog.String("reason", outcome.Reason))
	}
	r.emit(opts, StageNormalize, "built canonical record")
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintRecord(record)
	}

	// Stage 5: schema validation is advisory; a defaulted record may miss
	// optional shape constraints without blocking generation.
	if err := schemas.ValidateRecord(docType, record); err != nil {
		logger.Warn("schema validation failed",
			slog.String("document_type", string(docType)),
			slog.String("error", err.Error()))
	}
	r.emit(opts, StageValidate, "validated canonical record")

	// Stage 6: render
	html, err := rendering.RenderHTML(record)
	if err != nil {
		return nil, fmt.Errorf("html rendering failed: %w", err)
	}

	baseName := opts.BaseName
	if baseName == "" {
		baseName = fmt.Sprintf("%s-%s", docType, runID[:8])
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	result := &Result{
		RunID:        runID,
		DocumentType: docType,
		Confidence:   confidence,
		Record:       record,
		PDFPath:      filepath.Join(outputDir, baseName+".pdf"),
		Defaulted:    outcome.Defaulted,
		Reason:       outcome.Reason,
	}

	if opts.KeepHTML {
		result.HTMLPath = filepath.Join(outputDir, baseName+".html")
		if err := os.WriteFile(result.HTMLPath, []byte(html), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", result.HTMLPath, err)
		}
	}

	if err := r.renderer.RenderPDFToFile(ctx, html, result.PDFPath); err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	r.emit(opts, StageRender, fmt.Sprintf("wrote %s", result.PDFPath))

	return result, nil
}

// ingest loads and cleans the input text. HTML inputs are reduced to
// their visible text inside Clean.
func (r *Runner) ingest(opts RunOptions) (string, error) {
	if opts.RawText != "" {
		return ingestion.Clean(opts.RawText)
	}
	return ingestion.ReadInput(opts.InputPath, opts.Reader)
}

// classify returns the forced type when configured, otherwise asks the model.
func (r *Runner) classify(ctx context.Context, opts RunOptions, text string) (types.DocumentType, float64, error) {
	if forced := strings.TrimSpace(opts.ForcedType); forced != "" {
		return types.ParseDocumentType(forced), 1.0, nil
	}
	return r.analyzer.Classify(ctx, text)
}

func (r *Runner) emit(opts RunOptions, stage, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Stage: stage, Message: message})
	}
	if opts.Verbose && opts.Printer != nil {
		opts.Printer.PrintStep(stage, message)
	}
}

var _ DocumentAnalyzer = (*analysis.Analyzer)(nil)
var _ PDFWriter = (*rendering.PDFRenderer)(nil)
