package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/config"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/observability"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input files...]",
	Short: "Generate PDF documents from free text",
	Long: `Runs the full generation pipeline: ingestion -> classification -> extraction -> normalization -> rendering.

With a single --input (or "-" for stdin) one document is produced. With several
positional input files the documents are generated concurrently.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath  string
	genInput       string
	genOutputDir   string
	genType        string
	genAPIKey      string
	genModel       string
	genVerbose     bool
	genKeepHTML    bool
	genChromePath  string
	genNoSandbox   bool
	genConcurrency int
	genTimeoutSecs int
)

func init() {
	// Config file flag (processed first)
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCmd.Flags().StringVarP(&genInput, "input", "i", "", `Path to input text file ("-" for stdin)`)
	generateCmd.Flags().StringVarP(&genOutputDir, "output", "o", "", "Output directory for generated documents")
	generateCmd.Flags().StringVarP(&genType, "type", "t", "", "Force document type (cv, facture, rapport) and skip classification")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Gemini model name override")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed progress information")
	generateCmd.Flags().BoolVar(&genKeepHTML, "keep-html", false, "Keep the intermediate HTML next to the PDF")
	generateCmd.Flags().StringVar(&genChromePath, "chrome-path", "", "Chrome/Chromium executable path")
	generateCmd.Flags().BoolVar(&genNoSandbox, "no-sandbox", false, "Disable the Chrome sandbox (needed in some containers)")
	generateCmd.Flags().IntVar(&genConcurrency, "concurrency", 0, "Parallel documents in batch mode")
	generateCmd.Flags().IntVar(&genTimeoutSecs, "timeout", 0, "Per-document render timeout in seconds")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadGenerateConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Input == "" && len(args) == 0 {
		return fmt.Errorf("provide --input or at least one input file argument")
	}
	if cfg.Input != "" && len(args) > 0 {
		return fmt.Errorf("--input and positional input files are mutually exclusive")
	}

	logger := newLogger(cfg.Verbose)

	analyzer, closeAnalyzer, err := newAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeAnalyzer()

	renderer, closeRenderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	defer closeRenderer()

	runner := pipeline.NewRunner(analyzer, renderer, logger)
	printer := observability.NewPrinter(os.Stdout)

	opts := pipeline.RunOptions{
		OutputDir:  cfg.OutputDir,
		ForcedType: cfg.DocumentType,
		KeepHTML:   cfg.KeepHTML,
		Verbose:    cfg.Verbose,
		Printer:    printer,
	}

	if len(args) > 0 {
		return runGenerateBatch(ctx, runner, args, opts, cfg.Concurrency)
	}

	opts.InputPath = cfg.Input
	opts.Reader = os.Stdin

	result, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintRecord(result.Record)
	}
	fmt.Fprintf(os.Stdout, "Generated %s document: %s\n", result.DocumentType, result.PDFPath)
	if result.HTMLPath != "" {
		fmt.Fprintf(os.Stdout, "Kept HTML: %s\n", result.HTMLPath)
	}
	return nil
}

func runGenerateBatch(ctx context.Context, runner *pipeline.Runner, inputs []string, opts pipeline.RunOptions, concurrency int) error {
	results := runner.RunBatch(ctx, inputs, opts, concurrency)

	failures := 0
	for _, br := range results {
		if br.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAILED  %v\n", br.Err)
			continue
		}
		fmt.Fprintf(os.Stdout, "OK      %s -> %s\n", br.Input, br.Result.PDFPath)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, len(inputs))
	}
	return nil
}

// loadGenerateConfig merges the optional config file, explicit flags and
// built-in defaults, flags winning over the file.
func loadGenerateConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if genConfigPath != "" {
		loaded, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("input") {
		cfg.Input = genInput
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = genOutputDir
	}
	if cmd.Flags().Changed("type") {
		cfg.DocumentType = genType
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}
	if cmd.Flags().Changed("keep-html") {
		cfg.KeepHTML = genKeepHTML
	}
	if cmd.Flags().Changed("chrome-path") {
		cfg.ChromePath = genChromePath
	}
	if cmd.Flags().Changed("no-sandbox") {
		cfg.NoSandbox = genNoSandbox
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = genConcurrency
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSecs = genTimeoutSecs
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		OutputDir:   "out",
		Concurrency: 2,
		TimeoutSecs: 30,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
