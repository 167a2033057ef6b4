package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/config"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/pipeline"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes document generation over REST.

POST /generate runs the full pipeline on posted text; POST /analyze returns the
raw classification and field bag. With --auth both endpoints require a bearer
token minted by "docgen token".`,
	RunE: runServe,
}

var (
	servePort       int
	serveOutputDir  string
	serveAuth       bool
	serveChromePath string
	serveNoSandbox  bool
	serveAPIKey     string
	serveModel      string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveOutputDir, "output", "o", "out", "Output directory for generated documents")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require JWT bearer tokens (JWT_SECRET must be set)")
	serveCmd.Flags().StringVar(&serveChromePath, "chrome-path", "", "Chrome/Chromium executable path")
	serveCmd.Flags().BoolVar(&serveNoSandbox, "no-sandbox", false, "Disable the Chrome sandbox (needed in some containers)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model name override")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := newLogger(false)

	cfg := config.Config{
		APIKey:     serveAPIKey,
		Model:      serveModel,
		ChromePath: serveChromePath,
		NoSandbox:  serveNoSandbox,
	}

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

	srv, err := server.New(server.Config{
		Port:        servePort,
		OutputDir:   serveOutputDir,
		RequireAuth: serveAuth,
		Logger:      logger,
	}, runner, analyzer)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
