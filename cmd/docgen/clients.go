package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/analysis"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/config"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/rendering"
)

// resolveAPIKey returns the key from config or the GEMINI_API_KEY env var.
func resolveAPIKey(cfg config.Config) (string, error) {
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
}

// newAnalyzer builds the LLM-backed analyzer. The returned cleanup function
// closes the underlying client.
func newAnalyzer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*analysis.Analyzer, func(), error) {
	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		return nil, nil, err
	}

	modelConfig := analysis.DefaultConfig()
	if cfg.Model != "" {
		modelConfig = modelConfig.
			WithModel(analysis.TierLite, cfg.Model).
			WithModel(analysis.TierStandard, cfg.Model)
	}

	client, err := analysis.NewClient(ctx, modelConfig, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	cleanup := func() { _ = client.Close() }
	return analysis.NewAnalyzer(client, logger), cleanup, nil
}

// newRenderer starts a headless browser configured from cfg. The returned
// cleanup function shuts the browser down.
func newRenderer(cfg config.Config) (*rendering.PDFRenderer, func(), error) {
	var opts []rendering.PDFOption
	if cfg.ChromePath != "" {
		opts = append(opts, rendering.WithChromePath(cfg.ChromePath))
	}
	if cfg.NoSandbox {
		opts = append(opts, rendering.WithNoSandbox())
	}
	if cfg.TimeoutSecs > 0 {
		opts = append(opts, rendering.WithTimeout(time.Duration(cfg.TimeoutSecs)*time.Second))
	}

	renderer, err := rendering.NewPDFRenderer(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}

	cleanup := func() { _ = renderer.Close() }
	return renderer, cleanup, nil
}

// newLogger returns a text slog.Logger at info level, or debug when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
