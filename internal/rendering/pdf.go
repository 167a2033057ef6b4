package rendering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper dimensions in inches, the default for generated documents.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.4
)

// pdfConfig holds internal configuration for a PDFRenderer.
type pdfConfig struct {
	chromePath string
	timeout    time.Duration
	noSandbox  bool
}

// PDFOption configures a PDFRenderer.
type PDFOption func(*pdfConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default standard install locations are searched automatically.
func WithChromePath(path string) PDFOption {
	return func(c *pdfConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single render.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) PDFOption {
	return func(c *pdfConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside containers.
func WithNoSandbox() PDFOption {
	return func(c *pdfConfig) {
		c.noSandbox = true
	}
}

// PDFRenderer converts rendered HTML into PDF documents through a headless
// browser. The browser instance is reused across renders and is safe for
// concurrent use. Call Close when finished.
type PDFRenderer struct {
	cfg           pdfConfig
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewPDFRenderer starts a headless browser and returns a renderer bound
// to it. Errors from browser startup surface here rather than on first use.
func NewPDFRenderer(opts ...PDFOption) (*PDFRenderer, error) {
	cfg := pdfConfig{timeout: 30 * time.Second}
	for _, o := range opts {
		o(&cfg)
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", "new"),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, &RenderError{Message: "failed to start browser", Cause: err}
	}

	return &PDFRenderer{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases the browser process. Close is idempotent.
func (p *PDFRenderer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.browserCancel()
	p.allocCancel()
	return nil
}

// RenderPDF converts an HTML document into PDF bytes.
func (p *PDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, &RenderError{Message: "renderer is closed"}
	}
	p.mu.Unlock()

	// Chrome resolves relative resources from file URLs, so the HTML is
	// staged in a temp file rather than injected through the DOM.
	f, err := os.CreateTemp("", "docgen-*.html")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp file", Cause: err}
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, &RenderError{Message: "failed to write temp file", Cause: err}
	}
	if err := f.Close(); err != nil {
		return nil, &RenderError{Message: "failed to close temp file", Cause: err}
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, &RenderError{Message: "failed to resolve temp path", Cause: err}
	}

	if p.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(p.browserCtx)
	defer tabCancel()

	// Propagate caller cancellation into the tab.
	go func() {
		select {
		case <-ctx.Done():
			tabCancel()
		case <-tabCtx.Done():
		}
	}()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginRight(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	); err != nil {
		return nil, &RenderError{Message: "pdf generation failed", Cause: err}
	}

	return buf, nil
}

// RenderPDFToFile converts an HTML document into a PDF written at path,
// creating parent directories as needed.
func (p *PDFRenderer) RenderPDFToFile(ctx context.Context, html, path string) error {
	data, err := p.RenderPDF(ctx, html)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &RenderError{Message: fmt.Sprintf("failed to create output directory %s", dir), Cause: err}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}
