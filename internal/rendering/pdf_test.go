package rendering

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPDFOptions(t *testing.T) {
	cfg := pdfConfig{timeout: 30 * time.Second}

	for _, opt := range []PDFOption{
		WithChromePath("/usr/bin/chromium"),
		WithTimeout(5 * time.Second),
		WithNoSandbox(),
	} {
		opt(&cfg)
	}

	assert.Equal(t, "/usr/bin/chromium", cfg.chromePath)
	assert.Equal(t, 5*time.Second, cfg.timeout)
	assert.True(t, cfg.noSandbox)
}

func TestPDFRenderer_ClosedIsIdempotent(t *testing.T) {
	p := &PDFRenderer{
		closed:        true,
		allocCancel:   func() {},
		browserCancel: func() {},
	}

	assert.NoError(t, p.Close())
	assert.NoError(t, p.Close())
}

func TestPDFRenderer_RenderAfterClose(t *testing.T) {
	p := &PDFRenderer{
		closed:        true,
		allocCancel:   func() {},
		browserCancel: func() {},
	}

	_, err := p.RenderPDF(context.Background(), "<html></html>")
	assert.Error(t, err)
}
