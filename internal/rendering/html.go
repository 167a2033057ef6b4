// Package rendering renders normalized document records to HTML and PDF.
package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("documents").Funcs(template.FuncMap{
	"formatDate":  formatDate,
	"formatMoney": formatMoney,
}).ParseFS(templateFS, "templates/*.html.tmpl"))

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}

// invoiceView wraps an InvoiceRecord with display-only derived values.
type invoiceView struct {
	*types.InvoiceRecord
	ComputedTotalWithTax string
}

// RenderHTML renders a normalized record into a standalone HTML page
// using the template matching its concrete type.
func RenderHTML(record types.Record) (string, error) {
	var (
		name string
		data any
	)

	switch r := record.(type) {
	case *types.CVRecord:
		name = "cv.html.tmpl"
		data = r
	case *types.InvoiceRecord:
		name = "invoice.html.tmpl"
		data = invoiceView{InvoiceRecord: r, ComputedTotalWithTax: totalWithTax(r)}
	case *types.ReportRecord:
		name = "report.html.tmpl"
		data = r
	default:
		return "", &RenderError{
			Message: fmt.Sprintf("unsupported record type %T", record),
		}
	}

	var result strings.Builder
	if err := templates.ExecuteTemplate(&result, name, data); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute template %s", name),
			Cause:   err,
		}
	}

	return result.String(), nil
}

// totalWithTax prefers the extracted tax-inclusive total when present,
// since source documents may apply rounding rules of their own.
func totalWithTax(r *types.InvoiceRecord) string {
	if r.TotalWithTax != "" {
		return r.TotalWithTax
	}
	return formatMoney(r.TotalAmount * (1 + r.TaxRate/100))
}
