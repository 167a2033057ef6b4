// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a document analysis:
// the classified type, the confidence score, and the extracted field keys.
func (p *Printer) PrintAnalysis(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Type:       %s\n", analysis.DocumentType))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", analysis.Confidence))

	keys := analysis.Data.Keys()
	if len(keys) > 0 {
		sb.WriteString("\nExtracted fields:\n")
		count := min(len(keys), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", keys[i]))
		}
		if len(keys) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keys)-maxItemsToShow))
		}
	}

	p.printBox("DOCUMENT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecord outputs a human-readable summary of a normalized record.
func (p *Printer) PrintRecord(record types.Record) {
	if record == nil {
		return
	}

	var sb strings.Builder
	var title string

	switch r := record.(type) {
	case *types.CVRecord:
		title = "NORMALIZED CV"
		sb.WriteString(fmt.Sprintf("Name:       %s\n", r.Name))
		if r.DesiredPosition != "" {
			sb.WriteString(fmt.Sprintf("Position:   %s\n", r.DesiredPosition))
		}
		sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(r.ExperienceEntries)))
		sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(r.EducationEntries)))
		if len(r.Skills) > 0 {
			skills := strings.Join(r.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("Skills:     %s\n", skills))
		}

	case *types.InvoiceRecord:
		title = "NORMALIZED INVOICE"
		sb.WriteString(fmt.Sprintf("Number:     %s\n", r.InvoiceNumber))
		sb.WriteString(fmt.Sprintf("Date:       %s\n", r.Date.Format("02/01/2006")))
		sb.WriteString(fmt.Sprintf("Client:     %s\n", r.ClientName))
		sb.WriteString(fmt.Sprintf("Items:      %d\n", len(r.LineItems)))
		sb.WriteString(fmt.Sprintf("Total:      %.2f (TVA %.1f%%)\n", r.TotalAmount, r.TaxRate))

	case *types.ReportRecord:
		title = "NORMALIZED REPORT"
		sb.WriteString(fmt.Sprintf("Title:      %s\n", r.Title))
		sb.WriteString(fmt.Sprintf("Author:     %s\n", r.Author))
		sb.WriteString(fmt.Sprintf("Date:       %s\n", r.Date.Format("02/01/2006")))
		sb.WriteString(fmt.Sprintf("Sections:   %d\n", len(r.Sections)))
		count := min(len(r.Sections), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", r.Sections[i].Title))
		}
		if len(r.Sections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Sections)-maxItemsToShow))
		}

	default:
		return
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStep prints a short progress line for a pipeline stage.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(stage, message string) {
	fmt.Fprintf(p.out, "▸ [%s] %s\n", stage, message)
}
