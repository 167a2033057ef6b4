package types

import "strings"

// DocumentType identifies one of the supported document kinds.
type DocumentType string

// Supported document types. The labels match what the classifier returns.
const (
	DocumentCV      DocumentType = "cv"
	DocumentInvoice DocumentType = "facture"
	DocumentReport  DocumentType = "rapport"
)

// ParseDocumentType maps a classification label to a DocumentType.
// Unknown or empty labels map to DocumentReport, the most permissive schema,
// so misclassification degrades gracefully instead of failing.
func ParseDocumentType(label string) DocumentType {
	switch DocumentType(strings.ToLower(strings.TrimSpace(label))) {
	case DocumentCV:
		return DocumentCV
	case DocumentInvoice:
		return DocumentInvoice
	case DocumentReport:
		return DocumentReport
	default:
		return DocumentReport
	}
}

// Record is a canonical, invariant-satisfying document representation:
// one of CVRecord, InvoiceRecord or ReportRecord.
type Record interface {
	Validate() error
}

// Analysis is the combined result of classification and extraction over raw
// text. The bag is untrusted, best-effort output and is never assumed
// internally consistent.
type Analysis struct {
	DocumentType DocumentType `json:"document_type"`
	Confidence   float64      `json:"confidence"`
	Data         Bag          `json:"data"`
	RawText      string       `json:"raw_text,omitempty"`
}
