package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Default values applied when invoice fields cannot be extracted.
const (
	DefaultInvoiceNumber = "FACT-001"
	DefaultClientName    = "Client unspecified"
	DefaultTaxRate       = 20.0
)

// LineItem is a single billed service or product. Free-form entries carry
// only a description; priced entries additionally carry quantity and unit
// price and participate in total computation.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	// Priced marks entries extracted as structured objects, as opposed to
	// plain strings. Only priced entries are summed into the total.
	Priced bool `json:"priced,omitempty"`
}

// Amount returns the line total for priced entries, zero otherwise.
func (li LineItem) Amount() float64 {
	if !li.Priced {
		return 0
	}
	return li.Quantity * li.UnitPrice
}

// InvoiceRecord is the canonical representation of an invoice.
// TotalAmount is always present and never negative.
type InvoiceRecord struct {
	InvoiceNumber string    `json:"invoice_number" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	ClientName    string    `json:"client_name" validate:"required"`
	ClientAddress string    `json:"client_address,omitempty"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	SupplierEmail string    `json:"supplier_email,omitempty"`

	// Passthrough strings, unvalidated: extraction already returns them in
	// whatever format the source text used.
	IssueDate string `json:"issue_date,omitempty"`
	DueDate   string `json:"due_date,omitempty"`

	LineItems   []LineItem `json:"line_items"`
	TotalAmount float64    `json:"total_amount" validate:"gte=0"`
	TaxRate     float64    `json:"tax_rate"`

	TotalWithTax string `json:"total_with_tax,omitempty"`
	PaymentTerms string `json:"payment_terms,omitempty"`
	LegalNotices string `json:"legal_notices,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
}

// Validate validates the InvoiceRecord invariants using the validator.
func (r *InvoiceRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
