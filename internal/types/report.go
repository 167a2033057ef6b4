package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Default values applied when report fields cannot be extracted.
const (
	DefaultReportTitle  = "Title unspecified"
	DefaultReportAuthor = "Author unspecified"
)

// Section is a titled block of report content.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ReportRecord is the canonical representation of a report. It is the most
// permissive schema and serves as the fallback for unrecognized documents.
// Sections may be empty but is always a well-typed slice, never nil.
type ReportRecord struct {
	Title       string    `json:"title" validate:"required"`
	Author      string    `json:"author" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Summary     string    `json:"summary,omitempty"`
	Sections    []Section `json:"sections"`
	Conclusions string    `json:"conclusions,omitempty"`
}

// Validate validates the ReportRecord invariants using the validator.
func (r *ReportRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
