package normalize

import (
	"log/slog"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// Dispatch routes a classified document type and its field bag to the
// matching normalizer and returns the canonical record. Unknown types fall
// through to the report normalizer: a report is the most permissive schema,
// so a misclassified document still produces something usable.
func Dispatch(docType types.DocumentType, bag types.Bag, logger *slog.Logger) types.Record {
	rec, _ := DispatchWithOutcome(docType, bag, logger)
	return rec
}

// DispatchWithOutcome is Dispatch with the normalization Outcome exposed,
// so callers that care (logging, tests) can tell a defaulted record apart
// from a fully extracted one.
func DispatchWithOutcome(docType types.DocumentType, bag types.Bag, logger *slog.Logger) (types.Record, Outcome) {
	switch types.ParseDocumentType(string(docType)) {
	case types.DocumentCV:
		return NormalizeCV(bag, logger)
	case types.DocumentInvoice:
		return NormalizeInvoice(bag, logger)
	default:
		return NormalizeReport(bag, logger)
	}
}
