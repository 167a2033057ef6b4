package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name     string
		docType  types.DocumentType
		expected any
	}{
		{"cv", types.DocumentCV, &types.CVRecord{}},
		{"cv uppercase label", types.DocumentType("CV"), &types.CVRecord{}},
		{"facture", types.DocumentInvoice, &types.InvoiceRecord{}},
		{"rapport", types.DocumentReport, &types.ReportRecord{}},
		{"unknown routes to report", types.DocumentType("unknown_value"), &types.ReportRecord{}},
		{"empty routes to report", types.DocumentType(""), &types.ReportRecord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Dispatch(tt.docType, types.Bag{}, nil)
			require.NotNil(t, rec)
			assert.IsType(t, tt.expected, rec)
			assert.NoError(t, rec.Validate(), "dispatched records always satisfy their invariants")
		})
	}
}

func TestDispatchNeverFails(t *testing.T) {
	// Hostile bags with every shape in the wrong place. Dispatch must still
	// return a valid record for each document type.
	hostile := []types.Bag{
		nil,
		{},
		{"nom": nil, "date": types.Bool(true), "sections": types.Number(3)},
		{
			"experiences": types.List{types.List{types.String("nested")}},
			"services":    types.List{nil, types.Bool(false)},
			"montant_total": types.Object{
				"oops": types.String("nested where scalar expected"),
			},
		},
		{"contenu": types.Object{}, "titre": types.List{}},
	}

	for _, docType := range []types.DocumentType{types.DocumentCV, types.DocumentInvoice, types.DocumentReport, "garbage"} {
		for i, bag := range hostile {
			rec, _ := DispatchWithOutcome(docType, bag, nil)
			require.NotNil(t, rec, "type %s bag %d", docType, i)
			assert.NoError(t, rec.Validate(), "type %s bag %d", docType, i)
		}
	}
}
