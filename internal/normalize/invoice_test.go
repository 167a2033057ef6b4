package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

func TestNormalizeInvoice(t *testing.T) {
	bag := types.Bag{
		"numero_facture":   types.String("FACT-2024-042"),
		"date":             types.String("01/03/2024"),
		"client_nom":       types.String("Entreprise ABC"),
		"client_adresse":   types.String("5 avenue des Champs"),
		"fournisseur":      types.String("Consulting SARL"),
		"email_fournisseur": types.String("contact@consulting.fr"),
		"date_emission":    types.String("01/03/2024"),
		"date_echeance":    types.String("31/03/2024"),
		"services": types.List{
			types.Object{
				"description":   types.String("Development"),
				"quantite":      types.Number(2),
				"prix_unitaire": types.Number(10),
			},
		},
		"montant_total":    types.Number(20),
		"tva":              types.Number(5.5),
		"total_ttc":        types.String("21.10"),
		"conditions":       types.String("30 jours"),
		"mentions_legales": types.String("TVA non applicable"),
		"remarques":        types.String("Merci"),
	}

	rec, out := NormalizeInvoice(bag, nil)

	assert.False(t, out.Defaulted)
	assert.Equal(t, "FACT-2024-042", rec.InvoiceNumber)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, "Entreprise ABC", rec.ClientName)
	assert.Equal(t, "Consulting SARL", rec.SupplierName)
	assert.Equal(t, "contact@consulting.fr", rec.SupplierEmail)
	assert.Equal(t, "31/03/2024", rec.DueDate, "due date passes through unvalidated")
	assert.Equal(t, 20.0, rec.TotalAmount)
	assert.Equal(t, 5.5, rec.TaxRate)
	assert.Equal(t, "21.10", rec.TotalWithTax)
	assert.NoError(t, rec.Validate())
}

func TestNormalizeInvoiceComputesTotalFromLineItems(t *testing.T) {
	bag := types.Bag{
		"services": types.List{
			types.Object{"quantity": types.Number(2), "unit_price": types.Number(10)},
			types.Object{"quantity": types.Number(1), "unit_price": types.Number(5)},
		},
	}

	rec, _ := NormalizeInvoice(bag, nil)
	assert.Equal(t, 25.0, rec.TotalAmount)
}

func TestNormalizeInvoiceMalformedItemsDefaultQuantityAndPrice(t *testing.T) {
	bag := types.Bag{
		"items": types.List{
			// No quantity: defaults to 1. No price: defaults to 0.
			types.Object{"description": types.String("Audit"), "prix_unitaire": types.Number(100)},
			types.Object{"description": types.String("Mystery")},
			// Non-object entries are kept as free-form items but never priced.
			types.String("Travel expenses"),
		},
	}

	rec, _ := NormalizeInvoice(bag, nil)

	require.Len(t, rec.LineItems, 3)
	assert.Equal(t, types.LineItem{Description: "Audit", Quantity: 1, UnitPrice: 100, Priced: true}, rec.LineItems[0])
	assert.Equal(t, types.LineItem{Description: "Mystery", Quantity: 1, Priced: true}, rec.LineItems[1])
	assert.Equal(t, types.LineItem{Description: "Travel expenses"}, rec.LineItems[2])
	assert.Equal(t, 100.0, rec.TotalAmount, "only priced items are summed")
}

func TestNormalizeInvoiceStringServicesWrap(t *testing.T) {
	// A bare string for the services field is accepted as one free-form item.
	bag := types.Bag{"services": types.String("Prestation de conseil")}

	rec, _ := NormalizeInvoice(bag, nil)

	require.Len(t, rec.LineItems, 1)
	assert.Equal(t, "Prestation de conseil", rec.LineItems[0].Description)
	assert.False(t, rec.LineItems[0].Priced)
}

func TestNormalizeInvoiceDefaults(t *testing.T) {
	rec, out := NormalizeInvoice(types.Bag{}, nil)

	assert.False(t, out.Defaulted)
	assert.Equal(t, types.DefaultInvoiceNumber, rec.InvoiceNumber)
	assert.Equal(t, types.DefaultClientName, rec.ClientName)
	assert.Equal(t, types.DefaultTaxRate, rec.TaxRate)
	assert.WithinDuration(t, time.Now(), rec.Date, 5*time.Second, "missing date falls back to now")
	assert.Zero(t, rec.TotalAmount)
	assert.NotNil(t, rec.LineItems)
	assert.NoError(t, rec.Validate())
}

func TestNormalizeInvoiceTotalNeverNegative(t *testing.T) {
	tests := []struct {
		name string
		bag  types.Bag
	}{
		{
			name: "explicit negative total",
			bag:  types.Bag{"montant_total": types.Number(-50)},
		},
		{
			name: "negative prices in items",
			bag: types.Bag{
				"services": types.List{
					types.Object{"quantite": types.Number(2), "prix_unitaire": types.Number(-10)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := NormalizeInvoice(tt.bag, nil)
			assert.GreaterOrEqual(t, rec.TotalAmount, 0.0)
			assert.NoError(t, rec.Validate())
		})
	}
}

func TestNormalizeInvoiceExplicitZeroTotalRecomputed(t *testing.T) {
	bag := types.Bag{
		"montant_total": types.Number(0),
		"produits": types.List{
			types.Object{"quantité": types.Number(3), "prix": types.Number(4)},
		},
	}

	rec, _ := NormalizeInvoice(bag, nil)
	assert.Equal(t, 12.0, rec.TotalAmount)
}
