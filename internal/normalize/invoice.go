package normalize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/types"
)

// NormalizeInvoice maps a raw field bag into a canonical invoice record.
// Total function: unexpected panics are recovered into the minimal default.
func NormalizeInvoice(bag types.Bag, logger *slog.Logger) (rec *types.InvoiceRecord, out Outcome) {
	if logger == nil {
		logger = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("invoice normalization recovered", "panic", r)
			rec = minimalInvoice()
			out = defaulted(fmt.Sprintf("%v", r))
		}
	}()

	items := coerceLineItems(bag)

	total := ResolveNumber(bag, totalAmountKeys, 0)
	if total <= 0 {
		// Absent, zero or nonsensical explicit total: recompute from the
		// priced line items so the record always carries a usable amount.
		total = 0
		for _, it := range items {
			if it.Priced {
				total += it.Quantity * it.UnitPrice
			}
		}
	}
	if total < 0 {
		total = 0
	}

	rec = &types.InvoiceRecord{
		InvoiceNumber: ResolveStringDefault(bag, invoiceNumberKeys, types.DefaultInvoiceNumber),
		Date:          CoerceDate(ResolveString(bag, invoiceDateKeys)),
		ClientName:    ResolveStringDefault(bag, clientNameKeys, types.DefaultClientName),
		ClientAddress: ResolveString(bag, clientAddressKeys),
		SupplierName:  ResolveString(bag, supplierKeys),
		SupplierEmail: ResolveString(bag, supplierEmailKeys),
		IssueDate:     ResolveString(bag, issueDateKeys),
		DueDate:       ResolveString(bag, dueDateKeys),
		LineItems:     items,
		TotalAmount:   total,
		TaxRate:       ResolveNumber(bag, taxRateKeys, types.DefaultTaxRate),
		TotalWithTax:  ResolveString(bag, totalWithTaxKeys),
		PaymentTerms:  ResolveString(bag, paymentTermsKeys),
		LegalNotices:  ResolveString(bag, legalNoticesKeys),
		Remarks:       ResolveString(bag, remarksKeys),
	}
	return rec, ok()
}

// coerceLineItems builds the line-item slice. Unlike CoerceList, a bare
// string value is accepted as a single free-form item: invoices extracted
// from terse text often come back with "services" as one sentence.
func coerceLineItems(bag types.Bag) []types.LineItem {
	items := []types.LineItem{}

	v, ok := Resolve(bag, lineItemKeys)
	if !ok {
		return items
	}

	var list types.List
	switch t := v.(type) {
	case types.List:
		list = t
	case types.String:
		list = types.List{t}
	default:
		return items
	}

	for _, item := range list {
		switch t := item.(type) {
		case types.Object:
			items = append(items, types.LineItem{
				Description: objectString(t, descriptionKeys),
				Quantity:    objectNumber(t, quantityKeys, 1),
				UnitPrice:   objectNumber(t, unitPriceKeys, 0),
				Priced:      true,
			})
		default:
			desc := strings.TrimSpace(types.AsString(t))
			if desc != "" {
				items = append(items, types.LineItem{Description: desc})
			}
		}
	}
	return items
}

// minimalInvoice is the always-valid fallback record.
func minimalInvoice() *types.InvoiceRecord {
	return &types.InvoiceRecord{
		InvoiceNumber: types.DefaultInvoiceNumber,
		Date:          timeNow(),
		ClientName:    types.DefaultClientName,
		LineItems:     []types.LineItem{},
		TaxRate:       types.DefaultTaxRate,
	}
}
