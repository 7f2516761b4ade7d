// Package ledger computes invoice monetary totals and invoice numbers.
//
// Every function here is pure and deterministic: no clock, no storage,
// no randomness. Inputs are not validated: negative quantities, prices
// or out-of-range percentages flow through the arithmetic unchanged, so
// totals stay stable for whatever users have already saved.
package ledger

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
)

// Totals is the monetary decomposition of an invoice. TotalTax is the
// sum of each line's individually computed tax, not tax on the
// aggregate discounted subtotal; the two differ when tax rates vary
// across lines.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"totalDiscount"`
	TotalTax      float64 `json:"totalTax"`
	Total         float64 `json:"total"`
}

// LineTotal computes a single line's payable amount. The discount is
// taken off the subtotal first and tax applies to the discounted
// amount; the ordering is fixed. No rounding happens at this stage.
func LineTotal(item domain.LineItem) float64 {
	subtotal := item.Quantity * item.UnitPrice
	discount := subtotal * (item.DiscountPercent / 100)
	afterDiscount := subtotal - discount
	tax := afterDiscount * (item.TaxRate / 100)
	return afterDiscount + tax
}

// InvoiceTotals accumulates the subtotal/discount/tax decomposition
// across all line items and rounds the four aggregates to two decimals
// at the point of return. An empty slice yields all-zero totals.
func InvoiceTotals(items []domain.LineItem) Totals {
	var subtotal, totalDiscount, totalTax float64

	for _, item := range items {
		itemSubtotal := item.Quantity * item.UnitPrice
		discount := itemSubtotal * (item.DiscountPercent / 100)
		afterDiscount := itemSubtotal - discount
		tax := afterDiscount * (item.TaxRate / 100)

		subtotal += itemSubtotal
		totalDiscount += discount
		totalTax += tax
	}

	total := subtotal - totalDiscount + totalTax

	return Totals{
		Subtotal:      round2(subtotal),
		TotalDiscount: round2(totalDiscount),
		TotalTax:      round2(totalTax),
		Total:         round2(total),
	}
}

var invoiceNumberPattern = regexp.MustCompile(`INV-(\d+)`)

// NextInvoiceNumber generates the next sequential invoice number from
// the existing records. Numbers not matching the INV-<digits> pattern
// contribute 0 and are ignored. The result is zero-padded to at least
// three digits and grows naturally past 999. Advisory only: invoice
// numbers stay freely editable text and are never enforced unique.
func NextInvoiceNumber(existing []domain.Invoice) string {
	if len(existing) == 0 {
		return "INV-001"
	}

	var max int
	for _, inv := range existing {
		match := invoiceNumberPattern.FindStringSubmatch(inv.InvoiceNumber)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("INV-%03d", max+1)
}

// round2 rounds half away from zero at two decimals, matching typical
// currency formatting.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
