package ledger

import (
	"math/rand"
	"testing"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal_DiscountThenTax(t *testing.T) {
	item := domain.LineItem{
		Quantity:        1,
		UnitPrice:       100,
		DiscountPercent: 10,
		TaxRate:         10,
	}

	// subtotal 100, discount 10, after discount 90, tax 9
	assert.InDelta(t, 99.0, LineTotal(item), 1e-9)
}

func TestLineTotal_MonotonicInPriceAndQuantity(t *testing.T) {
	base := domain.LineItem{Quantity: 2, UnitPrice: 50, TaxRate: 8, DiscountPercent: 5}

	prev := LineTotal(base)
	for price := 51.0; price <= 60; price++ {
		item := base
		item.UnitPrice = price
		got := LineTotal(item)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}

	prev = LineTotal(base)
	for qty := 3.0; qty <= 12; qty++ {
		item := base
		item.Quantity = qty
		got := LineTotal(item)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestLineTotal_NegativeInputsFlowThrough(t *testing.T) {
	item := domain.LineItem{Quantity: -1, UnitPrice: 100}
	assert.InDelta(t, -100.0, LineTotal(item), 1e-9)
}

func TestInvoiceTotals_Empty(t *testing.T) {
	assert.Equal(t, Totals{}, InvoiceTotals(nil))
	assert.Equal(t, Totals{}, InvoiceTotals([]domain.LineItem{}))
}

func TestInvoiceTotals_WorkedExample(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 1, UnitPrice: 100, DiscountPercent: 10, TaxRate: 10},
	}

	got := InvoiceTotals(items)
	assert.Equal(t, 100.0, got.Subtotal)
	assert.Equal(t, 10.0, got.TotalDiscount)
	assert.Equal(t, 9.0, got.TotalTax)
	assert.Equal(t, 99.0, got.Total)
}

func TestInvoiceTotals_TaxSummedPerLine(t *testing.T) {
	// Two lines with different tax rates: summing per-line tax is not
	// the same as taxing the aggregate discounted subtotal.
	items := []domain.LineItem{
		{Quantity: 1, UnitPrice: 100, TaxRate: 5},
		{Quantity: 1, UnitPrice: 100, TaxRate: 20},
	}

	got := InvoiceTotals(items)
	assert.Equal(t, 200.0, got.Subtotal)
	assert.Equal(t, 25.0, got.TotalTax)
	assert.Equal(t, 225.0, got.Total)
}

func TestInvoiceTotals_OrderIndependent(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 3, UnitPrice: 19.99, TaxRate: 7.5, DiscountPercent: 2},
		{Quantity: 1, UnitPrice: 450, TaxRate: 20},
		{Quantity: 12, UnitPrice: 0.99, DiscountPercent: 50},
		{Quantity: 2, UnitPrice: 75.25, TaxRate: 10, DiscountPercent: 10},
	}

	want := InvoiceTotals(items)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.LineItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, InvoiceTotals(shuffled))
	}
}

func TestInvoiceTotals_RoundsAggregatesOnly(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 3, UnitPrice: 0.333},
		{Quantity: 3, UnitPrice: 0.333},
	}

	got := InvoiceTotals(items)
	assert.Equal(t, 2.0, got.Subtotal)
	assert.Equal(t, 2.0, got.Total)
}

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []domain.Invoice
		want     string
	}{
		{"empty collection", nil, "INV-001"},
		{
			"increments the max",
			[]domain.Invoice{{InvoiceNumber: "INV-007"}},
			"INV-008",
		},
		{
			"max across all records",
			[]domain.Invoice{
				{InvoiceNumber: "INV-003"},
				{InvoiceNumber: "INV-010"},
				{InvoiceNumber: "INV-002"},
			},
			"INV-011",
		},
		{
			"non-matching numbers contribute zero",
			[]domain.Invoice{{InvoiceNumber: "ABC"}},
			"INV-001",
		},
		{
			"mixed matching and non-matching",
			[]domain.Invoice{
				{InvoiceNumber: "ABC"},
				{InvoiceNumber: "INV-042"},
			},
			"INV-043",
		},
		{
			"pattern matched anywhere in the string",
			[]domain.Invoice{{InvoiceNumber: "BILL-INV-12"}},
			"INV-013",
		},
		{
			"field grows past three digits",
			[]domain.Invoice{{InvoiceNumber: "INV-999"}},
			"INV-1000",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextInvoiceNumber(tc.existing))
		})
	}
}
