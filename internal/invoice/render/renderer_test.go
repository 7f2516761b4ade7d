package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
)

func sampleInvoice() domain.Invoice {
	return domain.Invoice{
		ID:            "1001",
		InvoiceNumber: "INV-042",
		Status:        domain.InvoiceStatusDraft,
		Currency:      "USD",
		Template:      domain.TemplateClassic,
		IssueDate:     "2026-09-01",
		DueDate:       "2026-10-01",
		Business: domain.BusinessDetails{
			Name:  "Acme Studio",
			Email: "billing@acme.test",
		},
		Client: domain.ClientDetails{
			Name: "Globex Corp",
		},
		LineItems: []domain.LineItem{
			{ID: "li-1", Description: "Design work", Quantity: 10, UnitPrice: 100, TaxRate: 10, DiscountPercent: 10},
			{ID: "li-2", Description: "Hosting", Quantity: 1, UnitPrice: 25},
		},
		Notes: "Payable within 30 days.",
	}
}

func TestRenderHTML_ContainsInvoiceData(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderHTML(sampleInvoice(), "$")
	require.NoError(t, err)

	assert.Contains(t, html, "INV-042")
	assert.Contains(t, html, "Acme Studio")
	assert.Contains(t, html, "Globex Corp")
	assert.Contains(t, html, "Design work")
	assert.Contains(t, html, "September 1, 2026")
	assert.Contains(t, html, "Payable within 30 days.")

	// 10x100 at 10% discount then 10% tax is 990, plus 25 hosting.
	assert.Contains(t, html, "$1015.00")
	// Discounted pre-tax subtotal of the first line is 900.
	assert.Contains(t, html, "$990.00")
}

func TestRenderHTML_AllTemplates(t *testing.T) {
	r := NewRenderer()
	inv := sampleInvoice()

	for _, tpl := range domain.Templates {
		inv.Template = tpl

		html, err := r.RenderHTML(inv, "$")
		require.NoError(t, err, "template %s", tpl)
		assert.Contains(t, html, "INV-042", "template %s", tpl)
		assert.Contains(t, html, "$1015.00", "template %s", tpl)
	}
}

func TestRenderHTMLAs_UnknownFallsBackToClassic(t *testing.T) {
	r := NewRenderer()
	inv := sampleInvoice()

	got, err := r.RenderHTMLAs(inv, "$", domain.Template("brutalist"))
	require.NoError(t, err)

	want, err := r.RenderHTMLAs(inv, "$", domain.TemplateClassic)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestRenderHTML_EmptyLineItems(t *testing.T) {
	r := NewRenderer()
	inv := sampleInvoice()
	inv.LineItems = nil

	html, err := r.RenderHTML(inv, "$")
	require.NoError(t, err)

	assert.Contains(t, html, "No items")
	assert.Contains(t, html, "$0.00")
}

func TestRenderHTML_PlaceholdersWhenPartiesMissing(t *testing.T) {
	r := NewRenderer()
	inv := sampleInvoice()
	inv.Business = domain.BusinessDetails{}
	inv.Client = domain.ClientDetails{}

	html, err := r.RenderHTML(inv, "$")
	require.NoError(t, err)

	assert.Contains(t, html, "Your Business Name")
	assert.Contains(t, html, "Client Name")
}

func TestRenderHTML_LogoSurvivesEscaping(t *testing.T) {
	r := NewRenderer()
	inv := sampleInvoice()
	inv.Business.Logo = "data:image/png;base64,iVBORw0KGgo="

	html, err := r.RenderHTML(inv, "$")
	require.NoError(t, err)

	assert.True(t, strings.Contains(html, `src="data:image/png;base64,iVBORw0KGgo="`),
		"data URL logo should not be stripped by the HTML escaper")
}
