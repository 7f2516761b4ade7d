// Package render turns an invoice into a print-ready HTML document in
// one of the five visual templates. Rendering is read-only: templates
// share the same computed-totals input and never mutate the invoice.
package render

import (
	"bytes"
	"html/template"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/starfolksoftware/invoicegen/internal/invoice/format"
	"github.com/starfolksoftware/invoicegen/internal/ledger"
)

// LineView pairs a line item with its computed total for display.
type LineView struct {
	domain.LineItem
	Total float64
}

// RenderInput is the view model every template receives.
type RenderInput struct {
	Invoice domain.Invoice
	Symbol  string
	Totals  ledger.Totals
	Lines   []LineView

	// Logo carries the business logo data URL. Typed template.URL so
	// html/template does not strip the data: scheme; the upload
	// boundary already caps and screens it.
	Logo template.URL
}

type Renderer interface {
	// RenderHTML renders the invoice in its own template.
	RenderHTML(inv domain.Invoice, symbol string) (string, error)

	// RenderHTMLAs renders the invoice in the given template,
	// regardless of what the record carries. Unknown names fall back
	// to classic.
	RenderHTMLAs(inv domain.Invoice, symbol string, tpl domain.Template) (string, error)
}

type htmlRenderer struct {
	templates map[domain.Template]*template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney":    format.Amount,
		"formatDate":     format.Date,
		"formatQuantity": format.Quantity,
		"formatPercent":  format.Percent,
	}

	parse := func(name, body string) *template.Template {
		return template.Must(template.New(name).Funcs(funcs).Parse(body))
	}

	return &htmlRenderer{
		templates: map[domain.Template]*template.Template{
			domain.TemplateClassic: parse("classic", classicHTMLTemplate),
			domain.TemplateModern:  parse("modern", modernHTMLTemplate),
			domain.TemplateMinimal: parse("minimal", minimalHTMLTemplate),
			domain.TemplateBold:    parse("bold", boldHTMLTemplate),
			domain.TemplateElegant: parse("elegant", elegantHTMLTemplate),
		},
	}
}

func (r *htmlRenderer) RenderHTML(inv domain.Invoice, symbol string) (string, error) {
	return r.RenderHTMLAs(inv, symbol, inv.Template)
}

func (r *htmlRenderer) RenderHTMLAs(inv domain.Invoice, symbol string, tpl domain.Template) (string, error) {
	t, ok := r.templates[tpl]
	if !ok {
		t = r.templates[domain.TemplateClassic]
	}

	lines := make([]LineView, len(inv.LineItems))
	for i, item := range inv.LineItems {
		lines[i] = LineView{LineItem: item, Total: ledger.LineTotal(item)}
	}

	input := RenderInput{
		Invoice: inv,
		Symbol:  symbol,
		Totals:  ledger.InvoiceTotals(inv.LineItems),
		Lines:   lines,
		Logo:    template.URL(inv.Business.Logo),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
