package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/starfolksoftware/invoicegen/internal/invoice/format"
	"github.com/starfolksoftware/invoicegen/internal/ledger"
)

type marotoProvider struct{}

func New() Provider {
	return &marotoProvider{}
}

func (p *marotoProvider) GenerateInvoice(ctx context.Context, inv domain.Invoice, symbol string) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	if payload, ext, ok := splitLogoDataURL(inv.Business.Logo); ok {
		m.AddRow(30,
			image.NewFromBase64Col(3, payload, ext, props.Rect{Percent: 80}),
			col.New(9),
		)
	}

	m.AddRow(12,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(16,
		col.New(6).Add(
			text.New("Invoice number: "+inv.InvoiceNumber, props.Text{Top: 0, Size: 9}),
			text.New("Date of issue: "+format.Date(inv.IssueDate), props.Text{Top: 4, Size: 9}),
			text.New("Date due: "+format.Date(inv.DueDate), props.Text{Top: 8, Size: 9}),
		),
		col.New(6),
	)

	m.AddRow(34,
		col.New(6).Add(
			text.New(orDefault(inv.Business.Name, "Your Business Name"), props.Text{Style: fontstyle.Bold}),
			text.New(inv.Business.Address, props.Text{Top: 5, Size: 9}),
			text.New(inv.Business.Email, props.Text{Top: 14, Size: 9}),
			text.New(inv.Business.Phone, props.Text{Top: 18, Size: 9}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(orDefault(inv.Client.Name, "Client Name"), props.Text{Top: 5, Size: 9}),
			text.New(inv.Client.Address, props.Text{Top: 9, Size: 9}),
			text.New(inv.Client.Email, props.Text{Top: 18, Size: 9}),
			text.New(inv.Client.Phone, props.Text{Top: 22, Size: 9}),
		),
	)

	m.AddRow(10,
		text.NewCol(5, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Tax", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "Disc", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range inv.LineItems {
		m.AddRow(8,
			text.NewCol(5, item.Description, props.Text{Size: 9}),
			text.NewCol(1, format.Quantity(item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, format.Amount(item.UnitPrice, symbol), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, format.Percent(item.TaxRate), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, format.Percent(item.DiscountPercent), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, format.Amount(ledger.LineTotal(item), symbol), props.Text{Size: 9, Align: align.Right}),
		)
	}

	totals := ledger.InvoiceTotals(inv.LineItems)

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, format.Amount(totals.Subtotal, symbol), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Discount", props.Text{Size: 9}),
		text.NewCol(2, "-"+format.Amount(totals.TotalDiscount, symbol), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Tax", props.Text{Size: 9}),
		text.NewCol(2, format.Amount(totals.TotalTax, symbol), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, format.Amount(totals.Total, symbol), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	if inv.Notes != "" {
		m.AddRow(20,
			text.NewCol(12, inv.Notes, props.Text{Size: 9, Top: 6}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// splitLogoDataURL extracts the base64 payload and image type from a
// data URL. Anything that is not a base64 PNG or JPEG is skipped so a
// malformed logo can never fail PDF generation.
func splitLogoDataURL(logo string) (string, extension.Type, bool) {
	for prefix, ext := range map[string]extension.Type{
		"data:image/png;base64,":  extension.Png,
		"data:image/jpeg;base64,": extension.Jpg,
		"data:image/jpg;base64,":  extension.Jpg,
	} {
		if strings.HasPrefix(logo, prefix) {
			return strings.TrimPrefix(logo, prefix), ext, true
		}
	}
	return "", "", false
}
