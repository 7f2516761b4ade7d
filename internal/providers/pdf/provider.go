// Package pdf renders an invoice into a PDF document. The layout is
// self-contained: the business logo comes from the record's data URL,
// never from files on disk, so generation has no runtime assets.
package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
)

type Provider interface {
	GenerateInvoice(ctx context.Context, inv domain.Invoice, symbol string) (io.Reader, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
