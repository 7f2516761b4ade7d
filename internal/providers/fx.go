package providers

import (
	"github.com/starfolksoftware/invoicegen/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	pdf.Module,
)
