package invoice

import (
	"go.uber.org/fx"

	"github.com/starfolksoftware/invoicegen/internal/invoice/render"
	"github.com/starfolksoftware/invoicegen/internal/invoice/repository"
	"github.com/starfolksoftware/invoicegen/internal/invoice/service"
)

var Module = fx.Module("invoice",
	fx.Provide(repository.NewRepository),
	fx.Provide(render.NewRenderer),
	fx.Provide(service.NewService),
)
