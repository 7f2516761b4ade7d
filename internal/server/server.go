package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/starfolksoftware/invoicegen/internal/config"
	"github.com/starfolksoftware/invoicegen/internal/invoice"
	invoicedomain "github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/starfolksoftware/invoicegen/internal/invoice/render"
	"github.com/starfolksoftware/invoicegen/internal/metrics"
	"github.com/starfolksoftware/invoicegen/internal/providers"
	"github.com/starfolksoftware/invoicegen/internal/providers/pdf"
)

var Module = fx.Module("http.server",
	metrics.Module,
	invoice.Module,
	providers.Module,
	fx.Provide(registerGin),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, m *metrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(m.Middleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func registerGin(log *zap.Logger, m *metrics.Metrics, reg *prometheus.Registry) *gin.Engine {
	return NewEngine(log, m, reg)
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	invoiceSvc invoicedomain.Service
	renderer   render.Renderer
	pdfSvc     pdf.Provider
	metrics    *metrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	InvoiceSvc invoicedomain.Service
	Renderer   render.Renderer
	PDFSvc     pdf.Provider
	Metrics    *metrics.Metrics
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("http.server"),
		invoiceSvc: p.InvoiceSvc,
		renderer:   p.Renderer,
		pdfSvc:     p.PDFSvc,
		metrics:    p.Metrics,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	invoices := api.Group("/invoices")
	invoices.GET("", s.ListInvoices)
	invoices.POST("", s.CreateInvoice)
	invoices.GET("/current", s.GetCurrentInvoice)
	invoices.PATCH("/current", s.UpdateCurrentInvoice)
	invoices.GET("/:id", s.GetInvoiceByID)
	invoices.DELETE("/:id", s.DeleteInvoice)
	invoices.POST("/:id/select", s.SelectInvoice)
	invoices.POST("/:id/duplicate", s.DuplicateInvoice)
	invoices.GET("/:id/html", s.RenderInvoiceHTML)
	invoices.GET("/:id/pdf", s.RenderInvoicePDF)

	api.GET("/currencies", s.ListCurrencies)
	api.GET("/templates", s.ListTemplates)
}

func run(lc fx.Lifecycle, cfg config.Config, s *Server) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The collection must be loaded and seeded before the
			// first request can observe it.
			if err := s.invoiceSvc.Init(ctx); err != nil {
				return err
			}

			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Fatal("http server failed", zap.Error(err))
				}
			}()

			s.log.Info("http server started", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
