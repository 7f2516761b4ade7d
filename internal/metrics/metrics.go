// Package metrics exposes Prometheus instrumentation for the HTTP API
// and the document renderers.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	invoiceOps   *prometheus.CounterVec
	renders      *prometheus.CounterVec
}

// NewRegistry builds the process-wide registry with the standard Go and
// process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invoicegen_http_requests_total",
		Help: "Counts HTTP requests by method, route, and status.",
	}, []string{"method", "route", "status"})

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "invoicegen_http_duration_seconds",
		Help:    "HTTP request latency per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	invoiceOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invoicegen_invoice_operations_total",
		Help: "Counts invoice collection operations by kind.",
	}, []string{"operation"})

	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invoicegen_renders_total",
		Help: "Counts invoice document renders by format.",
	}, []string{"format"})

	reg.MustRegister(httpRequests, httpDuration, invoiceOps, renders)

	return &Metrics{
		httpRequests: httpRequests,
		httpDuration: httpDuration,
		invoiceOps:   invoiceOps,
		renders:      renders,
	}
}

// Middleware records request counts and latency. Routes are labeled by
// the gin route pattern, not the raw path, to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordOperation counts a collection mutation, e.g. "create" or
// "delete".
func (m *Metrics) RecordOperation(operation string) {
	m.invoiceOps.WithLabelValues(operation).Inc()
}

// RecordRender counts a document render, format "html" or "pdf".
func (m *Metrics) RecordRender(format string) {
	m.renders.WithLabelValues(format).Inc()
}

var Module = fx.Module("metrics",
	fx.Provide(NewRegistry),
	fx.Provide(New),
)
