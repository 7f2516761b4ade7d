package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/starfolksoftware/invoicegen/internal/clock"
	"github.com/starfolksoftware/invoicegen/internal/config"
	invoicedomain "github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/starfolksoftware/invoicegen/internal/invoice/render"
	"github.com/starfolksoftware/invoicegen/internal/invoice/repository"
	"github.com/starfolksoftware/invoicegen/internal/invoice/service"
	"github.com/starfolksoftware/invoicegen/internal/metrics"
	"github.com/starfolksoftware/invoicegen/internal/providers/pdf"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := service.NewService(service.ServiceParam{
		Log:      zap.NewNop(),
		Clock:    clock.NewFakeClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)),
		GenID:    node,
		Repo:     repository.NewMemoryRepository(),
		Defaults: config.NewStaticDefaults(config.DefaultInvoiceDefaults()),
	})
	require.NoError(t, svc.Init(context.Background()))

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	engine := NewEngine(zap.NewNop(), m, reg)

	NewServer(ServerParams{
		Gin:        engine,
		Cfg:        config.Config{HTTPAddr: ":0"},
		Log:        zap.NewNop(),
		InvoiceSvc: svc,
		Renderer:   render.NewRenderer(),
		PDFSvc:     pdf.New(),
		Metrics:    m,
	})

	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type invoiceEnvelope struct {
	Data invoicedomain.Invoice `json:"data"`
}

type invoiceListEnvelope struct {
	Data []invoicedomain.Invoice `json:"data"`
}

func TestListInvoices_SeededCollection(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp invoiceListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "INV-001", resp.Data[0].InvoiceNumber)
}

func TestCreateInvoice_AppendsAndSelects(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodPost, "/api/invoices", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "INV-002", created.Data.InvoiceNumber)

	w = doRequest(t, engine, http.MethodGet, "/api/invoices/current", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var current invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, created.Data.ID, current.Data.ID)
}

func TestUpdateCurrentInvoice(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodPatch, "/api/invoices/current", gin.H{
		"invoiceNumber": "INV-777",
		"client":        gin.H{"name": "Globex Corp"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INV-777", resp.Data.InvoiceNumber)
	assert.Equal(t, "Globex Corp", resp.Data.Client.Name)
}

func TestUpdateCurrentInvoice_RejectsMalformedBody(t *testing.T) {
	engine := newTestServer(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/invoices/current", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestUpdateCurrentInvoice_RejectsOversizedLogo(t *testing.T) {
	engine := newTestServer(t)

	logo := "data:image/png;base64," + strings.Repeat("A", maxLogoBytes)
	w := doRequest(t, engine, http.MethodPatch, "/api/invoices/current", gin.H{
		"business": gin.H{"logo": logo},
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestGetInvoiceByID_Unknown(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/invoices/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestDeleteInvoice_CollectionNeverEmpty(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/invoices/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	w = doRequest(t, engine, http.MethodDelete, "/api/invoices/"+current.Data.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list invoiceListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.NotEqual(t, current.Data.ID, list.Data[0].ID)
}

func TestDuplicateInvoice(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/invoices/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	w = doRequest(t, engine, http.MethodPost, "/api/invoices/"+current.Data.ID+"/duplicate", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var dup invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dup))
	assert.NotEqual(t, current.Data.ID, dup.Data.ID)
	assert.Equal(t, "INV-002", dup.Data.InvoiceNumber)

	w = doRequest(t, engine, http.MethodPost, "/api/invoices/unknown/duplicate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectInvoice(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodPost, "/api/invoices", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/invoices", nil)
	var list invoiceListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 2)
	first := list.Data[0]

	w = doRequest(t, engine, http.MethodPost, "/api/invoices/"+first.ID+"/select", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var current invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, first.ID, current.Data.ID)
}

func TestRenderInvoiceHTML(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/invoices/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	w = doRequest(t, engine, http.MethodGet, "/api/invoices/"+current.Data.ID+"/html", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "INV-001")

	// Unknown template override still renders via the classic fallback.
	w = doRequest(t, engine, http.MethodGet, "/api/invoices/"+current.Data.ID+"/html?template=brutalist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INV-001")
}

func TestRenderInvoicePDF(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/invoices/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current invoiceEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	w = doRequest(t, engine, http.MethodGet, "/api/invoices/"+current.Data.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestReferenceEndpoints(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/currencies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"USD"`)
	assert.Contains(t, w.Body.String(), `"MXN"`)

	w = doRequest(t, engine, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "classic")
	assert.Contains(t, w.Body.String(), "elegant")
}

func TestHealthAndMetrics(t *testing.T) {
	engine := newTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The list call above plus this one should show up in the counters.
	doRequest(t, engine, http.MethodGet, "/api/invoices", nil)

	w = doRequest(t, engine, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invoicegen_http_requests_total")
}
