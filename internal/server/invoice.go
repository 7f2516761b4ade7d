package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/starfolksoftware/invoicegen/internal/reference"
)

// maxLogoBytes caps the business logo data URL at 2 MiB. Anything
// larger is rejected rather than persisted into the collection slot.
const maxLogoBytes = 2 << 20

func (s *Server) ListInvoices(c *gin.Context) {
	invoices := s.invoiceSvc.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	inv := s.invoiceSvc.Create(c.Request.Context())
	s.metrics.RecordOperation("create")
	c.JSON(http.StatusCreated, gin.H{"data": inv})
}

func (s *Server) GetCurrentInvoice(c *gin.Context) {
	inv, ok := s.invoiceSvc.Current(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) UpdateCurrentInvoice(c *gin.Context) {
	var patch invoicedomain.InvoicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	if patch.Business != nil && len(patch.Business.Logo) > maxLogoBytes {
		AbortWithError(c, ErrPayloadTooLarge)
		return
	}

	s.invoiceSvc.UpdateCurrent(c.Request.Context(), patch)
	s.metrics.RecordOperation("update")

	inv, ok := s.invoiceSvc.Current(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	inv, ok := s.invoiceSvc.Get(c.Request.Context(), id)
	if !ok {
		AbortWithError(c, invoicedomain.ErrInvoiceNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	s.invoiceSvc.Delete(c.Request.Context(), id)
	s.metrics.RecordOperation("delete")
	c.Status(http.StatusNoContent)
}

func (s *Server) SelectInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	s.invoiceSvc.Select(c.Request.Context(), id)

	inv, ok := s.invoiceSvc.Current(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Server) DuplicateInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	inv, ok := s.invoiceSvc.Duplicate(c.Request.Context(), id)
	if !ok {
		AbortWithError(c, invoicedomain.ErrInvoiceNotFound)
		return
	}
	s.metrics.RecordOperation("duplicate")
	c.JSON(http.StatusCreated, gin.H{"data": inv})
}

func (s *Server) RenderInvoiceHTML(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	inv, ok := s.invoiceSvc.Get(c.Request.Context(), id)
	if !ok {
		AbortWithError(c, invoicedomain.ErrInvoiceNotFound)
		return
	}

	symbol := reference.SymbolFor(inv.Currency)

	var html string
	var err error
	if tpl := strings.TrimSpace(c.Query("template")); tpl != "" {
		html, err = s.renderer.RenderHTMLAs(inv, symbol, invoicedomain.Template(tpl))
	} else {
		html, err = s.renderer.RenderHTML(inv, symbol)
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordRender("html")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) RenderInvoicePDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	inv, ok := s.invoiceSvc.Get(c.Request.Context(), id)
	if !ok {
		AbortWithError(c, invoicedomain.ErrInvoiceNotFound)
		return
	}

	doc, err := s.pdfSvc.GenerateInvoice(c.Request.Context(), inv, reference.SymbolFor(inv.Currency))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordRender("pdf")
	c.Header("Content-Disposition", `attachment; filename="`+inv.InvoiceNumber+`.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc)
}
