package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starfolksoftware/invoicegen/internal/invoice/domain"
	"github.com/starfolksoftware/invoicegen/internal/reference"
)

func (s *Server) ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": reference.Currencies()})
}

func (s *Server) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": domain.Templates})
}
