// internal/interfaces/http/handlers/sales.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/pkg/receipt"
)

// VentasHandler exposes the sales history and boleta screens
type VentasHandler struct {
	backend  *backend.Client
	receipts *receipt.Service
}

// NewVentasHandler creates a new sales handler
func NewVentasHandler(client *backend.Client, receipts *receipt.Service) *VentasHandler {
	return &VentasHandler{
		backend:  client,
		receipts: receipts,
	}
}

// ListAll handles GET /ventas (admin)
func (h *VentasHandler) ListAll(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	ventas, err := h.backend.Ventas(c.Request.Context(), s.Token)
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ventas})
}

// ListMine handles GET /ventas/mis-ventas
func (h *VentasHandler) ListMine(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	ventas, err := h.backend.MisVentas(c.Request.Context(), s.Token)
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ventas})
}

// Get handles GET /ventas/:id — the boleta view
func (h *VentasHandler) Get(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := h.ventaID(c)
	if !ok {
		return
	}

	venta, err := h.backend.GetVenta(c.Request.Context(), s.Token, id)
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": venta})
}

// PDF handles GET /ventas/:id/pdf — the server-rendered boleta
func (h *VentasHandler) PDF(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := h.ventaID(c)
	if !ok {
		return
	}

	data, contentType, err := h.backend.VentaPDF(c.Request.Context(), s.Token, id)
	if err != nil {
		apiFail(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Data(http.StatusOK, contentType, data)
}

// Print handles GET /ventas/:id/imprimir — a locally rendered
// printable boleta for terminals that print without the backend PDF.
func (h *VentasHandler) Print(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := h.ventaID(c)
	if !ok {
		return
	}

	venta, err := h.backend.GetVenta(c.Request.Context(), s.Token, id)
	if err != nil {
		apiFail(c, err)
		return
	}

	pdf, err := h.receipts.GenerateBoleta(venta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar la boleta"})
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}

// Report handles GET /ventas/reporte (admin)
func (h *VentasHandler) Report(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	data, contentType, err := h.backend.ReporteVentas(c.Request.Context(), s.Token)
	if err != nil {
		apiFail(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

func (h *VentasHandler) ventaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Venta inválida"})
		return 0, false
	}
	return id, true
}
