// internal/interfaces/http/handlers/days.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
)

// DiasHandler exposes the day-closing and day-history screens
type DiasHandler struct {
	backend *backend.Client
}

// NewDiasHandler creates a new days handler
func NewDiasHandler(client *backend.Client) *DiasHandler {
	return &DiasHandler{backend: client}
}

// CerrarRequest is the day-closing form
type CerrarRequest struct {
	Observaciones string `json:"observaciones"`
}

// Cerrar handles POST /dias/cerrar (admin)
func (h *DiasHandler) Cerrar(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	var req CerrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.backend.CerrarDia(c.Request.Context(), s.Token, req.Observaciones); err != nil {
		apiFail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Día cerrado",
		"redirect_route": "/dashboard",
	})
}

// List handles GET /dias (admin)
func (h *DiasHandler) List(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	dias, err := h.backend.ListDias(c.Request.Context(), s.Token)
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dias})
}

// Get handles GET /dias/:id (admin)
func (h *DiasHandler) Get(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := h.diaID(c)
	if !ok {
		return
	}

	dia, err := h.backend.GetDia(c.Request.Context(), s.Token, id)
	if err != nil {
		apiFail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dia})
}

// Report handles GET /dias/:id/reporte?formato=pdf|excel (admin)
func (h *DiasHandler) Report(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	id, ok := h.diaID(c)
	if !ok {
		return
	}

	formato := c.DefaultQuery("formato", "pdf")
	data, contentType, err := h.backend.ReporteDia(c.Request.Context(), s.Token, id, formato)
	if err != nil {
		if formato != "pdf" && formato != "excel" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "formato debe ser pdf o excel"})
			return
		}
		apiFail(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

func (h *DiasHandler) diaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Día inválido"})
		return 0, false
	}
	return id, true
}
