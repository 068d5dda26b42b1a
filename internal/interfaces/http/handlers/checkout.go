// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/domain/checkout"
	"github.com/your-org/pos-terminal/internal/session"
)

// CheckoutHandler confirms the session cart as a sale
type CheckoutHandler struct {
	sessions session.Store
	checkout *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions session.Store, svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		checkout: svc,
	}
}

// ConfirmRequest is the sale confirmation form
type ConfirmRequest struct {
	MetodoPago  string `json:"metodo_pago" binding:"required"`
	MontoPagado int64  `json:"monto_pagado"`
}

// Confirm handles POST /checkout. Validation failures never reach the
// POS API; a backend failure leaves the stored cart untouched so the
// seller can retry as-is.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	metodo, err := checkout.ParseMethod(req.MetodoPago)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sel := checkout.PaymentSelection{Metodo: metodo, MontoPagado: req.MontoPagado}

	ct, ok := loadCart(c, h.sessions, s)
	if !ok {
		return
	}

	result, err := h.checkout.Confirm(c.Request.Context(), s.Token, s.ID, ct, sel)
	if err != nil {
		h.fail(c, err)
		return
	}

	// The cart is cleared in the service; persist the empty state
	if !saveCart(c, h.sessions, s, ct) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "¡Venta realizada con éxito!",
		"data": gin.H{
			"venta":             result.Venta,
			"carrito":           renderCart(ct),
			"metodo_pago":       checkout.DefaultSelection().Metodo,
			"monto_pagado":      int64(0),
			"redirect_route":    "/mis-ventas",
			"redirect_after_ms": result.RedirectAfter.Milliseconds(),
		},
	})
}

func (h *CheckoutHandler) fail(c *gin.Context, err error) {
	var insuficiente *checkout.PagoInsuficienteError
	switch {
	case errors.Is(err, checkout.ErrCarritoVacio):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &insuficiente):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    insuficiente.Error(),
			"faltante": insuficiente.Faltante,
		})
	case errors.Is(err, checkout.ErrVentaEnCurso):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		apiFail(c, err)
	}
}
