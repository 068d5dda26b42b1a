// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/session"
)

// CartHandler owns the session cart endpoints. The cart itself is a
// store snapshot; every mutation is load, apply, save.
type CartHandler struct {
	sessions session.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions session.Store) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// cartLineView is one rendered cart line with its boundary state
type cartLineView struct {
	Producto         backend.Producto `json:"producto"`
	Cantidad         int              `json:"cantidad"`
	Subtotal         int64            `json:"subtotal"`
	PuedeIncrementar bool             `json:"puede_incrementar"`
}

// cartView is the full cart screen state
type cartView struct {
	Items          []cartLineView `json:"items"`
	Subtotal       int64          `json:"subtotal"`
	TotalIVA       int64          `json:"total_iva"`
	Total          int64          `json:"total"`
	TotalDisplay   string         `json:"total_display"`
	PuedeConfirmar bool           `json:"puede_confirmar"`
}

func renderCart(ct *cart.Cart) cartView {
	lines := ct.Lines()
	view := cartView{
		Items:          make([]cartLineView, len(lines)),
		Subtotal:       cart.SubtotalNet(ct),
		TotalIVA:       cart.TaxTotal(ct),
		PuedeConfirmar: !ct.IsEmpty(),
	}
	view.Total = view.Subtotal + view.TotalIVA
	view.TotalDisplay = cart.FormatPesos(view.Total)

	for i, line := range lines {
		view.Items[i] = cartLineView{
			Producto:         line.Producto,
			Cantidad:         line.Cantidad,
			Subtotal:         cart.LineTotal(line),
			PuedeIncrementar: line.Cantidad < line.Producto.StockActual,
		}
	}
	return view
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	ct, ok := loadCart(c, h.sessions, s)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": renderCart(ct)})
}

// AddItem handles POST /cart/items. The body carries the product
// snapshot the catalog screen showed; its stock is the ceiling this
// line will hold for the rest of the session.
func (h *CartHandler) AddItem(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	var producto backend.Producto
	if err := c.ShouldBindJSON(&producto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if producto.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Producto inválido"})
		return
	}

	ct, ok := loadCart(c, h.sessions, s)
	if !ok {
		return
	}

	added := ct.AddOrIncrement(producto)
	if added && !saveCart(c, h.sessions, s, ct) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": renderCart(ct), "added": added})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	productoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Producto inválido"})
		return
	}

	var req struct {
		Cantidad int `json:"cantidad"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ct, ok := loadCart(c, h.sessions, s)
	if !ok {
		return
	}

	applied := ct.SetQuantity(productoID, req.Cantidad)
	if applied && !saveCart(c, h.sessions, s, ct) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": renderCart(ct), "applied": applied})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	productoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Producto inválido"})
		return
	}

	ct, ok := loadCart(c, h.sessions, s)
	if !ok {
		return
	}

	ct.Remove(productoID)
	if !saveCart(c, h.sessions, s, ct) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": renderCart(ct)})
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}

	if err := h.sessions.ClearCart(c.Request.Context(), s.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": renderCart(cart.New())})
}
