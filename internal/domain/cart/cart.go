// internal/domain/cart/cart.go
package cart

import (
	"encoding/json"

	"github.com/your-org/pos-terminal/internal/backend"
)

// Line is one cart entry. The product is snapshotted at add time, so
// the stock ceiling a line enforces is the stock the seller saw, not
// whatever the catalog says later.
type Line struct {
	Producto backend.Producto `json:"producto"`
	Cantidad int              `json:"cantidad"`
}

// Cart is the ordered set of lines for one terminal session. Lines are
// unique per product id; insertion order is display order. The zero
// value is not usable, call New.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{lines: []Line{}}
}

// FromSnapshot restores a cart from its serialized form
func FromSnapshot(data []byte) (*Cart, error) {
	c := New()
	if len(data) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(data, &c.lines); err != nil {
		return nil, err
	}
	return c, nil
}

// Snapshot serializes the cart for the session-store hand-off
func (c *Cart) Snapshot() ([]byte, error) {
	return json.Marshal(c.lines)
}

// AddOrIncrement adds a product with quantity 1, or bumps the existing
// line by 1. Returns false when the stock ceiling makes the request a
// no-op; the catalog keeps exhausted products un-addable, so a false
// here is a disabled control, not an error.
func (c *Cart) AddOrIncrement(p backend.Producto) bool {
	for i := range c.lines {
		if c.lines[i].Producto.ID == p.ID {
			if c.lines[i].Cantidad+1 > c.lines[i].Producto.StockActual {
				return false
			}
			c.lines[i].Cantidad++
			return true
		}
	}
	if p.StockActual < 1 {
		return false
	}
	c.lines = append(c.lines, Line{Producto: p, Cantidad: 1})
	return true
}

// SetQuantity replaces a line's quantity. Zero or less removes the
// line; a quantity above the snapshotted stock is silently rejected.
func (c *Cart) SetQuantity(productoID int64, cantidad int) bool {
	if cantidad <= 0 {
		c.Remove(productoID)
		return true
	}
	for i := range c.lines {
		if c.lines[i].Producto.ID == productoID {
			if cantidad > c.lines[i].Producto.StockActual {
				return false
			}
			c.lines[i].Cantidad = cantidad
			return true
		}
	}
	return false
}

// Remove deletes a line if present; removing an absent id is a no-op
func (c *Cart) Remove(productoID int64) {
	for i := range c.lines {
		if c.lines[i].Producto.ID == productoID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Lines returns the cart lines in insertion order
func (c *Cart) Lines() []Line {
	return c.lines
}

// Find returns the line for a product id
func (c *Cart) Find(productoID int64) (Line, bool) {
	for _, line := range c.lines {
		if line.Producto.ID == productoID {
			return line, true
		}
	}
	return Line{}, false
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.lines)
}
