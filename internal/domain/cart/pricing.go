// internal/domain/cart/pricing.go
package cart

import "math"

// Pricing replicates for display what the POS API computes
// authoritatively when a sale is recorded. Amounts are whole pesos.
//
// Canonical rounding order: net and tax are summed separately, with
// tax rounded per line. The server-derived precio_con_iva never enters
// these sums; mixing the two rounding paths is what these functions
// exist to prevent.

// SubtotalNet returns the cart total before tax
func SubtotalNet(c *Cart) int64 {
	var sum int64
	for _, line := range c.Lines() {
		sum += line.Producto.PrecioBase * int64(line.Cantidad)
	}
	return sum
}

// TaxTotal returns the IVA over the whole cart, rounded per line
func TaxTotal(c *Cart) int64 {
	var sum int64
	for _, line := range c.Lines() {
		sum += lineTax(line)
	}
	return sum
}

// Total returns the amount due: net subtotal plus tax
func Total(c *Cart) int64 {
	return SubtotalNet(c) + TaxTotal(c)
}

// Change returns what goes back to the customer on a cash payment.
// Negative means the tendered amount does not cover the total. The
// result is meaningless for non-cash methods and callers must not
// compute it for them.
func Change(total, montoPagado int64) int64 {
	return montoPagado - total
}

// LineTotal returns one line's net plus tax under the same rounding
// order the cart totals use
func LineTotal(line Line) int64 {
	return line.Producto.PrecioBase*int64(line.Cantidad) + lineTax(line)
}

func lineTax(line Line) int64 {
	base := float64(line.Producto.PrecioBase * int64(line.Cantidad))
	return int64(math.Round(base * line.Producto.IVA / 100))
}
