// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"fmt"

	"github.com/your-org/pos-terminal/internal/domain/cart"
)

// Validation errors block submission before any network call is made.

// ErrCarritoVacio is returned when confirming an empty cart
var ErrCarritoVacio = errors.New("el carrito está vacío")

// ErrVentaEnCurso is returned when a confirmation for the same session
// is already in flight
var ErrVentaEnCurso = errors.New("ya hay una venta en curso")

// PagoInsuficienteError names the exact cash shortfall
type PagoInsuficienteError struct {
	Faltante int64
}

func (e *PagoInsuficienteError) Error() string {
	return fmt.Sprintf("monto insuficiente, faltan %s", cart.FormatPesos(e.Faltante))
}
