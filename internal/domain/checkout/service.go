// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/domain/cart"
)

// SaleCreator is the one backend operation checkout needs
type SaleCreator interface {
	CreateVenta(ctx context.Context, token string, draft backend.VentaDraft) (*backend.Venta, error)
}

// Service turns a validated cart into exactly one sale-creation call.
// A per-session in-flight flag makes a double confirmation a rejected
// state rather than a duplicate sale.
type Service struct {
	backend       SaleCreator
	redirectDelay time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewService creates a new checkout service
func NewService(backendClient SaleCreator, redirectDelay time.Duration) *Service {
	return &Service{
		backend:       backendClient,
		redirectDelay: redirectDelay,
		inFlight:      make(map[string]bool),
	}
}

// Result is a confirmed sale plus the pause the terminal should show
// the success notice for before navigating to the sales history.
type Result struct {
	Venta         *backend.Venta
	RedirectAfter time.Duration
}

// Validate checks a cart and payment selection without side effects.
// Order: empty cart first, then cash sufficiency. Non-cash methods
// never compute change and never block on tendered amount.
func Validate(ct *cart.Cart, sel PaymentSelection) error {
	if ct.IsEmpty() {
		return ErrCarritoVacio
	}
	if sel.Metodo.IsCash() {
		total := cart.Total(ct)
		if sel.MontoPagado < total {
			return &PagoInsuficienteError{Faltante: total - sel.MontoPagado}
		}
	}
	return nil
}

// BuildDraft serializes the cart into the POST /ventas payload. Line
// order follows cart insertion order.
func BuildDraft(ct *cart.Cart, sel PaymentSelection) backend.VentaDraft {
	lines := ct.Lines()
	draft := backend.VentaDraft{
		MetodoPago: sel.Metodo.Wire(),
		Productos:  make([]backend.VentaDraftLinea, len(lines)),
	}
	for i, line := range lines {
		draft.Productos[i] = backend.VentaDraftLinea{
			ProductoID: line.Producto.ID,
			Cantidad:   line.Cantidad,
		}
	}
	return draft
}

// Confirm validates, submits, and on success clears the cart. On any
// failure the cart is left untouched so the seller can retry
// immediately with the same state.
func (s *Service) Confirm(ctx context.Context, token, sessionID string, ct *cart.Cart, sel PaymentSelection) (*Result, error) {
	if !s.begin(sessionID) {
		return nil, ErrVentaEnCurso
	}
	defer s.end(sessionID)

	if err := Validate(ct, sel); err != nil {
		return nil, err
	}

	venta, err := s.backend.CreateVenta(ctx, token, BuildDraft(ct, sel))
	if err != nil {
		return nil, err
	}

	ct.Clear()

	return &Result{
		Venta:         venta,
		RedirectAfter: s.redirectDelay,
	}, nil
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
