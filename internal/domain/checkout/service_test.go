package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/domain/cart"
)

type fakeSaleCreator struct {
	mu     sync.Mutex
	calls  int
	drafts []backend.VentaDraft
	venta  *backend.Venta
	err    error
	block  chan struct{}
}

func (f *fakeSaleCreator) CreateVenta(_ context.Context, _ string, draft backend.VentaDraft) (*backend.Venta, error) {
	f.mu.Lock()
	f.calls++
	f.drafts = append(f.drafts, draft)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.venta, nil
}

func (f *fakeSaleCreator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func producto(id int64, precioBase int64, stock int) backend.Producto {
	return backend.Producto{ID: id, Nombre: "Producto", PrecioBase: precioBase, IVA: 19, StockActual: stock}
}

func fullCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	require.True(t, c.AddOrIncrement(producto(1, 1000, 5)))
	require.True(t, c.SetQuantity(1, 2))
	require.True(t, c.AddOrIncrement(producto(2, 500, 5)))
	return c
}

func TestValidate_EmptyCart(t *testing.T) {
	err := Validate(cart.New(), DefaultSelection())
	assert.ErrorIs(t, err, ErrCarritoVacio)
}

func TestValidate_CashSufficiency(t *testing.T) {
	c := fullCart(t) // total: 2380 + 595 = 2975

	total := cart.Total(c)
	require.Equal(t, int64(2975), total)

	// Exact amount passes
	err := Validate(c, PaymentSelection{Metodo: MethodEfectivo, MontoPagado: total})
	assert.NoError(t, err)

	// One peso short fails naming a shortfall of exactly 1
	err = Validate(c, PaymentSelection{Metodo: MethodEfectivo, MontoPagado: total - 1})
	var insuficiente *PagoInsuficienteError
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, int64(1), insuficiente.Faltante)
	assert.Equal(t, "monto insuficiente, faltan $1", insuficiente.Error())
}

func TestValidate_NonCashNeverBlocksOnAmount(t *testing.T) {
	c := fullCart(t)
	assert.NoError(t, Validate(c, PaymentSelection{Metodo: MethodTarjeta}))
	assert.NoError(t, Validate(c, PaymentSelection{Metodo: MethodTransferencia}))
}

func TestValidate_ShortfallMessage(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddOrIncrement(producto(1, 1000, 5)))
	require.True(t, c.SetQuantity(1, 2)) // total 2380

	err := Validate(c, PaymentSelection{Metodo: MethodEfectivo, MontoPagado: 2000})
	var insuficiente *PagoInsuficienteError
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, int64(380), insuficiente.Faltante)
}

func TestBuildDraft(t *testing.T) {
	c := fullCart(t)
	draft := BuildDraft(c, PaymentSelection{Metodo: MethodEfectivo, MontoPagado: 5000})

	assert.Equal(t, "efectivo", draft.MetodoPago)
	require.Len(t, draft.Productos, 2)
	assert.Equal(t, backend.VentaDraftLinea{ProductoID: 1, Cantidad: 2}, draft.Productos[0])
	assert.Equal(t, backend.VentaDraftLinea{ProductoID: 2, Cantidad: 1}, draft.Productos[1])
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("efectivo")
	require.NoError(t, err)
	assert.Equal(t, MethodEfectivo, m)
	assert.Equal(t, "efectivo", m.Wire())
	assert.True(t, m.IsCash())

	m, err = ParseMethod("TARJETA")
	require.NoError(t, err)
	assert.False(t, m.IsCash())

	_, err = ParseMethod("cheque")
	assert.Error(t, err)
}

func TestConfirm_Success(t *testing.T) {
	fake := &fakeSaleCreator{venta: &backend.Venta{ID: 7, Total: 2975}}
	svc := NewService(fake, 2*time.Second)
	c := fullCart(t)

	result, err := svc.Confirm(context.Background(), "token", "sess-1", c, PaymentSelection{Metodo: MethodEfectivo, MontoPagado: 5000})
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.Venta.ID)
	assert.Equal(t, 2*time.Second, result.RedirectAfter)
	assert.True(t, c.IsEmpty(), "cart must be cleared after a confirmed sale")
	assert.Equal(t, 1, fake.callCount())
}

func TestConfirm_ValidationFailureNeverCallsBackend(t *testing.T) {
	fake := &fakeSaleCreator{}
	svc := NewService(fake, time.Second)

	_, err := svc.Confirm(context.Background(), "token", "sess-1", cart.New(), DefaultSelection())
	assert.ErrorIs(t, err, ErrCarritoVacio)

	c := fullCart(t)
	_, err = svc.Confirm(context.Background(), "token", "sess-1", c, PaymentSelection{Metodo: MethodEfectivo, MontoPagado: 100})
	var insuficiente *PagoInsuficienteError
	assert.ErrorAs(t, err, &insuficiente)

	assert.Equal(t, 0, fake.callCount())
	assert.Equal(t, 2, c.Len(), "cart must be untouched by validation failures")
}

func TestConfirm_BackendFailureKeepsCart(t *testing.T) {
	fake := &fakeSaleCreator{err: &backend.APIError{Status: 400, Message: "stock insuficiente para Producto"}}
	svc := NewService(fake, time.Second)
	c := fullCart(t)

	_, err := svc.Confirm(context.Background(), "token", "sess-1", c, PaymentSelection{Metodo: MethodTarjeta})
	require.Error(t, err)
	assert.Equal(t, "stock insuficiente para Producto", err.Error())
	assert.Equal(t, 2, c.Len(), "cart must survive a failed submission")

	// Immediate retry with unchanged state issues a second call
	fake.err = nil
	fake.venta = &backend.Venta{ID: 8}
	_, err = svc.Confirm(context.Background(), "token", "sess-1", c, PaymentSelection{Metodo: MethodTarjeta})
	require.NoError(t, err)
	assert.Equal(t, 2, fake.callCount())
}

func TestConfirm_DoubleSubmitRejected(t *testing.T) {
	fake := &fakeSaleCreator{venta: &backend.Venta{ID: 9}, block: make(chan struct{})}
	svc := NewService(fake, time.Second)
	c := fullCart(t)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(context.Background(), "token", "sess-1", c, PaymentSelection{Metodo: MethodTarjeta})
		firstDone <- err
	}()

	// Wait for the first confirmation to reach the backend
	require.Eventually(t, func() bool { return fake.callCount() == 1 }, time.Second, 5*time.Millisecond)

	_, err := svc.Confirm(context.Background(), "token", "sess-1", c, PaymentSelection{Metodo: MethodTarjeta})
	assert.ErrorIs(t, err, ErrVentaEnCurso)

	close(fake.block)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, fake.callCount(), "exactly one sale-creation call per confirmed submission")
}

func TestConfirm_OtherSessionsUnaffectedByInFlight(t *testing.T) {
	fake := &fakeSaleCreator{venta: &backend.Venta{ID: 10}, block: make(chan struct{})}
	svc := NewService(fake, time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(context.Background(), "token", "sess-1", fullCart(t), PaymentSelection{Metodo: MethodTarjeta})
		done <- err
	}()
	require.Eventually(t, func() bool { return fake.callCount() == 1 }, time.Second, 5*time.Millisecond)

	// A different terminal session is not gated by sess-1's flight
	other := fullCart(t)
	otherDone := make(chan error, 1)
	go func() {
		_, err := svc.Confirm(context.Background(), "token", "sess-2", other, PaymentSelection{Metodo: MethodTarjeta})
		otherDone <- err
	}()
	require.Eventually(t, func() bool { return fake.callCount() == 2 }, time.Second, 5*time.Millisecond)

	close(fake.block)
	require.NoError(t, <-done)
	require.NoError(t, <-otherDone)
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	err := &backend.APIError{Status: 500}
	assert.Equal(t, "error 500", err.Error())
	assert.True(t, errors.As(error(err), new(*backend.APIError)))
}
