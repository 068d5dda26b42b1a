package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/checkout"
	"github.com/your-org/pos-terminal/internal/interfaces/http/routes"
	"github.com/your-org/pos-terminal/internal/pkg/receipt"
	"github.com/your-org/pos-terminal/internal/session"
)

// fakePOS is a minimal stand-in for the remote POS API
type fakePOS struct {
	rol        string
	ventaCalls int32
	ventaFail  string // when set, POST /ventas answers 400 with this message
	lastDraft  backend.VentaDraft
}

func (f *fakePOS) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			json.NewEncoder(w).Encode(backend.LoginResponse{
				AccessToken: "tok",
				Nombre:      "Ana",
				Correo:      "ana@tienda.cl",
				Rol:         f.rol,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/productos":
			json.NewEncoder(w).Encode([]backend.Producto{
				{ID: 1, Nombre: "Pan", PrecioBase: 1000, IVA: 19, PrecioConIVA: 1190, StockActual: 3},
				{ID: 2, Nombre: "Leche", PrecioBase: 500, IVA: 19, PrecioConIVA: 595, StockActual: 0},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/ventas":
			atomic.AddInt32(&f.ventaCalls, 1)
			json.NewDecoder(r.Body).Decode(&f.lastDraft)
			if f.ventaFail != "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": f.ventaFail})
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(backend.Venta{ID: 42, Total: 2380, MetodoPago: f.lastDraft.MetodoPago})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
		}
	}
}

type terminal struct {
	router *gin.Engine
	cookie *http.Cookie
	pos    *fakePOS
}

func newTerminal(t *testing.T, rol string) *terminal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pos := &fakePOS{rol: rol}
	posServer := httptest.NewServer(pos.handler())
	t.Cleanup(posServer.Close)

	cfg := &config.Config{}
	cfg.App.Environment = "test"
	cfg.Session.CookieName = "pos_session"
	cfg.Session.TTL = time.Hour
	cfg.Checkout.RedirectDelay = 2 * time.Second
	cfg.Company.Name = "Minimarket Test"

	client := backend.NewClient(posServer.URL, 5*time.Second, nil)
	sessions := session.NewMemoryStore()

	router := gin.New()
	routes.Setup(router.Group("/api/v1"), routes.Deps{
		Config:   cfg,
		Backend:  client,
		Sessions: sessions,
		Checkout: checkout.NewService(client, cfg.Checkout.RedirectDelay),
		Receipts: receipt.NewService(cfg),
	})

	term := &terminal{router: router, pos: pos}
	term.login(t)
	return term
}

func (term *terminal) login(t *testing.T) {
	t.Helper()
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"correo":"ana@tienda.cl","contrasena":"secreta"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", body)
	req.Header.Set("Content-Type", "application/json")
	term.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == "pos_session" {
			term.cookie = c
		}
	}
	require.NotNil(t, term.cookie, "login must set the session cookie")
}

func (term *terminal) do(t *testing.T, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(term.cookie)
	w := httptest.NewRecorder()
	term.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func pan() backend.Producto {
	return backend.Producto{ID: 1, Nombre: "Pan", PrecioBase: 1000, IVA: 19, PrecioConIVA: 1190, StockActual: 3}
}

func TestGuard_MissingSession(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	term.router.ServeHTTP(w, req) // no cookie

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, "login_required", body["error"])
	assert.Equal(t, "/login", body["redirect_route"])
}

func TestGuard_SellerBlockedFromAdminScreens(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/dias", "/api/v1/ventas"} {
		w := term.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		body := decode(t, w)
		assert.Equal(t, "/venta", body["redirect_route"], path)
	}
}

func TestCatalog_MarksExhaustedStock(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")

	w := term.do(t, http.MethodGet, "/api/v1/productos", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["data"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, false, items[0].(map[string]interface{})["agotado"])
	assert.Equal(t, true, items[1].(map[string]interface{})["agotado"])
}

func TestCartFlow_TotalsAndBoundaries(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")

	// Add the same product twice
	w := term.do(t, http.MethodPost, "/api/v1/cart/items", pan())
	require.Equal(t, http.StatusOK, w.Code)
	w = term.do(t, http.MethodPost, "/api/v1/cart/items", pan())
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1, "adds to the same product merge into one line")
	line := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), line["cantidad"])
	assert.Equal(t, true, line["puede_incrementar"])

	assert.Equal(t, float64(2000), data["subtotal"])
	assert.Equal(t, float64(380), data["total_iva"])
	assert.Equal(t, float64(2380), data["total"])
	assert.Equal(t, "$2.380", data["total_display"])
	assert.Equal(t, true, data["puede_confirmar"])

	// Third add hits the stock ceiling and disables the increment
	w = term.do(t, http.MethodPost, "/api/v1/cart/items", pan())
	data = decode(t, w)["data"].(map[string]interface{})
	line = data["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(3), line["cantidad"])
	assert.Equal(t, false, line["puede_incrementar"])

	// Fourth add is a no-op
	w = term.do(t, http.MethodPost, "/api/v1/cart/items", pan())
	body := decode(t, w)
	assert.Equal(t, false, body["added"])
	line = body["data"].(map[string]interface{})["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(3), line["cantidad"])

	// Setting quantity to zero empties the cart
	w = term.do(t, http.MethodPut, "/api/v1/cart/items/1", map[string]int{"cantidad": 0})
	data = decode(t, w)["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
	assert.Equal(t, false, data["puede_confirmar"])
}

func TestCheckout_InsufficientCashNeverReachesBackend(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")
	term.do(t, http.MethodPost, "/api/v1/cart/items", pan())
	term.do(t, http.MethodPut, "/api/v1/cart/items/1", map[string]int{"cantidad": 2}) // total 2380

	w := term.do(t, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"metodo_pago":  "EFECTIVO",
		"monto_pagado": 2000,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Equal(t, "monto insuficiente, faltan $380", body["error"])
	assert.Equal(t, float64(380), body["faltante"])
	assert.Equal(t, int32(0), atomic.LoadInt32(&term.pos.ventaCalls))

	// Cart untouched: retry with enough cash succeeds
	w = term.do(t, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"metodo_pago":  "EFECTIVO",
		"monto_pagado": 3000,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCheckout_EmptyCart(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")

	w := term.do(t, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"metodo_pago": "TARJETA",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "el carrito está vacío", decode(t, w)["error"])
	assert.Equal(t, int32(0), atomic.LoadInt32(&term.pos.ventaCalls))
}

func TestCheckout_SuccessResetsCartAndSelection(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")
	term.do(t, http.MethodPost, "/api/v1/cart/items", pan())
	term.do(t, http.MethodPut, "/api/v1/cart/items/1", map[string]int{"cantidad": 2})

	w := term.do(t, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"metodo_pago":  "EFECTIVO",
		"monto_pagado": 3000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, "¡Venta realizada con éxito!", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "EFECTIVO", data["metodo_pago"])
	assert.Equal(t, float64(0), data["monto_pagado"])
	assert.Equal(t, "/mis-ventas", data["redirect_route"])
	assert.Equal(t, float64(2000), data["redirect_after_ms"])

	// Wire payload: lowercase method, insertion-ordered lines
	assert.Equal(t, "efectivo", term.pos.lastDraft.MetodoPago)
	require.Len(t, term.pos.lastDraft.Productos, 1)
	assert.Equal(t, backend.VentaDraftLinea{ProductoID: 1, Cantidad: 2}, term.pos.lastDraft.Productos[0])

	// Cart is empty afterwards
	w = term.do(t, http.MethodGet, "/api/v1/cart", nil)
	cartData := decode(t, w)["data"].(map[string]interface{})
	assert.Empty(t, cartData["items"])
}

func TestCheckout_BackendErrorSurfacedVerbatim(t *testing.T) {
	term := newTerminal(t, "VENDEDOR")
	term.do(t, http.MethodPost, "/api/v1/cart/items", pan())

	term.pos.ventaFail = "stock insuficiente para Pan"
	w := term.do(t, http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"metodo_pago": "TARJETA",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "stock insuficiente para Pan", decode(t, w)["error"])

	// Cart survives the failure
	w = term.do(t, http.MethodGet, "/api/v1/cart", nil)
	cartData := decode(t, w)["data"].(map[string]interface{})
	assert.Len(t, cartData["items"], 1)
}

func TestLogout_ClearsSession(t *testing.T) {
	term := newTerminal(t, "ADMIN")

	w := term.do(t, http.MethodDelete, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login", decode(t, w)["redirect_route"])

	// The old cookie no longer resolves
	w = term.do(t, http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_ReachesAdminScreens(t *testing.T) {
	term := newTerminal(t, "ADMIN")

	// The fake POS has no dashboard endpoints, but the guard lets the
	// admin through and both widget failures resolve independently.
	w := term.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Contains(t, data, "consolidado_error")
	assert.Contains(t, data, "alertas_error")
}

func TestProfile(t *testing.T) {
	term := newTerminal(t, "ADMIN")

	w := term.do(t, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Ana", data["nombre"])
	assert.Equal(t, "ADMIN", data["rol"])
	caps := data["capacidades"].(map[string]interface{})
	assert.Equal(t, true, caps["close_day"])
}
