// internal/backend/sales.go
package backend

import (
	"context"
	"fmt"
	"net/http"
)

// CreateVenta submits a sale draft. Exactly one request is issued per
// call; retrying is the caller's decision.
func (c *Client) CreateVenta(ctx context.Context, token string, draft VentaDraft) (*Venta, error) {
	var out Venta
	if err := c.doJSON(ctx, http.MethodPost, "/ventas", token, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVenta fetches one sale with its detail lines
func (c *Client) GetVenta(ctx context.Context, token string, id int64) (*Venta, error) {
	var out Venta
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/ventas/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VentaPDF fetches the server-rendered boleta PDF
func (c *Client) VentaPDF(ctx context.Context, token string, id int64) ([]byte, string, error) {
	return c.doRaw(ctx, fmt.Sprintf("/ventas/%d/pdf", id), token)
}

// MisVentas fetches the sales recorded by the current user
func (c *Client) MisVentas(ctx context.Context, token string) ([]Venta, error) {
	var out []Venta
	if err := c.doJSON(ctx, http.MethodGet, "/ventas/mis-ventas", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ventas fetches all recorded sales
func (c *Client) Ventas(ctx context.Context, token string) ([]Venta, error) {
	var out []Venta
	if err := c.doJSON(ctx, http.MethodGet, "/ventas", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReporteVentas fetches the sales history spreadsheet
func (c *Client) ReporteVentas(ctx context.Context, token string) ([]byte, string, error) {
	return c.doRaw(ctx, "/ventas/reporte", token)
}
