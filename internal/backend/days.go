// internal/backend/days.go
package backend

import (
	"context"
	"fmt"
	"net/http"
)

// Consolidado fetches the aggregated totals of the current open day
func (c *Client) Consolidado(ctx context.Context, token string) (*ConsolidadoDia, error) {
	var out ConsolidadoDia
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/consolidado", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CerrarDia closes the current business day
func (c *Client) CerrarDia(ctx context.Context, token, observaciones string) error {
	body := map[string]string{"observaciones": observaciones}
	return c.doJSON(ctx, http.MethodPost, "/dias/cerrar", token, body, nil)
}

// ListDias fetches the closed-day history
func (c *Client) ListDias(ctx context.Context, token string) ([]Dia, error) {
	var out []Dia
	if err := c.doJSON(ctx, http.MethodGet, "/dias", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDia fetches one closed day's detail
func (c *Client) GetDia(ctx context.Context, token string, id int64) (*DetalleDia, error) {
	var out DetalleDia
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/dias/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReporteDia fetches one closed day's report. Formato is "pdf" or "excel".
func (c *Client) ReporteDia(ctx context.Context, token string, id int64, formato string) ([]byte, string, error) {
	if formato != "pdf" && formato != "excel" {
		return nil, "", fmt.Errorf("unsupported report format %q", formato)
	}
	return c.doRaw(ctx, fmt.Sprintf("/dias/%d/%s", id, formato), token)
}
