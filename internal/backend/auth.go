// internal/backend/auth.go
package backend

import (
	"context"
	"net/http"
)

// Login exchanges credentials for an access token and user profile
func (c *Client) Login(ctx context.Context, correo, contrasena string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Correo: correo, Contrasena: contrasena}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
