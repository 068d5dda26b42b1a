// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/interfaces/http/middleware"
	"github.com/your-org/pos-terminal/internal/session"
)

// AuthHandler handles terminal login and logout
type AuthHandler struct {
	backend  *backend.Client
	sessions session.Store
	config   *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(client *backend.Client, sessions session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		backend:  client,
		sessions: sessions,
		config:   cfg,
	}
}

// LoginRequest is the terminal login form
type LoginRequest struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contrasena" binding:"required"`
}

// Login handles POST /session
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.backend.Login(c.Request.Context(), req.Correo, req.Contrasena)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo contactar al servidor"})
		return
	}

	s := session.NewSession(resp.AccessToken, resp.Nombre, resp.Correo, session.ParseRole(resp.Rol))
	if err := h.sessions.Set(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	maxAge := int(session.TokenTTL(s.Token, h.config.Session.TTL).Seconds())
	c.SetCookie(h.config.Session.CookieName, s.ID, maxAge, "/", "", h.config.IsProduction(), true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Sesión iniciada",
		"data": gin.H{
			"nombre":         s.Nombre,
			"correo":         s.Correo,
			"rol":            s.Rol,
			"capacidades":    s.Rol.Capabilities(),
			"redirect_route": s.Rol.HomeRoute(),
		},
	})
}

// Logout handles DELETE /session
func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if ok {
		if err := h.sessions.Clear(c.Request.Context(), s.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}
	}

	c.SetCookie(h.config.Session.CookieName, "", -1, "/", "", h.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{
		"message":        "Sesión cerrada",
		"redirect_route": "/login",
	})
}

// Profile handles GET /session
func (h *AuthHandler) Profile(c *gin.Context) {
	s, _ := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"nombre":      s.Nombre,
			"correo":      s.Correo,
			"rol":         s.Rol,
			"capacidades": s.Rol.Capabilities(),
		},
	})
}
