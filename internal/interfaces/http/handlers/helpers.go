// internal/interfaces/http/handlers/helpers.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/interfaces/http/middleware"
	"github.com/your-org/pos-terminal/internal/session"
)

// apiFail translates a backend client error into a response, passing
// the server's own message through verbatim when it sent one.
func apiFail(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo contactar al servidor"})
}

// loadCart restores the session's cart from its store snapshot
func loadCart(c *gin.Context, store session.Store, s *session.Session) (*cart.Cart, bool) {
	snapshot, err := store.GetCart(c.Request.Context(), s.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	ct, err := cart.FromSnapshot(snapshot)
	if err != nil {
		// A corrupt snapshot is unrecoverable; start the seller fresh
		ct = cart.New()
	}
	return ct, true
}

// saveCart writes the cart back to the session store
func saveCart(c *gin.Context, store session.Store, s *session.Session, ct *cart.Cart) bool {
	snapshot, err := ct.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return false
	}
	if err := store.SetCart(c.Request.Context(), s.ID, snapshot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return false
	}
	return true
}

// mustSession pulls the guarded session out of the context
func mustSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":          "login_required",
			"redirect_route": "/login",
		})
		return nil, false
	}
	return s, true
}
