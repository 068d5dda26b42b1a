// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/session"
)

const sessionContextKey = "terminal_session"

// SessionGuard resolves the terminal session from the session cookie.
// A missing or expired session is the gateway's "redirect to login":
// 401 with login_required, which the terminal client turns into the
// login screen.
func SessionGuard(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":          "login_required",
				"redirect_route": "/login",
			})
			c.Abort()
			return
		}

		s, err := store.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":          "login_required",
				"redirect_route": "/login",
			})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, s)
		c.Next()
	}
}

// RequireAdmin restricts a route group to the admin role. Sellers get
// 403 plus their own landing route, mirroring the terminal's redirect
// away from admin screens.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":          "login_required",
				"redirect_route": "/login",
			})
			c.Abort()
			return
		}

		if !s.Rol.Capabilities().ViewDashboard {
			c.JSON(http.StatusForbidden, gin.H{
				"error":          "acceso restringido",
				"redirect_route": s.Rol.HomeRoute(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSession returns the session resolved by SessionGuard
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
