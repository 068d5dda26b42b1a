// internal/session/session.go
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role is the user's role as the POS API reports it
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleVendedor Role = "VENDEDOR"
)

// ParseRole maps the API's role string onto a known role. Anything
// unrecognized degrades to seller, the least-privileged role.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleVendedor
}

// Capabilities is what a role may do, decided once at the guard
// boundary instead of re-checking the role string per screen.
type Capabilities struct {
	ViewDashboard  bool `json:"view_dashboard"`
	CloseDay       bool `json:"close_day"`
	ManageProducts bool `json:"manage_products"`
	ViewAllSales   bool `json:"view_all_sales"`
}

// Capabilities returns the capability set for a role
func (r Role) Capabilities() Capabilities {
	if r == RoleAdmin {
		return Capabilities{
			ViewDashboard:  true,
			CloseDay:       true,
			ManageProducts: true,
			ViewAllSales:   true,
		}
	}
	return Capabilities{}
}

// HomeRoute is where a terminal client lands after login, and where a
// seller is sent when hitting an admin-only screen.
func (r Role) HomeRoute() string {
	if r == RoleAdmin {
		return "/dashboard"
	}
	return "/venta"
}

// Session is the persisted terminal session: the backend token plus
// the user profile the login response carried.
type Session struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    Role   `json:"rol"`
}

// NewSession builds a session with a fresh id
func NewSession(token, nombre, correo string, rol Role) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Token:  token,
		Nombre: nombre,
		Correo: correo,
		Rol:    rol,
	}
}

// TokenTTL derives the session lifetime from the backend token's exp
// claim. The token is parsed without verification; the gateway does
// not hold the API's signing secret and token validity stays the
// API's call. Falls back when the claim is absent or already past.
func TokenTTL(token string, fallback time.Duration) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return fallback
	}
	return ttl
}
