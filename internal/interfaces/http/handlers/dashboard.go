// internal/interfaces/http/handlers/dashboard.go
package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
)

// DashboardHandler serves the admin dashboard widgets
type DashboardHandler struct {
	backend *backend.Client
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(client *backend.Client) *DashboardHandler {
	return &DashboardHandler{backend: client}
}

// Get handles GET /dashboard. The two widgets are independent: both
// requests go out concurrently and each resolves on its own, so a
// failing consolidado still leaves the stock alerts rendered.
func (h *DashboardHandler) Get(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var (
		wg          sync.WaitGroup
		consolidado *backend.ConsolidadoDia
		consErr     error
		alertas     []backend.AlertaStock
		alertasErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		consolidado, consErr = h.backend.Consolidado(ctx, s.Token)
	}()
	go func() {
		defer wg.Done()
		alertas, alertasErr = h.backend.AlertasStock(ctx, s.Token)
	}()
	wg.Wait()

	resp := gin.H{}
	if consErr != nil {
		resp["consolidado_error"] = consErr.Error()
	} else {
		resp["consolidado"] = consolidado
	}
	if alertasErr != nil {
		resp["alertas_error"] = alertasErr.Error()
	} else {
		resp["alertas"] = alertas
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
