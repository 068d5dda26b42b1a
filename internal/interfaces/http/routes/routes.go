// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/checkout"
	"github.com/your-org/pos-terminal/internal/interfaces/http/handlers"
	"github.com/your-org/pos-terminal/internal/interfaces/http/middleware"
	"github.com/your-org/pos-terminal/internal/pkg/receipt"
	"github.com/your-org/pos-terminal/internal/session"
)

// Deps carries everything the route tree wires together
type Deps struct {
	Config   *config.Config
	Backend  *backend.Client
	Sessions session.Store
	Checkout *checkout.Service
	Receipts *receipt.Service
}

// Setup registers all terminal routes on the router group
func Setup(rg *gin.RouterGroup, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.Backend, deps.Sessions, deps.Config)
	productosHandler := handlers.NewProductosHandler(deps.Backend)
	cartHandler := handlers.NewCartHandler(deps.Sessions)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Sessions, deps.Checkout)
	ventasHandler := handlers.NewVentasHandler(deps.Backend, deps.Receipts)
	dashboardHandler := handlers.NewDashboardHandler(deps.Backend)
	diasHandler := handlers.NewDiasHandler(deps.Backend)

	guard := middleware.SessionGuard(deps.Sessions, deps.Config.Session.CookieName)

	// Login is the only route a terminal reaches without a session
	rg.POST("/session", authHandler.Login)

	authed := rg.Group("")
	authed.Use(guard)
	{
		authed.GET("/session", authHandler.Profile)
		authed.DELETE("/session", authHandler.Logout)

		authed.GET("/productos", productosHandler.List)

		cart := authed.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.Clear)
		}

		authed.POST("/checkout", checkoutHandler.Confirm)

		ventas := authed.Group("/ventas")
		{
			ventas.GET("/mis-ventas", ventasHandler.ListMine)
			ventas.GET("/:id", ventasHandler.Get)
			ventas.GET("/:id/pdf", ventasHandler.PDF)
			ventas.GET("/:id/imprimir", ventasHandler.Print)
		}

		// Admin-only screens
		admin := authed.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/dashboard", dashboardHandler.Get)
			admin.GET("/productos/alertas-stock", productosHandler.AlertasStock)
			admin.POST("/productos", productosHandler.Create)
			admin.PATCH("/productos/:id", productosHandler.Update)
			admin.DELETE("/productos/:id", productosHandler.Delete)

			admin.GET("/ventas", ventasHandler.ListAll)
			admin.GET("/ventas/reporte", ventasHandler.Report)

			admin.POST("/dias/cerrar", diasHandler.Cerrar)
			admin.GET("/dias", diasHandler.List)
			admin.GET("/dias/:id", diasHandler.Get)
			admin.GET("/dias/:id/reporte", diasHandler.Report)
		}
	}
}
