// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/pos-terminal/internal/backend"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/checkout"
	"github.com/your-org/pos-terminal/internal/interfaces/http/middleware"
	"github.com/your-org/pos-terminal/internal/interfaces/http/routes"
	"github.com/your-org/pos-terminal/internal/pkg/receipt"
	"github.com/your-org/pos-terminal/internal/session"
)

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	gin         *gin.Engine
	httpServer  *http.Server
	redisClient *redis.Client
	log         *logrus.Logger
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger) *Server {
	return &Server{
		config:      cfg,
		redisClient: redisClient,
		log:         logger,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on environment
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	s.gin = gin.New()

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	log.Printf("🚀 HTTP Server starting on port %s", s.config.Server.Port)
	log.Printf("🌐 Terminal API: http://localhost:%s/api/v1", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	log.Println("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	log.Println("✅ HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.config))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())
}

// setupRoutes wires the terminal route tree
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)

	sessions := session.NewRedisStore(s.redisClient, s.config.Session.TTL)
	backendClient := backend.NewClient(s.config.Backend.BaseURL, s.config.Backend.Timeout, s.log)
	checkoutService := checkout.NewService(backendClient, s.config.Checkout.RedirectDelay)
	receiptService := receipt.NewService(s.config)

	api := s.gin.Group("/api/v1")
	routes.Setup(api, routes.Deps{
		Config:   s.config,
		Backend:  backendClient,
		Sessions: sessions,
		Checkout: checkoutService,
		Receipts: receiptService,
	})
}

// healthCheck reports the gateway's own liveness plus Redis health
func (s *Server) healthCheck(c *gin.Context) {
	redisStatus := "ok"
	if err := s.redisClient.Ping(c.Request.Context()).Err(); err != nil {
		redisStatus = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"app":     s.config.App.Name,
		"version": s.config.App.Version,
		"redis":   redisStatus,
	})
}
