package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hubdispo/hubdispo/internal/account"
	"github.com/hubdispo/hubdispo/internal/synth"
	"go.uber.org/zap"
)

// HealthChecker is anything the health endpoint should ping, usually *database.DB
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Server struct {
	router   *gin.Engine
	http     *http.Server
	dataset  *synth.Dataset
	accounts *account.Service
	db       HealthChecker
	logger   *zap.Logger
}

// Option customizes a Server
type Option func(*Server)

// WithHealthCheck makes /api/health report the state of a dependency
func WithHealthCheck(hc HealthChecker) Option {
	return func(s *Server) { s.db = hc }
}

// NewServer creates a new server instance serving ds
func NewServer(ds *synth.Dataset, accounts *account.Service, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	server := &Server{
		router:   router,
		dataset:  ds,
		accounts: accounts,
		logger:   logger,
	}
	server.http = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(server)
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/dashboard", s.dashboard)

		api.GET("/shipments", s.listShipments)
		api.GET("/shipments/:id", s.getShipment)
		api.GET("/consolidations", s.listConsolidations)
		api.GET("/consolidations/:id", s.getConsolidation)
		api.GET("/alerts", s.listAlerts)

		auth := api.Group("/auth")
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.POST("/logout", s.logout)
		auth.GET("/me", s.me)
	}
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	s.logger.Info("api listening", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Debug("request", fields...)
	}
}
