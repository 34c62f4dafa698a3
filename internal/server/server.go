// Package server wires configuration, logging, metrics, middleware, and
// handlers into a runnable HTTP service.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	zofhttp "github.com/zof-project/zof/internal/api/http"
	"github.com/zof-project/zof/internal/api/middleware"
	"github.com/zof-project/zof/internal/infrastructure/config"
	"github.com/zof-project/zof/internal/infrastructure/logging"
	"github.com/zof-project/zof/internal/infrastructure/monitoring"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *logging.Logger
	config *config.Config
}

// New builds a server from configuration.
func New(cfg *config.Config) *Server {
	logger := logging.NewOrNop(cfg.Logging.Level, cfg.Logging.Development)
	metrics := monitoring.New()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS())
	if cfg.RateLimit.Enabled {
		logger.Info("rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := zofhttp.NewHandlers(logger, metrics, cfg.Solver)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/methods", handlers.ListMethods)
	router.POST("/solve", handlers.Solve)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router: router,
		logger: logger,
		config: cfg,
	}
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("starting ZOF solver service", zap.String("addr", addr))

	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	defer func() { _ = s.logger.Sync() }()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
