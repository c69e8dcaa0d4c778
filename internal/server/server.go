// Package server exposes the banking backend and the safety pipeline
// over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/AlekhyaVemuri/FinClarify/internal/pipeline"
	"github.com/AlekhyaVemuri/FinClarify/internal/service"
)

func init() {
	// The API emits amounts as JSON numbers, matching the contract the
	// front end consumes.
	decimal.MarshalJSONWithoutQuotes = true
}

// Server is the HTTP surface: login, account snapshots, risk analysis,
// transaction execution, the admin ledger and the pipeline review
// endpoint.
type Server struct {
	addr   string
	router *gin.Engine
}

// Config describes the server's dependencies.
type Config struct {
	Addr     string
	Storage  service.Storage
	Pipeline *pipeline.Pipeline
}

// NewServer builds the HTTP server and registers all routes.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Storage == nil {
		return nil, errors.New("server requires storage")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	h := &handlers{storage: cfg.Storage, pipeline: cfg.Pipeline}

	router.GET("/healthz", h.handleHealth)
	router.POST("/login", h.handleLogin)
	router.GET("/account/:id", h.handleAccount)
	router.POST("/analyze_risk", h.handleAnalyzeRisk)
	router.POST("/execute", h.handleExecute)
	router.GET("/admin/logs", h.handleAdminLogs)
	router.POST("/review", h.handleReview)

	return &Server{addr: cfg.Addr, router: router}, nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until ctx is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	slog.Info("HTTP server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

// requestLogger records each request for traceability.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		c.Next()
		slog.Debug("http request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"duration", time.Since(start))
	}
}
