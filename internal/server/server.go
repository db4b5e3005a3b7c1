// Package server assembles the HTTP server: middleware, API routes, probes,
// metrics and the static site.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/showroom/internal/config"
	"github.com/mmynk/showroom/internal/handler"
	"github.com/mmynk/showroom/internal/middleware"
	"github.com/mmynk/showroom/internal/storage"
)

const readyTimeout = 2 * time.Second

// Server serves the API and the static site over HTTP/1.1 and h2c.
type Server struct {
	cfg        *config.Config
	store      storage.Store
	httpServer *http.Server
}

// New builds a server around store. The store is wrapped with metrics but
// is otherwise used as is; the caller keeps ownership and closes it.
func New(cfg *config.Config, store storage.Store) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	instrumented, err := storage.Instrument(store, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register storage metrics: %w", err)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Metrics(reg),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	handler.New(instrumented).Register(engine)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/readyz", readiness(instrumented))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	if cfg.StaticPath != "" {
		static, err := staticHandler(cfg.StaticPath)
		if err != nil {
			return nil, err
		}
		engine.NoRoute(static)
		slog.Info("Serving static files", "path", cfg.StaticPath)
	} else {
		engine.NoRoute(notFound)
	}

	// Wrap with h2c for HTTP/2 without TLS
	h := h2c.NewHandler(engine, &http2.Server{})

	return &Server{
		cfg:   cfg,
		store: instrumented,
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting",
			"address", s.httpServer.Addr,
			"url", fmt.Sprintf("http://localhost%s", s.httpServer.Addr),
			"backend", s.store.Name(),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("HTTP server shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func readiness(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := store.(storage.Pinger)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": store.Name()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			slog.Warn("Readiness check failed", "backend", store.Name(), "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "backend": store.Name()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": store.Name()})
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, handler.Response{Success: false, Message: "Not found"})
}
