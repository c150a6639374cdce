package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"interpill/gateway/pkg/config"
	"interpill/gateway/pkg/proxy/handlers"
	"interpill/gateway/pkg/proxy/middleware"
	"interpill/gateway/pkg/security/auth"
	"interpill/gateway/pkg/telemetry/metrics"
	"interpill/gateway/pkg/telemetry/tracing"
)

// Server is the gateway's HTTP server.
type Server struct {
	config       *config.Config
	services     *Services
	collector    *metrics.Collector
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	stopOnce     sync.Once
	mu           sync.RWMutex
	isRunning    bool
	addr         net.Addr
}

// NewServer creates a new gateway server. collector may be nil.
func NewServer(cfg *config.Config, services *Services, collector *metrics.Collector) *Server {
	return &Server{
		config:       cfg,
		services:     services,
		collector:    collector,
		shutdownChan: make(chan struct{}),
	}
}

// Start listens on the configured address and serves until ctx is done or
// Stop is called. It then shuts down gracefully. Callers wanting to stop on
// SIGINT/SIGTERM pass a context from cli.SignalContext.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.ListenAddress, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		_ = ln.Close()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.addr = ln.Addr()

	s.httpServer = &http.Server{
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.Server.ReadTimeout,
		ReadHeaderTimeout: s.config.Server.ReadTimeout,
		WriteTimeout:      s.config.Server.WriteTimeout,
		IdleTimeout:       s.config.Server.IdleTimeout,
		MaxHeaderBytes:    s.config.Server.MaxHeaderBytes,
	}
	httpServer := s.httpServer
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting gateway server", "address", ln.Addr().String())

		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Stop asks a running Serve to shut down.
func (s *Server) Stop() {
	s.stopOnce.Do(func() { close(s.shutdownChan) })
}

// Shutdown gracefully shuts down the server. In-flight requests get up to
// the configured shutdown timeout to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		httpServer := s.httpServer
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("error during server shutdown", "error", err)
			shutdownErr = fmt.Errorf("server shutdown error: %w", err)
		}
		if s.services != nil {
			s.services.Close()
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("gateway server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	cfg := s.config
	r := chi.NewRouter()

	r.Use(
		middleware.RequestIDMiddleware,
		tracing.HTTPMiddleware(routePattern),
		middleware.LoggingMiddleware(s.recorder(), routePattern),
		middleware.RecoveryMiddleware,
		middleware.CORSMiddleware(cfg.Server.CORS),
		middleware.TimeoutMiddleware(requestTimeout(cfg.Server.WriteTimeout)),
		middleware.BodyLimitMiddleware(cfg.Server.MaxBodyBytes),
	)

	guard := auth.NewGuard(cfg.Auth.Token)

	r.Get("/", handlers.TextHandler(handlers.IndexText))
	r.Get("/health", handlers.TextHandler(handlers.HealthText))
	r.Get("/ping", handlers.TextHandler(handlers.PingText))
	r.Method(http.MethodGet, "/ready", handlers.NewReadyHandler(guard.Configured(), s.services.Summary, s.services.Support))

	if s.collector.Enabled() {
		r.Method(http.MethodGet, cfg.Telemetry.Metrics.Path, s.collector.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(guard.Handle)

		summaryHandler := handlers.NewSummaryHandler(s.services.Summary, cfg.Server.MaxBodyBytes)
		r.Method(http.MethodGet, "/ai/summary", summaryHandler)
		r.Method(http.MethodPost, "/ai/summary", summaryHandler)
		r.Method(http.MethodPost, "/support/send", handlers.NewSupportHandler(s.services.Support, cfg.Server.MaxBodyBytes))
	})

	return r
}

// recorder keeps a nil collector from becoming a non-nil interface.
func (s *Server) recorder() middleware.RequestRecorder {
	if s.collector == nil {
		return nil
	}
	return s.collector
}

// routePattern returns the chi pattern the request matched, or "" before
// routing or when nothing matched.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

// requestTimeout leaves a second of the write deadline for writing the
// error response.
func requestTimeout(writeTimeout time.Duration) time.Duration {
	if writeTimeout > 2*time.Second {
		return writeTimeout - time.Second
	}
	return writeTimeout
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Addr returns the listening address once Serve started, or nil.
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
