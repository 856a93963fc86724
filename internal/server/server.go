// Package server provides the HTTP API for the resume parsing backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/resumify/backend/internal/config"
	"github.com/resumify/backend/internal/pipeline"
	"github.com/resumify/backend/internal/server/middleware"
	"github.com/resumify/backend/internal/server/ratelimit"
	"github.com/resumify/backend/internal/server/usage"
)

// apiVersion is reported by the health endpoint.
const apiVersion = "v1"

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	cfg         *config.Config
	logger      *zap.Logger
	pipeline    *pipeline.Pipeline
	rateLimiter *ratelimit.Limiter
	usage       *usage.Store
	startedAt   time.Time
}

// New creates a new server instance.
func New(cfg *config.Config, pipe *pipeline.Pipeline, logger *zap.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		logger:    logger,
		pipeline:  pipe,
		usage:     usage.NewStore(),
		startedAt: time.Now(),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	apiKey := cfg.Auth.APIKey

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /parse", middleware.RequireAPIKey(apiKey, s.handleParse))
	mux.HandleFunc("GET /usage", middleware.RequireAPIKey(apiKey, s.handleUsage))
	mux.HandleFunc("GET /usage/public", s.handlePublicUsage)
	mux.HandleFunc("POST /admin/usage/reset", middleware.RequireAPIKey(apiKey, s.handleUsageReset))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withRequestID(s.withCORS(middleware.WithCaller(mux))))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // parsing large uploads can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the full middleware chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.logger.Info("server stopped")
	return nil
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier used for rate limiting.
// Proxy headers are consulted first so deployments behind a load balancer
// throttle end clients rather than the proxy.
func (s *Server) extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return ip
}
