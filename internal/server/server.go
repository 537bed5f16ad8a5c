// Package server provides the read-only HTTP API over a loaded data source
// catalog. The catalog is immutable, so every handler is a pure read; the
// server holds no state beyond the catalog reference itself.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/kbase/datacatalog/pkg/catalog"
	"github.com/kbase/datacatalog/pkg/logging"
)

// Config holds server configuration.
type Config struct {
	Host string
	Port int

	// PathPrefix is prepended to the API routes, e.g. "/api/v1".
	PathPrefix string

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         8080,
		PathPrefix:   "/api/v1",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Server serves a loaded catalog over HTTP.
type Server struct {
	config     Config
	catalog    *catalog.Catalog
	logger     *zerolog.Logger
	httpServer *http.Server
}

// New creates a server for the given catalog.
func New(cat *catalog.Catalog, cfg Config, logger *zerolog.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		config:  cfg,
		catalog: cat,
		logger:  logger,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info().
		Str("addr", s.httpServer.Addr).
		Str("prefix", s.config.PathPrefix).
		Msg("Serving data source catalog")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
