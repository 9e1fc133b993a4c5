// Package web serves the single-page catalog view. The selection lives in
// the request URL, so the server keeps no per-user state.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jakoblorz/go-depfilter/internal/catalog"
	"github.com/jakoblorz/go-depfilter/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// Prefix is the class prefix of the tag navigation.
	Prefix string
	Title  string
}

// Server hosts the catalog view.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *logging.Logger
}

// NewServer builds a server over an already loaded catalog.
func NewServer(cfg Config, c *catalog.Catalog, logger *logging.Logger) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if logger == nil {
		logger = logging.NewNoop()
	}

	handler := NewHandler(c, HandlerOptions{Prefix: cfg.Prefix, Title: cfg.Title}, logger)
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}, nil
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.httpAddr
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	s.logger.Info("web listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve http: %w", err)
	}
}
