// Package server exposes grid analysis over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness and build version
//	POST /v1/analyze              body is grid text, returns the analysis result
//	POST /v1/score?row=R&col=C    body is grid text, returns one tree's score
//
// Errors are JSON objects carrying the error code, a message and the request
// ID echoed in the X-Request-ID header.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/treetop/pkg/pipeline"
)

const (
	// MaxBodyBytes caps the size of an uploaded grid.
	MaxBodyBytes = 1 << 20

	// shutdownTimeout bounds how long in-flight requests may run after the
	// server is asked to stop.
	shutdownTimeout = 5 * time.Second
)

// Server serves the analysis API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	ttl    time.Duration
}

// New creates a server that analyzes grids with runner. Results are cached
// for ttl; zero means the pipeline default.
func New(runner *pipeline.Runner, logger *log.Logger, ttl time.Duration) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, ttl: ttl}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/score", s.handleScore)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then drains
// in-flight requests. A nil error means a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("Listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
