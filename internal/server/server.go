// Package server exposes the counting pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz     liveness and build version
//	POST /v1/count    total number of walks
//	POST /v1/select   walk at a 1-based rank
//	POST /v1/rank     rank of a walk
//
// Request bodies carry the layout either as the JSON layout document
// ("layout") or as puzzle text ("text"). Counts and ranks are decimal
// strings in both directions. Layouts over the server's node or move limits
// are rejected with 422 before any work is done.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stairpath/pkg/pipeline"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	limits pipeline.Limits
	router chi.Router
}

// New creates a server backed by runner. Requests are bounded by
// pipeline.DefaultLimits until SetLimits is called.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger, limits: pipeline.DefaultLimits()}
	s.router = s.routes()
	return s
}

// SetLimits replaces the per-request layout limits. Call it before serving.
func (s *Server) SetLimits(l pipeline.Limits) { s.limits = l }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/count", s.handleCount)
		r.Post("/select", s.handleSelect)
		r.Post("/rank", s.handleRank)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
