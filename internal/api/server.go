// Package api exposes the archive parser over HTTP: synchronous parses for
// single uploads and an async job queue for batches.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/paulgb/sec-data-parser/internal/config"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	jobs   *JobStore
	queue  chan *Job
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. Call Start before
// serving so the batch workers are running.
func NewServer(log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.Workers*4),
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

// Start launches the batch parse workers and the job cleanup sweeper. They
// stop when the context is canceled.
func (s *Server) Start(ctx context.Context) {
	for w := 0; w < s.cfg.Workers; w++ {
		go s.worker(ctx)
	}
	s.jobs.StartCleanup(ctx, s.cfg.JobTTL/4, s.log)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/filings", s.handleParse)
		r.Post("/api/filings/batch", s.handleBatch)
		r.Get("/api/filings/jobs/{jobID}", s.handleJobStatus)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
