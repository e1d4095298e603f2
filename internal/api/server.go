// Package api exposes the extractors over HTTP: one endpoint per tool plus
// the audit composite, accepting raw or multipart DOCX uploads.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lawdesk/lawdocx/internal/config"
	"github.com/lawdesk/lawdocx/internal/history"
)

// Server is the lawdocx HTTP API server.
type Server struct {
	router  chi.Router
	log     *slog.Logger
	cfg     config.Config
	history *history.Store
}

// NewServer creates and configures the HTTP server. The history store may be
// nil, disabling the run log.
func NewServer(log *slog.Logger, cfg config.Config, hist *history.Store) *Server {
	s := &Server{
		log:     log,
		cfg:     cfg,
		history: hist,
	}
	s.setupRoutes()
	return s
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
	r.Get("/healthz", s.handleHealth)

	// Extraction endpoints, authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Get("/v1/tools", s.handleListTools)
		r.Post("/v1/tools/{tool}", s.handleTool)
		r.Post("/v1/audit", s.handleAudit)
		r.Get("/v1/history", s.handleHistory)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
