// Package server is the HTTP presentation layer. It renders the seed form
// and the ranked recommendation list; all recommendation logic lives behind
// the Recommender interface.
package server

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lepinkainen/anisuggest/internal/recommend"
)

// welcomeMessage greets the user on the initial form page.
const welcomeMessage = "Enter an anime you enjoy to get recommendations!"

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Recommender is the single entry point into the recommendation core.
type Recommender interface {
	SubmitSeedTitle(ctx context.Context, name string) recommend.Result
	WarmGenres(ctx context.Context) error
}

// Server renders the recommendation pages.
type Server struct {
	recommender Recommender
	tmpl        *template.Template
}

// New creates a Server over the given recommender.
func New(recommender Recommender) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, err
	}
	return &Server{recommender: recommender, tmpl: tmpl}, nil
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", s.handleIndex)
	r.Post("/recommend", s.handleRecommend)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// ListenAndServe runs the HTTP server until it fails or the listener closes.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Warm the genre directory so the first recommendation does not pay
	// for the genre-list fetch. Failures retry on use.
	if err := s.recommender.WarmGenres(r.Context()); err != nil {
		slog.Warn("Genre directory warm-up failed", "error", err)
	}

	s.render(w, recommend.Result{Message: welcomeMessage})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("anime_name")
	result := s.recommender.SubmitSeedTitle(r.Context(), name)
	s.render(w, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) render(w http.ResponseWriter, result recommend.Result) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, result); err != nil {
		slog.Error("Template render failed", "error", err)
	}
}

// requestLogger logs one line per request with method, path and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
