// Package server serves the timeline dashboard over HTTP: an HTML page
// with section filter links and a small read-only JSON API.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cokomi/timeline/internal/logging"
	"github.com/cokomi/timeline/internal/view"
	"github.com/cokomi/timeline/pkg/timeline"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/app.css
var appCSS []byte

// Options configures a Server.
type Options struct {
	Title           string
	Theme           *view.Theme
	Logger          *slog.Logger
	DefaultSection  timeline.SectionName
	ReadTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Server renders one dashboard. The dataset is immutable and the selected
// section arrives with each request, so handlers share no mutable state.
type Server struct {
	dash *timeline.Dashboard
	opts Options
	tmpl *template.Template
}

// New creates a server over dash.
func New(dash *timeline.Dashboard, opts Options) (*Server, error) {
	if dash == nil {
		return nil, errors.New("server: missing dashboard")
	}
	if opts.Title == "" {
		opts.Title = "Project Timeline"
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.DefaultSection == "" {
		opts.DefaultSection = timeline.AllSections
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	tmpl, err := template.New("index.html").Funcs(templateFuncs(opts.Theme)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("server: parse templates: %w", err)
	}

	return &Server{dash: dash, opts: opts, tmpl: tmpl}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))
	r.Use(withSecurityHeaders)

	r.Get("/", s.handleIndex)
	r.Get("/static/app.css", s.handleCSS)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.handleSections)
		r.Get("/steps", s.handleSteps)
		r.Get("/groups", s.handleGroups)
		r.Get("/progress", s.handleProgress)
		r.Get("/snapshot", s.handleSnapshot)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("dashboard listening", "addr", ln.Addr().String(), "steps", s.dash.Len())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.opts.Logger.Info("dashboard shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// selected reads the section filter from the query string.
func (s *Server) selected(r *http.Request) timeline.SectionName {
	if v := r.URL.Query().Get("section"); v != "" {
		return timeline.SectionName(v)
	}
	return s.opts.DefaultSection
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.opts.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; base-uri 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
