// Package server exposes an [editor.Editor] over HTTP.
//
// The server is the page-level collaborator for browsers: it owns the editor
// behind a mutex, translates JSON requests into editor operations, and serves
// the current frame as SVG or PNG through a [pipeline.Runner] so repeated
// frames come from the frame cache.
//
// # Routes
//
//	GET    /healthz
//	GET    /plan
//	GET    /status
//	GET    /scene.svg
//	GET    /scene.png
//	POST   /tables
//	PUT    /tables/{id}
//	DELETE /tables/{id}
//	POST   /tables/{id}/exclude
//	POST   /tables/{id}/restore
//	POST   /elements
//	POST   /viewport/zoom
//	POST   /viewport/reset
//	POST   /viewport/pan
//	POST   /viewport/origin
//	POST   /pointer
//	POST   /save
//	GET    /ws
//
// The WebSocket endpoint accepts pointer messages and answers each with the
// events it produced and the repainted SVG frame.
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/matzehuels/floorplan/pkg/editor"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Server serves one editor. Handlers hold mu for the whole request so editor
// operations never interleave.
type Server struct {
	mu       sync.Mutex
	editor   *editor.Editor
	runner   *pipeline.Runner
	logger   *log.Logger
	upgrader websocket.Upgrader
	router   chi.Router
	counters *observability.Counters
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithRunner sets the runner used to render frames. Its canvas and theme are
// replaced with the editor's.
func WithRunner(r *pipeline.Runner) Option {
	return func(s *Server) { s.runner = r }
}

// WithCounters adds c's snapshot to /status. The caller installs c with
// [observability.Install].
func WithCounters(c *observability.Counters) Option {
	return func(s *Server) { s.counters = c }
}

// WithCheckOrigin overrides the WebSocket origin check.
func WithCheckOrigin(fn func(*http.Request) bool) Option {
	return func(s *Server) { s.upgrader.CheckOrigin = fn }
}

// New returns a server for ed.
func New(ed *editor.Editor, opts ...Option) *Server {
	s := &Server{
		editor: ed,
		logger: log.New(io.Discard),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	s.runner.Canvas = ed.Canvas()
	s.runner.Theme = ed.Theme()
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.health)
	r.Get("/plan", s.plan)
	r.Get("/status", s.status)
	r.Get("/scene.svg", s.scene(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/scene.png", s.scene(pipeline.FormatPNG, "image/png"))

	r.Route("/tables", func(r chi.Router) {
		r.Post("/", s.addTable)
		r.Put("/{id}", s.updateTable)
		r.Delete("/{id}", s.deleteTable)
		r.Post("/{id}/exclude", s.excludeTable)
		r.Post("/{id}/restore", s.restoreTable)
	})
	r.Post("/elements", s.addElement)

	r.Post("/viewport/zoom", s.zoom)
	r.Post("/viewport/reset", s.resetView)
	r.Post("/viewport/pan", s.pan)
	r.Post("/viewport/origin", s.setOrigin)
	r.Post("/pointer", s.pointer)
	r.Post("/save", s.save)
	r.Get("/ws", s.ws)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
