// Package server exposes the scheduling engine's operation surface over
// HTTP: session management, tick/run operations returning state snapshots,
// and static presentation assets. The server never reaches into engine
// internals; everything it returns comes from sim.Snapshot().
package server

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	sim "github.com/procsim/procsim/sim"
)

// Config carries server construction parameters.
type Config struct {
	Addr      string // listen address, e.g. ":8080"
	AssetsDir string // static asset directory; skipped when missing
	TickCap   int    // upper bound on ticks per run request
}

// session owns one engine instance. The engine itself is single-threaded,
// so each session serializes access with its own mutex.
type session struct {
	mu     sync.Mutex
	engine *sim.Scheduler
}

// Server is the procsim HTTP binding.
type Server struct {
	router    chi.Router
	config    Config
	startTime time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// New creates a Server with all routes registered.
func New(cfg Config) *Server {
	if cfg.TickCap < 1 {
		cfg.TickCap = 10000
	}
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		startTime: time.Now(),
		sessions:  make(map[string]*session),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	// API routes (JSON)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/algorithms", s.handleListAlgorithms)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Post("/tick", s.handleTick)
				r.Post("/run", s.handleRun)
				r.Delete("/", s.handleDeleteSession)
			})
		})
	})

	// Static presentation assets. The engine has no interaction with these.
	if s.config.AssetsDir != "" {
		if info, err := os.Stat(s.config.AssetsDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(s.config.AssetsDir)))
		} else {
			logrus.Warnf("assets directory %q not found, serving API only", s.config.AssetsDir)
		}
	}
}

// Handler returns the root handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on the configured address.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// lookup returns the session for an id, or nil.
func (s *Server) lookup(id string) *session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}
