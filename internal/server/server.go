// Package server exposes the store builder over HTTP: the chat
// assistant, the template catalog, store persistence, and the live
// builder WebSocket.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matjar-app/matjar/internal/catalog"
	"github.com/matjar-app/matjar/internal/db"
	"github.com/matjar-app/matjar/internal/mutate"
	"github.com/matjar-app/matjar/internal/store"
)

// Config holds server configuration.
type Config struct {
	Addr     string
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server wires the builder's services behind one router.
type Server struct {
	cfg        Config
	db         *db.DB
	svc        *store.Service
	gen        *store.Generator
	engine     *mutate.Engine
	searcher   *catalog.Searcher
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over an open database. engine drives the chat
// endpoints; searcher may be nil to disable template search.
func New(cfg Config, database *db.DB, engine *mutate.Engine, searcher *catalog.Searcher) *Server {
	s := &Server{
		cfg:      cfg,
		db:       database,
		svc:      store.NewService(database),
		gen:      nil,
		engine:   engine,
		searcher: searcher,
	}
	s.gen = store.NewGenerator(s.svc)
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	store.RegisterRoutes(r, s.svc, s.gen)
	s.registerRoutes(r)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Service returns the store service.
func (s *Server) Service() *store.Service { return s.svc }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("matjar server listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server, waiting for in-flight
// generation jobs.
func (s *Server) Shutdown(ctx context.Context) error {
	s.gen.Wait()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
