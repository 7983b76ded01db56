// Package server exposes a Navigator and its map store over HTTP.
//
// Routes:
//
//	POST /api/navigation           Request  → navigation.Result
//	POST /api/navigation/validate  Result   → {valid, reasons}
//	GET  /api/maps                 stored map summaries
//	GET  /api/maps/{id}            map document
//	GET  /api/maps/{id}/distance   ?path=a,b,c → distance and nodes
//	GET  /healthz
//	GET  /metrics                  when a metrics registry is configured
package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/mapnav/metrics"
	"github.com/katalvlaran/mapnav/navigation"
	"github.com/katalvlaran/mapnav/store"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Catalog is the map store as seen by the HTTP layer.
type Catalog interface {
	navigation.MapSource
	List() []store.Summary
}

// Server is the HTTP front of a Navigator.
type Server struct {
	nav     *navigation.Navigator
	catalog Catalog
	metrics *metrics.Registry
	logger  *slog.Logger
	router  *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records HTTP metrics on r and serves them on /metrics.
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Server) { s.metrics = r }
}

// New wires the routes.
func New(nav *navigation.Navigator, catalog Catalog, opts ...Option) *Server {
	s := &Server{
		nav:     nav,
		catalog: catalog,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		router:  mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.recoverMiddleware, s.observeMiddleware)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/navigation", s.handleNavigate).Methods(http.MethodPost)
	api.HandleFunc("/navigation/validate", s.handleValidate).Methods(http.MethodPost)
	api.HandleFunc("/maps", s.handleListMaps).Methods(http.MethodGet)
	api.HandleFunc("/maps/{id}", s.handleGetMap).Methods(http.MethodGet)
	api.HandleFunc("/maps/{id}/distance", s.handlePathDistance).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
