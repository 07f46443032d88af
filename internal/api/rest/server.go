package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/metrics"
	"github.com/fortuna/courtside/internal/store"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server over the loaded dataset.
func NewServer(port string, data *store.Dataset, rec *metrics.Recorder, log *zap.Logger, season int) *Server {
	handler := NewHandler(data, log, season)

	router := NewRouter(handler, rec, log)

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// NewRouter wires all routes and middleware. Split out from NewServer so
// tests can exercise the full routing stack without a listener.
func NewRouter(handler *Handler, rec *metrics.Recorder, log *zap.Logger) *mux.Router {
	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))
	router.Use(CORSMiddleware)
	router.Use(MetricsMiddleware(rec))

	// UI, health and metrics
	router.HandleFunc("/", handler.Index).Methods("GET")
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", rec.Handler()).Methods("GET")

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/conferences", handler.GetConferences).Methods("GET")
	api.HandleFunc("/games/{teamID}", handler.GetGames).Methods("GET")
	api.HandleFunc("/players/{gameID}/{teamID}", handler.GetPlayers).Methods("GET")
	api.HandleFunc("/search-player/{playerName}", handler.SearchPlayer).Methods("GET")
	api.HandleFunc("/player-games/{teamID}/{playerName}", handler.GetPlayerGames).Methods("GET")
	api.HandleFunc("/player-season-chart/{teamID}/{playerName}", handler.GetPlayerSeasonChart).Methods("GET")
	api.HandleFunc("/shot-chart/{gameID}/{teamID}/{playerName}", handler.GetShotChart).Methods("GET")

	return router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
