package api

import (
	"log/slog"

	"github.com/gorilla/mux"

	"rectsim/internal/config"
	"rectsim/internal/observability"
)

// NewRouter wires the simulation API routes.
func NewRouter(logger *slog.Logger, metrics *observability.Metrics, cfg *config.Config) *mux.Router {
	s := &server{log: logger, metrics: metrics, cfg: cfg}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/topologies", s.listTopologies).Methods("GET")
	r.HandleFunc("/simulate", s.simulate).Methods("POST")
	r.HandleFunc("/simulate/chart", s.simulateChart).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	return r
}
