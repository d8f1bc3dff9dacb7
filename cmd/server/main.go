package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"

	"rectsim/internal/api"
	"rectsim/internal/config"
	"rectsim/internal/logging"
	"rectsim/internal/observability"
)

func main() {
	logger := logging.Init()
	cfg := config.Load()
	metrics := observability.NewMetrics()

	router := api.NewRouter(logger, metrics, cfg)
	logged := handlers.LoggingHandler(os.Stdout, router)

	logger.Info("rectifier simulation API listening", "addr", cfg.HTTPBind)
	if err := http.ListenAndServe(cfg.HTTPBind, logged); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
