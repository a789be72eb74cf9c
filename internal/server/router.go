package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"analyse-relay/internal/config"
	"analyse-relay/internal/logging"
	"analyse-relay/internal/relay"
	"analyse-relay/internal/reqctx"
)

// NewRouter wires the relay and its supporting endpoints. It is shared by the
// service binary and the serverless entrypoint.
func NewRouter(cfg *config.Config, logger zerolog.Logger) http.Handler {
	cohereClient := relay.NewHTTPCohereClient(cfg.CohereURL, cfg.UpstreamTimeout)

	relayService := relay.NewService(cohereClient, cfg.Credentials(), relay.Options{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})

	relayHandler := relay.NewHandler(relayService, logger)

	r := chi.NewRouter()
	r.Use(reqctx.Middleware)
	r.Use(logging.AccessLog(logger))
	r.Use(middleware.Recoverer) // Prevent panics from crashing the server.

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("RelayService OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	relayHandler.RegisterRoutes(r)

	return r
}
