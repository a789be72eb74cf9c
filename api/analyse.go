// Package handler is the Vercel serverless entrypoint for /api/analyse.
package handler

import (
	"net/http"
	"sync"

	"analyse-relay/internal/config"
	"analyse-relay/internal/logging"
	"analyse-relay/internal/server"
)

var (
	once   sync.Once
	router http.Handler
)

// Handler is the entry point for the Vercel function. The router is built once per
// cold start; the API key is still read on every request.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Load()
		router = server.NewRouter(cfg, logging.New(cfg.LogLevel))
	})
	router.ServeHTTP(w, r)
}
