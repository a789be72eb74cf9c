package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"analyse-relay/internal/config"
	"analyse-relay/internal/logging"
	"analyse-relay/internal/server"
)

// main is the entry point for the relay when it runs as a standalone service.
func main() {
	// A .env file is optional; the hosting platform normally provides the environment.
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	if envErr != nil {
		logger.Debug().Err(envErr).Msg("no .env file loaded")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           server.NewRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("model", cfg.Model).
			Int("max_tokens", cfg.MaxTokens).
			Msg("RelayService starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("could not start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
}
