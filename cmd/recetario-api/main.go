// Package main provides the recipe question API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/recetario-ai/recetario/internal/config"
	"github.com/recetario-ai/recetario/internal/extract"
	"github.com/recetario-ai/recetario/internal/observability"
	"github.com/recetario-ai/recetario/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "recetario",
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("source", cfg.Source.Path).
		Str("generation_backend", cfg.Generation.Backend).
		Msg("Starting recipe question API")

	embedder, err := service.NewEmbedder(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create embedding backend")
	}

	generator, err := service.NewGenerator(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create generation backend")
	}

	// The corpus builds once here; the service accepts no questions until
	// the build completes, and a missing source document is fatal.
	svc, err := service.New(context.Background(), cfg, extract.NewExtractor(logger), embedder, generator, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build recipe corpus")
	}

	logger.Info().Int("recipes", svc.CorpusSize()).Msg("Corpus ready")

	router := NewRouter(logger, svc, cfg.Server.WriteTimeout)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}
