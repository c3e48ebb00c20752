package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "movie-service/docs" // swagger docs

	"movie-service/internal/cache"
	"movie-service/internal/config"
	"movie-service/internal/db"
	"movie-service/internal/handler"
	"movie-service/internal/logger"
	"movie-service/internal/repository"
	"movie-service/internal/service"
)

// @title Movie Catalog API
// @version 1.0
// @description Read-only API over the movie catalog imported from OPhim (Mongo, Redis).
// @host localhost:8080
// @BasePath /
func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.Debug)
	log := logger.With("component", "api")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// mongo + cache
	client, database, err := db.Connect(ctx, cfg)
	defer db.Disconnect(client)
	if err != nil {
		log.Error("mongo unavailable", "error", err)
		return 1
	}

	store, err := cache.New(ctx, cfg)
	if err != nil {
		log.Error("cache unavailable", "error", err)
		return 1
	}
	if c, ok := store.(*cache.Redis); ok {
		defer c.Close()
	}

	// repos
	movieRepo := repository.NewMovieRepository(database)
	genreRepo := repository.NewGenreRepository(database)
	countryRepo := repository.NewCountryRepository(database)

	// services
	movieSvc := service.NewMovieService(movieRepo, genreRepo, countryRepo, store, cfg.CacheTTL, logger.Default())
	coverageSvc := service.NewCoverageService(movieRepo, genreRepo, countryRepo)

	// handlers
	router := handler.NewRouter(
		handler.NewMovieHandler(movieSvc),
		handler.NewStatsHandler(coverageSvc),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		return 1
	}
	return 0
}
