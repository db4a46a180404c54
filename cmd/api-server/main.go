package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"moviesapi/database"
	"moviesapi/internal/config"
	"moviesapi/internal/logging"
	"moviesapi/internal/microservices/http-api/cache"
	"moviesapi/internal/microservices/http-api/middleware"
	"moviesapi/internal/microservices/http-api/repository"
	"moviesapi/internal/microservices/http-api/server"
	"moviesapi/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := logging.Init(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		logger.Error("database_unavailable", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("database_close_failed", "error", err.Error())
		}
	}()

	store := openCache(cfg, logger)
	defer store.Close()

	genreRepo := repository.NewGenreRepo(db)
	movieRepo := repository.NewMovieRepo(db)

	posters := service.PosterPolicy{
		AllowedExtensions: cfg.PosterAllowedExtensions,
		MaxSize:           cfg.PosterMaxSize,
	}

	router := server.NewRouter(server.Deps{
		Logger: logger,
		Genres: service.NewGenreService(genreRepo, store, cfg.GenreDeletePolicy, logger),
		Movies: service.NewMovieService(movieRepo, genreRepo, store, posters, logger),
		HealthCheck: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
		CORSOrigins: cfg.CORSOrigins,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server",
			"addr", srv.Addr,
			"genre_delete_policy", string(cfg.GenreDeletePolicy),
			"cache_enabled", cfg.RedisURL != "",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_failed", "error", err.Error())
		return
	}
	logger.Info("server_stopped_gracefully")
}

// openCache connects to redis when configured. A missing or unreachable redis
// degrades to no caching rather than refusing to start.
func openCache(cfg *config.Config, logger *slog.Logger) cache.Store {
	if cfg.RedisURL == "" {
		return cache.Noop{}
	}
	store, err := cache.NewRedisStore(cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		logger.Warn("cache_unavailable", "error", err.Error())
		return cache.Noop{}
	}
	logger.Info("cache_connected")
	return store
}
