package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/handler"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/repository"
	"github.com/mergington/activities/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the in-memory activity store with the school's
	// extracurricular catalog. State lives for the process lifetime only.
	seed := repository.Seed()
	repo := repository.NewActivityRepository(seed)

	slog.Info("seeded activity store", slog.Int("activities", len(seed)))

	// Initialize rate limiter
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:   cfg.RateLimit.Rate,
			Window: cfg.RateLimit.Window,
			Burst:  cfg.RateLimit.Burst,
		})
		defer rateLimiter.Stop()
	}

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize roster hub for real-time updates
	rosterHub := service.NewRosterHub()
	defer rosterHub.Close()

	// Initialize services
	activityService := service.NewActivityService(service.ActivityServiceConfig{
		Repo: repo,
		Hub:  rosterHub,
	})

	// Initialize handlers
	activityHandler := handler.NewActivityHandler(activityService)
	eventsHandler := handler.NewEventsHandler(rosterHub)
	healthHandler := handler.NewHealthHandler(activityService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check and metrics endpoints
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Activity endpoints
	mux.HandleFunc("GET /activities", activityHandler.List)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityHandler.Signup)
	mux.HandleFunc("DELETE /activities/{activityName}/unregister", activityHandler.Unregister)

	// SSE roster events endpoint
	mux.HandleFunc("GET /activities/stream", eventsHandler.Stream)

	// Front-end: redirect the root to the static page
	mux.HandleFunc("GET /{$}", handler.RootRedirect)
	mux.Handle("GET /static/", handler.StaticFiles(cfg.Static.Dir))

	// Apply global middleware
	middlewares := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	}
	if rateLimiter != nil {
		middlewares = append(middlewares, middleware.RateLimit(rateLimiter))
	}
	middlewares = append(middlewares, middleware.Idempotency(idempotencyStore), middleware.Compress)

	wrapped := middleware.Chain(mux, middlewares...)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
