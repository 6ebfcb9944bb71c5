// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	alertRouter "github.com/Mouadistaa/project-pulse-ai/internal/alert/router"
	"github.com/Mouadistaa/project-pulse-ai/internal/bootstrap"
	forecastRouter "github.com/Mouadistaa/project-pulse-ai/internal/forecast/router"
	"github.com/Mouadistaa/project-pulse-ai/internal/health"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion"
	ingestionRouter "github.com/Mouadistaa/project-pulse-ai/internal/ingestion/router"
	metricsRouter "github.com/Mouadistaa/project-pulse-ai/internal/metrics/router"
	"github.com/Mouadistaa/project-pulse-ai/internal/middleware"
	riskRouter "github.com/Mouadistaa/project-pulse-ai/internal/risk/router"
	workspaceRouter "github.com/Mouadistaa/project-pulse-ai/internal/workspace/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := bootstrap.Open()
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	logger := env.Logger
	cfg := env.Config

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery(logger), middleware.Logger(logger, "/health"))

	deps := map[string]health.Pinger{}
	if pinger, ok := env.Locker.(health.Pinger); ok {
		deps["redis"] = pinger
	}
	r.GET("/health", health.New(env.DB, logger, deps).Check)

	module := ingestion.New(env.DB, cfg, env.Locker, logger)

	workspaceRouter.RegisterRoutes(r, env.DB, logger)
	metricsRouter.RegisterRoutes(r, env.DB, cfg.Engine, logger)
	riskRouter.RegisterRoutes(r, env.DB, cfg.Engine, logger)
	alertRouter.RegisterRoutes(r, env.DB, logger)
	forecastRouter.RegisterRoutes(r, env.DB, cfg.Engine, logger)
	ingestionRouter.RegisterRoutes(r, module.Jobs, logger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "address", srv.Addr, "mock_mode", cfg.Sync.MockMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Infow("signal received, shutting down")
	case err := <-serveErr:
		if err != nil {
			logger.Errorw("HTTP server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("HTTP server shutdown error", "error", err)
	}
	if err := module.Jobs.Wait(shutdownCtx); err != nil {
		logger.Warnw("sync jobs still running at shutdown", "error", err)
	}
	if err := env.Close(); err != nil {
		log.Printf("shutdown cleanup failed: %v", err)
	}
}
