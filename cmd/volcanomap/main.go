package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/volcano-map-service/internal/adapter/http"
	"github.com/couchcryptid/volcano-map-service/internal/config"
	"github.com/couchcryptid/volcano-map-service/internal/dataset"
	"github.com/couchcryptid/volcano-map-service/internal/observability"
	"github.com/couchcryptid/volcano-map-service/internal/pipeline"
	"github.com/couchcryptid/volcano-map-service/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	background, err := dataset.LoadImage(cfg.MapImagePath)
	if err != nil {
		logger.Error("failed to load map image", "error", err, "path", cfg.MapImagePath)
		os.Exit(1)
	}
	logger.Info("map image loaded", "path", cfg.MapImagePath, "format", background.Format,
		"width", background.Size.Width, "height", background.Size.Height)

	loader := pipeline.New(dataset.CSVSource{Path: cfg.DatasetPath}, logger, metrics)
	if _, err := loader.LoadWithRetry(ctx, cfg.DatasetLoadAttempts); err != nil {
		logger.Error("failed to load dataset", "error", err, "path", cfg.DatasetPath)
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.Deps{
		Store:        loader,
		Background:   background,
		Cache:        render.NewCachedMap(cfg.RenderCacheSize, metrics.ObserveCache),
		Metrics:      metrics,
		DefaultWidth: cfg.DefaultCanvasWidth,
	}, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
