package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"casetracker/internal/config"
	"casetracker/internal/feed"
	"casetracker/internal/jobs"
	"casetracker/internal/logging"
	"casetracker/internal/metrics"
	"casetracker/internal/palette"
	"casetracker/internal/server"
)

func main() {
	cfg := config.Load()

	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		slog.Error("Invalid LOG_FORMAT", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(logging.ParseLevel(cfg.LogLevel), os.Stderr, format))

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		slog.Error("Failed to load config file", "error", err)
		os.Exit(1)
	}
	cfg.File = yamlCfg

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The server starts with an empty feed; the fetch publishes into the store.
	store := feed.NewStore()
	metrics.Init(store)

	loader := feed.NewLoader(cfg.FeedURL, cfg.FeedFile, cfg.FeedTimeout)
	go jobs.NewFeedFetcher(loader, store).Run(ctx)

	srv := server.New(cfg)
	srv.RegisterRoutes(store, palette.New(cfg.File.GetStatusColors()))

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited")
}
