package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/api/rest"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/ingest/sdv"
	"github.com/fortuna/courtside/internal/logger"
	"github.com/fortuna/courtside/internal/metrics"
)

const serviceName = "courtside"

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	zl.Info("starting service",
		zap.String("service", serviceName),
		zap.String("version", rest.Version),
		zap.Int("season", cfg.Season))

	// Load the full season into memory before serving any traffic. The
	// tables are immutable after this point.
	client := sdv.NewClient(cfg.FeedBaseURL, zl)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), cfg.FeedTimeout)
	data, err := client.LoadSeason(loadCtx, cfg.Season)
	loadCancel()
	if err != nil {
		zl.Fatal("season load failed", zap.Int("season", cfg.Season), zap.Error(err))
	}

	zl.Info("season loaded",
		zap.Int("season", cfg.Season),
		zap.Int("plays", len(data.Plays())),
		zap.Int("box_rows", len(data.BoxScores())),
		zap.Int("teams", len(data.Teams())))

	rec := metrics.NewRecorder()

	server := rest.NewServer(cfg.Port, data, rec, zl, cfg.Season)
	go func() {
		zl.Info("http server listening", zap.String("port", cfg.Port))
		if err := server.Start(); err != nil {
			zl.Error("http server stopped", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zl.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown error", zap.Error(err))
	}

	zl.Info("stopped")
}
