package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/murad/unidir/internal/app/repositories"
	"github.com/murad/unidir/internal/bootstrap"
	"github.com/murad/unidir/internal/cache"
	"github.com/murad/unidir/internal/db"
	"github.com/murad/unidir/internal/pkg/logger"
	"github.com/murad/unidir/internal/worker"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer database.Close()

	directoryCache, err := cache.New(cfg)
	if err != nil {
		lgr.Warn().Err(err).Msg("Redis unavailable, cache refresh jobs will be no-ops")
		directoryCache = nil
	}
	defer directoryCache.Close()

	repos := repositories.NewRepositories(database.Pool, cfg)

	manager := worker.NewManager(cfg, repos, directoryCache)
	if err := manager.Start(); err != nil {
		lgr.Error().Err(err).Msg("Failed to start worker jobs")
		os.Exit(1)
	}

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-osSignals
	lgr.Info().Str("signal", sig.String()).Msg("Received OS signal, stopping worker...")

	manager.Stop()
	lgr.Info().Msg("Worker finished gracefully.")
}
