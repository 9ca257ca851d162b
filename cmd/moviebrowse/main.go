package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/csanna/moviebrowse/internal/api"
	"github.com/csanna/moviebrowse/internal/config"
	"github.com/csanna/moviebrowse/internal/controllers"
	"github.com/csanna/moviebrowse/internal/models"
	"github.com/csanna/moviebrowse/internal/scheduler"
	"github.com/csanna/moviebrowse/internal/services/tmdb"
	"github.com/csanna/moviebrowse/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting Moviebrowse")
	logger.WithField("config_dir", filepath.Dir(cfg.DatabaseFile)).Info("Configuration loaded")

	// 3. Initialize database
	db, err := models.NewDatabase(cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	logger.Info("Database initialized")

	// 4. Initialize TheMovieDb client and mapper
	tmdbClient, err := tmdb.NewClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize TMDB client: %w", err)
	}
	mapper := tmdb.NewMapper(logger)
	logger.Info("TMDB client initialized")

	// 5. Initialize controllers
	loadCtrl := controllers.NewLoadController(db, tmdbClient, mapper, logger)
	favCtrl, err := controllers.NewFavoritesController(db, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize favorites controller: %w", err)
	}
	logger.Info("Controllers initialized")

	// 6. Start the reachability monitor
	monitor := scheduler.NewMonitor(tmdbClient, logger)
	if err := monitor.Start(cfg.ProbeSchedule); err != nil {
		return fmt.Errorf("failed to start reachability monitor: %w", err)
	}
	defer monitor.Stop()

	// 7. Initialize HTTP server
	server := api.NewServer(cfg, loadCtrl, favCtrl, monitor, logger)

	// Start server in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 8. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Moviebrowse is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("Moviebrowse stopped")
	return nil
}
