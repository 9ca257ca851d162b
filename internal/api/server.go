package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/csanna/moviebrowse/internal/api/handlers"
	"github.com/csanna/moviebrowse/internal/api/middleware"
	"github.com/csanna/moviebrowse/internal/config"
	"github.com/csanna/moviebrowse/internal/controllers"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	server   *http.Server
	loadCtrl *controllers.LoadController
	favCtrl  *controllers.FavoritesController
	reach    handlers.Reachability
	logger   *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, loadCtrl *controllers.LoadController, favCtrl *controllers.FavoritesController, reach handlers.Reachability, logger *logrus.Logger) *Server {
	s := &Server{
		loadCtrl: loadCtrl,
		favCtrl:  favCtrl,
		reach:    reach,
		logger:   logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.RequestID(middleware.Logging(mux, logger)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Health check
	healthHandler := handlers.NewHealthHandler(s.logger)
	mux.HandleFunc("/health", healthHandler.ServeHTTP)

	// Movie listings and details
	moviesHandler := handlers.NewMoviesHandler(s.loadCtrl, s.reach, s.logger)
	mux.HandleFunc("GET /api/movies", moviesHandler.List)
	mux.HandleFunc("GET /api/movies/favorites", moviesHandler.Favorites)
	mux.HandleFunc("GET /api/movies/{id}", moviesHandler.Detail)

	// Favorites
	favoritesHandler := handlers.NewFavoritesHandler(s.favCtrl, s.logger)
	mux.HandleFunc("POST /api/favorites", favoritesHandler.Add)
	mux.HandleFunc("DELETE /api/favorites/{id}", favoritesHandler.Remove)
	mux.HandleFunc("GET /api/favorites/ids", favoritesHandler.IDs)
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
