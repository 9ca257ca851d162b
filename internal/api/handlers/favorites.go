package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/csanna/moviebrowse/internal/controllers"
	"github.com/csanna/moviebrowse/internal/models"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// FavoritesHandler exposes favorite/unfavorite operations and the membership
// id set loaded by the UI at startup.
type FavoritesHandler struct {
	favCtrl *controllers.FavoritesController
	logger  *logrus.Logger
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favCtrl *controllers.FavoritesController, logger *logrus.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favCtrl: favCtrl,
		logger:  logger,
	}
}

// Add serves POST /api/favorites with a fully-loaded movie in the body.
// A storage fault is surfaced so the UI can show the failure.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie payload")
		return
	}

	if err := h.favCtrl.Add(&movie); err != nil {
		h.logger.WithError(err).Error("Failed to save favorite")
		writeError(w, http.StatusInternalServerError, "could not save favorite")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"movie_id": movie.ID})
}

// Remove serves DELETE /api/favorites/{id}. Removing a movie that was never
// favorited is not an error; the removed count says what happened.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	removed, err := h.favCtrl.Remove(movieID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete favorite")
		writeError(w, http.StatusInternalServerError, "could not delete favorite")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// IDs serves GET /api/favorites/ids, the membership set the UI checks
// favorite buttons against.
func (h *FavoritesHandler) IDs(w http.ResponseWriter, r *http.Request) {
	ids := h.favCtrl.IDs()
	sort.Ints(ids)
	writeJSON(w, http.StatusOK, map[string][]int{"ids": ids})
}
