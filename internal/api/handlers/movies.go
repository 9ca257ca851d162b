package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/csanna/moviebrowse/internal/controllers"
	"github.com/csanna/moviebrowse/internal/models"
	"github.com/sirupsen/logrus"
)

// Reachability reports whether the remote API is currently reachable
type Reachability interface {
	Online() bool
}

// MoviesHandler serves movie listings and details to the UI layer
type MoviesHandler struct {
	loadCtrl *controllers.LoadController
	reach    Reachability
	logger   *logrus.Logger
}

// NewMoviesHandler creates a new movies handler
func NewMoviesHandler(loadCtrl *controllers.LoadController, reach Reachability, logger *logrus.Logger) *MoviesHandler {
	return &MoviesHandler{
		loadCtrl: loadCtrl,
		reach:    reach,
		logger:   logger,
	}
}

// List serves GET /api/movies?category=popular|top_rated|genre&genre=<code>.
// While the API host is unreachable the request is transparently degraded to
// the favorites store instead of failing.
func (h *MoviesHandler) List(w http.ResponseWriter, r *http.Request) {
	req := models.ListRequest{
		Category:  models.CategoryPopular,
		GenreCode: r.URL.Query().Get("genre"),
		Source:    models.SourceRemote,
	}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = models.Category(category)
	}

	if !h.reach.Online() {
		h.logger.WithField("category", req.Category).Debug("Offline, degrading list to favorites")
		req.Source = models.SourceFavorites
	}

	movies, err := h.loadCtrl.LoadList(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadGateway, "could not load movies")
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

// Favorites serves GET /api/movies/favorites, the poster-only favorites grid
func (h *MoviesHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	movies, err := h.loadCtrl.LoadList(r.Context(), models.ListRequest{
		Category: models.CategoryFavorites,
		Source:   models.SourceFavorites,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load favorites")
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

// Detail serves GET /api/movies/{id}. With ?source=favorites (or while
// offline) the stored snapshot answers instead of the network.
func (h *MoviesHandler) Detail(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	req := models.DetailRequest{MovieID: movieID, Source: models.SourceRemote}
	if r.URL.Query().Get("source") == string(models.SourceFavorites) || !h.reach.Online() {
		req.Source = models.SourceFavorites
	}

	movie, err := h.loadCtrl.LoadDetail(r.Context(), req)
	if errors.Is(err, controllers.ErrNotFound) {
		writeError(w, http.StatusNotFound, "movie not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, "could not load movie")
		return
	}

	writeJSON(w, http.StatusOK, movie)
}
