package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/csanna/moviebrowse/internal/config"
	"github.com/csanna/moviebrowse/internal/controllers"
	"github.com/csanna/moviebrowse/internal/models"
	"github.com/csanna/moviebrowse/internal/services/tmdb"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReach bool

func (s stubReach) Online() bool { return bool(s) }

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testControllers(t *testing.T, host string) (*controllers.LoadController, *controllers.FavoritesController) {
	t.Helper()

	logger := testLogger()
	db, err := models.NewDatabase(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client, err := tmdb.NewClient(&config.Config{
		TMDBAPIKey:  "test-key",
		TMDBAPIHost: host,
	}, logger)
	require.NoError(t, err)

	loadCtrl := controllers.NewLoadController(db, client, tmdb.NewMapper(logger), logger)
	favCtrl, err := controllers.NewFavoritesController(db, logger)
	require.NoError(t, err)

	return loadCtrl, favCtrl
}

func TestListMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"id": 603, "title": "The Matrix"}]}`))
	}))
	defer server.Close()

	loadCtrl, _ := testControllers(t, server.URL)
	handler := NewMoviesHandler(loadCtrl, stubReach(true), testLogger())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/movies?category=popular", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var movies []models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "The Matrix", movies[0].Title)
}

func TestListMoviesNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	loadCtrl, _ := testControllers(t, server.URL)
	handler := NewMoviesHandler(loadCtrl, stubReach(true), testLogger())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestListMoviesDegradesToFavoritesWhenOffline(t *testing.T) {
	loadCtrl, favCtrl := testControllers(t, "http://unused.invalid")
	require.NoError(t, favCtrl.Add(&models.Movie{ID: 603, ImageURL: "http://image.tmdb.org/t/p/w500//matrix.jpg"}))

	handler := NewMoviesHandler(loadCtrl, stubReach(false), testLogger())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/movies?category=popular", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var movies []models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, 603, movies[0].ID)
}

func TestMovieDetailFromFavorites(t *testing.T) {
	loadCtrl, favCtrl := testControllers(t, "http://unused.invalid")
	require.NoError(t, favCtrl.Add(&models.Movie{ID: 603, Title: "The Matrix"}))

	handler := NewMoviesHandler(loadCtrl, stubReach(true), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/movies/603?source=favorites", nil)
	req.SetPathValue("id", "603")
	rec := httptest.NewRecorder()
	handler.Detail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var movie models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movie))
	assert.Equal(t, "The Matrix", movie.Title)
}

func TestMovieDetailNotFound(t *testing.T) {
	loadCtrl, _ := testControllers(t, "http://unused.invalid")
	handler := NewMoviesHandler(loadCtrl, stubReach(true), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/movies/999?source=favorites", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	handler.Detail(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMovieDetailInvalidID(t *testing.T) {
	loadCtrl, _ := testControllers(t, "http://unused.invalid")
	handler := NewMoviesHandler(loadCtrl, stubReach(true), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/movies/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	handler.Detail(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
