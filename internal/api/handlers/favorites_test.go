package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesLifecycle(t *testing.T) {
	_, favCtrl := testControllers(t, "http://unused.invalid")
	handler := NewFavoritesHandler(favCtrl, testLogger())

	// Favorite a movie
	body := `{"id": 603, "title": "The Matrix", "vote_average": 8.1}`
	rec := httptest.NewRecorder()
	handler.Add(rec, httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	// The membership set now contains it
	rec = httptest.NewRecorder()
	handler.IDs(rec, httptest.NewRequest(http.MethodGet, "/api/favorites/ids", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var ids map[string][]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
	assert.Equal(t, []int{603}, ids["ids"])

	// Unfavorite it
	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/603", nil)
	req.SetPathValue("id", "603")
	rec = httptest.NewRecorder()
	handler.Remove(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var removed map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removed))
	assert.Equal(t, 1, removed["removed"])

	// Removing again is not an error, just a zero count
	req = httptest.NewRequest(http.MethodDelete, "/api/favorites/603", nil)
	req.SetPathValue("id", "603")
	rec = httptest.NewRecorder()
	handler.Remove(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removed))
	assert.Equal(t, 0, removed["removed"])
}

func TestAddFavoriteRejectsBadPayload(t *testing.T) {
	_, favCtrl := testControllers(t, "http://unused.invalid")
	handler := NewFavoritesHandler(favCtrl, testLogger())

	rec := httptest.NewRecorder()
	handler.Add(rec, httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A movie without an id cannot be favorited
	rec = httptest.NewRecorder()
	handler.Add(rec, httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"title": "No ID"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
