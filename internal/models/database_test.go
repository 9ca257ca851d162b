package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func testFavorite() *Favorite {
	return &Favorite{
		MovieID:     603,
		PosterURL:   "http://image.tmdb.org/t/p/w500//matrix.jpg",
		Title:       "The Matrix",
		ReleaseDate: "1999-03-30",
		Countries:   "US, AU",
		Genres:      "Action, Science Fiction",
		Synopsis:    "A hacker learns the truth.",
		Director:    "Lana Wachowski, Lilly Wachowski",
		VoteAverage: 8.1,
	}
}

func TestSaveAndGetFavorite(t *testing.T) {
	db := testDB(t)

	saved := testFavorite()
	require.NoError(t, db.SaveFavorite(saved))

	got, err := db.GetFavorite(603)
	require.NoError(t, err)

	assert.Equal(t, saved.MovieID, got.MovieID)
	assert.Equal(t, saved.PosterURL, got.PosterURL)
	assert.Equal(t, saved.Title, got.Title)
	assert.Equal(t, saved.ReleaseDate, got.ReleaseDate)
	assert.Equal(t, saved.Countries, got.Countries)
	assert.Equal(t, saved.Genres, got.Genres)
	assert.Equal(t, saved.Synopsis, got.Synopsis)
	assert.Equal(t, saved.Director, got.Director)
	assert.Equal(t, saved.VoteAverage, got.VoteAverage)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSaveFavoriteReplacesDuplicate(t *testing.T) {
	db := testDB(t)

	first := testFavorite()
	require.NoError(t, db.SaveFavorite(first))

	second := testFavorite()
	second.Title = "The Matrix (Remastered)"
	second.VoteAverage = 8.7
	require.NoError(t, db.SaveFavorite(second))

	favs, err := db.GetAllFavorites()
	require.NoError(t, err)
	require.Len(t, favs, 1, "a duplicate movie id must replace the existing record")

	assert.Equal(t, "The Matrix (Remastered)", favs[0].Title)
	assert.Equal(t, 8.7, favs[0].VoteAverage)
}

func TestDeleteFavorite(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.SaveFavorite(testFavorite()))

	removed, err := db.DeleteFavorite(603)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = db.GetFavorite(603)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFavoriteMissing(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.SaveFavorite(testFavorite()))

	removed, err := db.DeleteFavorite(999)
	require.NoError(t, err, "deleting a missing favorite is not an error")
	assert.Equal(t, 0, removed)

	favs, err := db.GetAllFavorites()
	require.NoError(t, err)
	assert.Len(t, favs, 1, "the store must be left unchanged")
}

func TestFavoriteIDs(t *testing.T) {
	db := testDB(t)

	ids, err := db.FavoriteIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, id := range []int{603, 604, 605} {
		fav := testFavorite()
		fav.MovieID = id
		require.NoError(t, db.SaveFavorite(fav))
	}

	ids, err = db.FavoriteIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{603, 604, 605}, ids)
}

func TestFavoriteMovieRoundTrip(t *testing.T) {
	fav := testFavorite()

	movie := fav.Movie()
	assert.Equal(t, 603, movie.ID)
	assert.Equal(t, fav.Title, movie.Title)
	assert.Equal(t, fav.ReleaseDate, movie.ReleaseDate)
	assert.Equal(t, fav.Countries, movie.Countries)
	assert.Equal(t, fav.Genres, movie.Genres)
	assert.Equal(t, fav.Synopsis, movie.Synopsis)
	assert.Equal(t, fav.Director, movie.Director)
	assert.Equal(t, fav.VoteAverage, movie.VoteAverage)
	assert.Equal(t, fav.PosterURL, movie.ImageURL)

	// Sections that are not part of the snapshot stay absent
	assert.Nil(t, movie.Images)
	assert.Nil(t, movie.Cast)
	assert.Nil(t, movie.Trailers)
	assert.Nil(t, movie.Reviews)
	assert.Nil(t, movie.Recommendations)

	minimal := fav.MinimalMovie()
	assert.Equal(t, 603, minimal.ID)
	assert.Equal(t, fav.PosterURL, minimal.ImageURL)
	assert.Empty(t, minimal.Title)
}
