package controllers

import (
	"fmt"
	"strconv"

	"github.com/csanna/moviebrowse/internal/models"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// FavoritesController owns the favorite/unfavorite lifecycle and a read-through
// membership cache of favorited ids, seeded once at startup and invalidated
// explicitly on every insert and delete.
type FavoritesController struct {
	db     *models.Database
	ids    *cache.Cache
	logger *logrus.Logger
}

// NewFavoritesController creates the controller and seeds the membership
// cache from the store.
func NewFavoritesController(db *models.Database, logger *logrus.Logger) (*FavoritesController, error) {
	ids := cache.New(cache.NoExpiration, 0)

	movieIDs, err := db.FavoriteIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to seed favorite ids: %w", err)
	}
	for _, id := range movieIDs {
		ids.Set(idKey(id), struct{}{}, cache.NoExpiration)
	}

	logger.WithField("count", len(movieIDs)).Info("Favorite ids loaded")

	return &FavoritesController{
		db:     db,
		ids:    ids,
		logger: logger,
	}, nil
}

// Add snapshots a fully-loaded movie into the favorites store. Adding an
// already-favorited movie replaces its snapshot.
func (c *FavoritesController) Add(movie *models.Movie) error {
	if movie.ID == 0 {
		return fmt.Errorf("cannot favorite a movie without an id")
	}

	if err := c.db.SaveFavorite(models.NewFavorite(movie)); err != nil {
		return err
	}
	c.ids.Set(idKey(movie.ID), struct{}{}, cache.NoExpiration)

	c.logger.WithFields(logrus.Fields{
		"movie_id": movie.ID,
		"title":    movie.Title,
	}).Info("Movie favorited")

	return nil
}

// Remove deletes the snapshot for the given movie id and returns how many
// records were removed (0 or 1).
func (c *FavoritesController) Remove(movieID int) (int, error) {
	removed, err := c.db.DeleteFavorite(movieID)
	if err != nil {
		return 0, err
	}
	c.ids.Delete(idKey(movieID))

	if removed > 0 {
		c.logger.WithField("movie_id", movieID).Info("Movie unfavorited")
	}

	return removed, nil
}

// IsFavorite answers the membership check from the cache alone, without
// touching the store.
func (c *FavoritesController) IsFavorite(movieID int) bool {
	_, found := c.ids.Get(idKey(movieID))
	return found
}

// IDs returns the currently favorited movie ids
func (c *FavoritesController) IDs() []int {
	items := c.ids.Items()
	movieIDs := make([]int, 0, len(items))
	for key := range items {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		movieIDs = append(movieIDs, id)
	}
	return movieIDs
}

func idKey(movieID int) string {
	return strconv.Itoa(movieID)
}
