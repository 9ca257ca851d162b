package controllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/csanna/moviebrowse/internal/models"
	"github.com/csanna/moviebrowse/internal/services/tmdb"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a detail request targets a movie that is not
// in the favorites store.
var ErrNotFound = errors.New("movie not found")

// LoadController decides, per logical request, whether the network or the
// favorites store answers it, and normalizes the result for the presentation
// layer. A fetch or parse failure is a non-nil error; a successful query with
// zero results is an empty slice. The controller never caches network results.
type LoadController struct {
	db     *models.Database
	client *tmdb.Client
	mapper *tmdb.Mapper
	logger *logrus.Logger
}

// NewLoadController creates a new load controller
func NewLoadController(db *models.Database, client *tmdb.Client, mapper *tmdb.Mapper, logger *logrus.Logger) *LoadController {
	return &LoadController{
		db:     db,
		client: client,
		mapper: mapper,
		logger: logger,
	}
}

// LoadList answers a logical list request. The favorites source is served
// synchronously from the local store as poster-only movies; remote categories
// go through one fetch + parse round trip.
func (c *LoadController) LoadList(ctx context.Context, req models.ListRequest) ([]models.Movie, error) {
	if req.Source == models.SourceFavorites || req.Category == models.CategoryFavorites {
		return c.loadFavoritesList()
	}

	requestURL, err := c.listURL(req)
	if err != nil {
		return nil, err
	}

	body, err := c.client.Fetch(ctx, requestURL)
	if err != nil {
		c.logger.WithError(err).WithField("category", req.Category).Error("List fetch failed")
		return nil, fmt.Errorf("list fetch failed: %w", err)
	}

	movies := c.mapper.ParseList(body)
	if movies == nil {
		return nil, fmt.Errorf("unusable list response for category %s", req.Category)
	}

	c.logger.WithFields(logrus.Fields{
		"category": req.Category,
		"count":    len(movies),
	}).Debug("List loaded")

	return movies, nil
}

func (c *LoadController) listURL(req models.ListRequest) (string, error) {
	switch req.Category {
	case models.CategoryPopular:
		return c.client.PopularURL(), nil
	case models.CategoryTopRated:
		return c.client.TopRatedURL(), nil
	case models.CategoryGenre:
		if req.GenreCode == "" {
			return "", fmt.Errorf("genre category requires a genre code")
		}
		return c.client.DiscoverURL(req.GenreCode), nil
	default:
		return "", fmt.Errorf("unknown list category: %s", req.Category)
	}
}

func (c *LoadController) loadFavoritesList() ([]models.Movie, error) {
	favs, err := c.db.GetAllFavorites()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	movies := make([]models.Movie, 0, len(favs))
	for _, fav := range favs {
		movies = append(movies, fav.MinimalMovie())
	}
	return movies, nil
}

// LoadDetail answers a logical detail request for one movie. The favorites
// source rebuilds the entity from the stored snapshot: the sections that are
// not part of the snapshot come back nil.
func (c *LoadController) LoadDetail(ctx context.Context, req models.DetailRequest) (*models.Movie, error) {
	if req.Source == models.SourceFavorites {
		fav, err := c.db.GetFavorite(req.MovieID)
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load favorite %d: %w", req.MovieID, err)
		}
		movie := fav.Movie()
		return &movie, nil
	}

	body, err := c.client.Fetch(ctx, c.client.DetailURL(req.MovieID))
	if err != nil {
		c.logger.WithError(err).WithField("movie_id", req.MovieID).Error("Detail fetch failed")
		return nil, fmt.Errorf("detail fetch failed: %w", err)
	}

	movie := c.mapper.ParseDetail(body)
	if movie == nil {
		return nil, fmt.Errorf("unusable detail response for movie %d", req.MovieID)
	}

	return movie, nil
}
