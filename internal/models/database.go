package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"
)

// ErrNotFound is returned when a requested favorite does not exist.
var ErrNotFound = bolthold.ErrNotFound

// Database wraps the bolthold store holding favorite snapshots
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// SaveFavorite persists a favorite snapshot. Records are keyed by movie id, so
// saving an already-favorited movie atomically replaces the existing record.
func (db *Database) SaveFavorite(fav *Favorite) error {
	fav.CreatedAt = time.Now()
	if err := db.store.Upsert(fav.MovieID, fav); err != nil {
		return fmt.Errorf("failed to save favorite %d: %w", fav.MovieID, err)
	}
	return nil
}

// DeleteFavorite removes the record for the given movie id and returns how
// many records were removed (0 or 1). A missing record is not an error.
func (db *Database) DeleteFavorite(movieID int) (int, error) {
	err := db.store.Delete(movieID, &Favorite{})
	if errors.Is(err, bolthold.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete favorite %d: %w", movieID, err)
	}
	return 1, nil
}

// GetFavorite retrieves one favorite by movie id
func (db *Database) GetFavorite(movieID int) (*Favorite, error) {
	var fav Favorite
	if err := db.store.Get(movieID, &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

// GetAllFavorites retrieves every favorite in the store's natural key order
func (db *Database) GetAllFavorites() ([]*Favorite, error) {
	var favs []*Favorite
	err := db.store.Find(&favs, nil)
	return favs, err
}

// FavoriteIDs returns the ids of all favorited movies. Used to seed the
// membership cache at startup without loading full records.
func (db *Database) FavoriteIDs() ([]int, error) {
	favs, err := db.GetAllFavorites()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(favs))
	for _, fav := range favs {
		ids = append(ids, fav.MovieID)
	}
	return ids, nil
}
