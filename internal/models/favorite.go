package models

import "time"

// Favorite is a denormalized snapshot of a movie at the moment it was
// favorited. It is persisted independently of the live API and never updated
// in place: favoriting an already-favorited movie replaces the whole record.
type Favorite struct {
	MovieID     int `boltholdKey:"MovieID"`
	PosterURL   string
	Title       string
	ReleaseDate string
	Countries   string
	Genres      string
	Synopsis    string
	Director    string
	VoteAverage float64

	CreatedAt time.Time
}

// NewFavorite snapshots the stored subset of a fully-loaded movie.
func NewFavorite(m *Movie) *Favorite {
	return &Favorite{
		MovieID:     m.ID,
		PosterURL:   m.ImageURL,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Countries:   m.Countries,
		Genres:      m.Genres,
		Synopsis:    m.Synopsis,
		Director:    m.Director,
		VoteAverage: m.VoteAverage,
	}
}

// Movie rebuilds a full movie entity from the snapshot. Sections that are not
// part of the snapshot (cast, trailers, images, reviews, recommendations) come
// back nil, which the caller reads as "not available".
func (f *Favorite) Movie() Movie {
	return Movie{
		ID:          f.MovieID,
		Title:       f.Title,
		ReleaseDate: f.ReleaseDate,
		VoteAverage: f.VoteAverage,
		Synopsis:    f.Synopsis,
		ImageURL:    f.PosterURL,
		Director:    f.Director,
		Countries:   f.Countries,
		Genres:      f.Genres,
	}
}

// MinimalMovie rebuilds only the id + poster pair used by the favorites grid.
func (f *Favorite) MinimalMovie() Movie {
	return NewMinimalMovie(f.MovieID, f.PosterURL)
}
