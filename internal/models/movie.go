package models

// Movie represents a single movie from TheMovieDb. Two construction states are
// legitimate: minimal (id + poster, used in recommendation and favorites grids)
// and full (every field, used for the detail view and favorite snapshots).
type Movie struct {
	ID          int     `json:"id,omitempty"`
	Title       string  `json:"title,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"` // yyyy-mm-dd
	VoteAverage float64 `json:"vote_average"`           // -1.0 means not set, 0.0 is a real score
	Synopsis    string  `json:"synopsis,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Director    string  `json:"director,omitempty"`  // comma-joined
	Countries   string  `json:"countries,omitempty"` // comma-joined ISO codes
	Genres      string  `json:"genres,omitempty"`    // comma-joined

	// Nested sections. A nil slice means the section was absent from the
	// payload; an empty non-nil slice means present with zero items.
	Images          []string     `json:"images,omitempty"`
	Cast            *CastList    `json:"cast,omitempty"`
	Trailers        *TrailerList `json:"trailers,omitempty"`
	Reviews         *ReviewList  `json:"reviews,omitempty"`
	Recommendations []Movie      `json:"recommendations,omitempty"`
}

// VoteAverageUnset is the sentinel for a missing vote average.
const VoteAverageUnset = -1.0

// NewMovie returns an empty movie with the vote average sentinel applied.
func NewMovie() Movie {
	return Movie{VoteAverage: VoteAverageUnset}
}

// NewMinimalMovie returns a movie carrying only id and poster.
func NewMinimalMovie(id int, imageURL string) Movie {
	return Movie{ID: id, ImageURL: imageURL, VoteAverage: VoteAverageUnset}
}

// CastList holds index-aligned cast names and photo URLs. A cast member
// without a photo keeps an empty string at their index so the slices always
// have equal length.
type CastList struct {
	Names  []string `json:"names"`
	Photos []string `json:"photos"`
}

// TrailerList holds index-aligned video keys and thumbnail URLs.
type TrailerList struct {
	Keys       []string `json:"keys"`
	Thumbnails []string `json:"thumbnails"`
}

// ReviewList holds index-aligned review contents, source URLs and authors.
type ReviewList struct {
	Contents []string `json:"contents"`
	URLs     []string `json:"urls"`
	Authors  []string `json:"authors"`
}
