package models

// Category identifies which movie listing is requested
type Category string

const (
	CategoryPopular   Category = "popular"
	CategoryTopRated  Category = "top_rated"
	CategoryGenre     Category = "genre"
	CategoryFavorites Category = "favorites"
)

// Source identifies which side answers a logical request
type Source string

const (
	SourceRemote    Source = "remote"
	SourceFavorites Source = "favorites"
)

// ListRequest describes a logical list load
type ListRequest struct {
	Category  Category
	GenreCode string // only used with CategoryGenre
	Source    Source
}

// DetailRequest describes a logical detail load for one movie
type DetailRequest struct {
	MovieID int
	Source  Source
}
