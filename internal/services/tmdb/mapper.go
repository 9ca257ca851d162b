package tmdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/csanna/moviebrowse/internal/models"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const (
	// Resolution-specific poster bases. Lists and backdrops use w342,
	// the detail poster uses w500.
	imageBaseW342 = "http://image.tmdb.org/t/p/w342/"
	imageBaseW500 = "http://image.tmdb.org/t/p/w500/"

	trailerThumbnailURL = "https://img.youtube.com/vi/%s/mqdefault.jpg"

	directorJob = "Director"

	maxImages          = 10
	maxCast            = 10
	maxTrailers        = 10
	maxReviews         = 3
	maxRecommendations = 10
)

// Mapper turns raw TheMovieDb JSON payloads into movie entities. All entry
// points are deterministic and tolerant of missing optional fields; malformed
// JSON is logged and collapses the result to nil, it never escapes as a fault.
type Mapper struct {
	logger *logrus.Logger
}

// NewMapper creates a new response mapper
func NewMapper(logger *logrus.Logger) *Mapper {
	return &Mapper{logger: logger}
}

// Payload shapes. Pointer fields distinguish an absent key from a zero value,
// which matters for vote_average (a real 0.0 score is not "unknown").

type summaryPayload struct {
	ID          *int     `json:"id"`
	Title       *string  `json:"title"`
	ReleaseDate *string  `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
	Overview    *string  `json:"overview"`
	PosterPath  *string  `json:"poster_path"`
}

type detailPayload struct {
	summaryPayload
	Genres              []namedPayload       `json:"genres"`
	ProductionCountries []countryPayload     `json:"production_countries"`
	Images              *imagesPayload       `json:"images"`
	Credits             *creditsPayload      `json:"credits"`
	Videos              *videosPayload       `json:"videos"`
	Reviews             *reviewsPayload      `json:"reviews"`
	Recommendations     *recommendationsList `json:"recommendations"`
}

type namedPayload struct {
	Name *string `json:"name"`
}

type countryPayload struct {
	ISOCode *string `json:"iso_3166_1"`
}

type imagesPayload struct {
	Backdrops []backdropPayload `json:"backdrops"`
}

type backdropPayload struct {
	FilePath *string `json:"file_path"`
}

type creditsPayload struct {
	Cast []castPayload `json:"cast"`
	Crew []crewPayload `json:"crew"`
}

type castPayload struct {
	Name        *string `json:"name"`
	ProfilePath *string `json:"profile_path"`
}

type crewPayload struct {
	Name *string `json:"name"`
	Job  *string `json:"job"`
}

type videosPayload struct {
	Results []videoPayload `json:"results"`
}

type videoPayload struct {
	Key *string `json:"key"`
}

type reviewsPayload struct {
	Results []reviewPayload `json:"results"`
}

type reviewPayload struct {
	Author  *string `json:"author"`
	Content *string `json:"content"`
	URL     *string `json:"url"`
}

type recommendationsList struct {
	Results []summaryPayload `json:"results"`
}

// ParseList parses a listing payload into summary movies: title, release
// date, vote average, synopsis and w342 poster. Returns exactly one movie per
// results entry, in source order. Blank input, malformed JSON or a missing
// results key yields nil.
func (m *Mapper) ParseList(body []byte) []models.Movie {
	results, ok := m.parseResults(body)
	if !ok {
		return nil
	}

	movies := make([]models.Movie, 0, len(results))
	for _, entry := range results {
		movies = append(movies, entry.summaryMovie())
	}
	return movies
}

// ParseMinimalList parses a listing payload keeping only id and w342 poster.
// Entries lacking either are skipped.
func (m *Mapper) ParseMinimalList(body []byte) []models.Movie {
	results, ok := m.parseResults(body)
	if !ok {
		return nil
	}

	movies := make([]models.Movie, 0, len(results))
	for _, entry := range results {
		if entry.ID == nil || entry.PosterPath == nil {
			continue
		}
		movies = append(movies, models.NewMinimalMovie(*entry.ID, imageBaseW342+*entry.PosterPath))
	}
	return movies
}

func (m *Mapper) parseResults(body []byte) ([]summaryPayload, bool) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, false
	}

	// Raw-map first so a present-but-empty results array is distinguishable
	// from a payload without one.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		m.logger.WithError(err).Error("Failed to parse movie list payload")
		return nil, false
	}

	rawResults, ok := raw["results"]
	if !ok {
		return nil, false
	}

	var results []summaryPayload
	if err := json.Unmarshal(rawResults, &results); err != nil {
		m.logger.WithError(err).Error("Failed to parse movie list results")
		return nil, false
	}

	return results, true
}

func (s summaryPayload) summaryMovie() models.Movie {
	movie := models.NewMovie()
	if s.ID != nil {
		movie.ID = *s.ID
	}
	if s.Title != nil {
		movie.Title = *s.Title
	}
	if s.ReleaseDate != nil {
		movie.ReleaseDate = *s.ReleaseDate
	}
	if s.VoteAverage != nil {
		movie.VoteAverage = *s.VoteAverage
	}
	if s.Overview != nil {
		movie.Synopsis = *s.Overview
	}
	if s.PosterPath != nil {
		movie.ImageURL = imageBaseW342 + *s.PosterPath
	}
	return movie
}

// ParseDetail parses a single movie payload with its appended sections into a
// full movie entity. Decoding is all-or-nothing: malformed JSON yields nil,
// never a partially-populated entity. Each nested section is independently
// optional; an absent section leaves the matching field nil while a present
// section with zero usable items produces an empty, non-nil value.
func (m *Mapper) ParseDetail(body []byte) *models.Movie {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var payload detailPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		m.logger.WithError(err).Error("Failed to parse movie detail payload")
		return nil
	}

	movie := payload.summaryMovie()
	if payload.PosterPath != nil {
		// Detail poster uses the higher resolution base
		movie.ImageURL = imageBaseW500 + *payload.PosterPath
	}

	if payload.Genres != nil {
		movie.Genres = joinNames(payload.Genres)
	}
	if payload.ProductionCountries != nil {
		movie.Countries = joinCountries(payload.ProductionCountries)
	}
	if payload.Images != nil && payload.Images.Backdrops != nil {
		movie.Images = backdropURLs(payload.Images.Backdrops)
	}
	if payload.Credits != nil {
		if payload.Credits.Cast != nil {
			movie.Cast = castList(payload.Credits.Cast)
		}
		if payload.Credits.Crew != nil {
			movie.Director = joinDirectors(payload.Credits.Crew)
		}
	}
	if payload.Videos != nil && payload.Videos.Results != nil {
		movie.Trailers = trailerList(payload.Videos.Results)
	}
	if payload.Reviews != nil && payload.Reviews.Results != nil {
		movie.Reviews = reviewList(payload.Reviews.Results)
	}
	if payload.Recommendations != nil && payload.Recommendations.Results != nil {
		movie.Recommendations = recommendedMovies(payload.Recommendations.Results)
	}

	return &movie
}

func joinNames(genres []namedPayload) string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		if genre.Name != nil {
			names = append(names, *genre.Name)
		}
	}
	return join(names)
}

func joinCountries(countries []countryPayload) string {
	codes := make([]string, 0, len(countries))
	for _, country := range countries {
		if country.ISOCode != nil {
			codes = append(codes, *country.ISOCode)
		}
	}
	return join(codes)
}

func joinDirectors(crew []crewPayload) string {
	var names []string
	for _, member := range crew {
		if member.Job == nil || *member.Job != directorJob {
			continue
		}
		if member.Name != nil {
			names = append(names, *member.Name)
		}
	}
	return join(names)
}

func join(parts []string) string {
	return strings.Join(parts, ", ")
}

func backdropURLs(backdrops []backdropPayload) []string {
	urls := make([]string, 0, capLen(len(backdrops), maxImages))
	for _, backdrop := range backdrops[:capLen(len(backdrops), maxImages)] {
		if backdrop.FilePath != nil {
			urls = append(urls, imageBaseW342+*backdrop.FilePath)
		}
	}
	return urls
}

// castList builds the two index-aligned cast slices. An entry without a name
// is skipped outright; an entry with a name but no photo keeps an empty photo
// slot at the same index so alignment is preserved.
func castList(cast []castPayload) *models.CastList {
	length := capLen(len(cast), maxCast)
	list := &models.CastList{
		Names:  make([]string, 0, length),
		Photos: make([]string, 0, length),
	}
	for _, member := range cast[:length] {
		if member.Name == nil {
			continue
		}
		photo := ""
		if member.ProfilePath != nil {
			photo = imageBaseW342 + *member.ProfilePath
		}
		list.Names = append(list.Names, *member.Name)
		list.Photos = append(list.Photos, photo)
	}
	return list
}

func trailerList(videos []videoPayload) *models.TrailerList {
	length := capLen(len(videos), maxTrailers)
	list := &models.TrailerList{
		Keys:       make([]string, 0, length),
		Thumbnails: make([]string, 0, length),
	}
	for _, video := range videos[:length] {
		if video.Key == nil {
			continue
		}
		list.Keys = append(list.Keys, *video.Key)
		list.Thumbnails = append(list.Thumbnails, fmt.Sprintf(trailerThumbnailURL, *video.Key))
	}
	return list
}

// reviewList builds the three index-aligned review slices. A review is only
// added when it has content; missing url or author become empty placeholders.
func reviewList(reviews []reviewPayload) *models.ReviewList {
	length := capLen(len(reviews), maxReviews)
	list := &models.ReviewList{
		Contents: make([]string, 0, length),
		URLs:     make([]string, 0, length),
		Authors:  make([]string, 0, length),
	}
	for _, review := range reviews[:length] {
		if review.Content == nil {
			continue
		}
		reviewURL := ""
		if review.URL != nil {
			reviewURL = *review.URL
		}
		author := ""
		if review.Author != nil {
			author = *review.Author
		}
		list.Contents = append(list.Contents, *review.Content)
		list.URLs = append(list.URLs, reviewURL)
		list.Authors = append(list.Authors, author)
	}
	return list
}

func recommendedMovies(results []summaryPayload) []models.Movie {
	length := capLen(len(results), maxRecommendations)
	movies := make([]models.Movie, 0, length)
	for _, entry := range results[:length] {
		movie := models.NewMovie()
		if entry.ID != nil {
			movie.ID = *entry.ID
		}
		if entry.PosterPath != nil {
			movie.ImageURL = imageBaseW342 + *entry.PosterPath
		}
		movies = append(movies, movie)
	}
	return movies
}

func capLen(length, max int) int {
	if length < max {
		return length
	}
	return max
}
