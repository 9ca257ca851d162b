package tmdb

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/csanna/moviebrowse/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	connectTimeout = 15 * time.Second
	readTimeout    = 10 * time.Second

	// Sections appended to a detail request in one round trip
	detailAppend = "images,credits,videos,reviews,recommendations"
)

// Client performs raw HTTP GETs against TheMovieDb API. One attempt per call:
// no retries, no backoff. Parsing the body is the mapper's job.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new TheMovieDb client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB API key is required")
	}

	baseURL, err := url.Parse(cfg.TMDBAPIHost)
	if err != nil {
		return nil, fmt.Errorf("invalid TMDB API host: %w", err)
	}

	return &Client{
		baseURL:  baseURL,
		apiKey:   cfg.TMDBAPIKey,
		language: cfg.TMDBLanguage,
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
				ResponseHeaderTimeout: readTimeout,
			},
		},
		logger: logger,
	}, nil
}

// PopularURL builds the request URL for the popular movies listing
func (c *Client) PopularURL() string {
	return c.buildURL("/movie/popular", nil)
}

// TopRatedURL builds the request URL for the top rated movies listing
func (c *Client) TopRatedURL() string {
	return c.buildURL("/movie/top_rated", nil)
}

// DiscoverURL builds the request URL for a genre-filtered discover listing
func (c *Client) DiscoverURL(genreCode string) string {
	return c.buildURL("/discover/movie", url.Values{"with_genres": {genreCode}})
}

// DetailURL builds the request URL for one movie with all nested sections
// appended in a single response.
func (c *Client) DetailURL(movieID int) string {
	return c.buildURL("/movie/"+strconv.Itoa(movieID), url.Values{
		"append_to_response": {detailAppend},
		"language":           {c.language},
	})
}

func (c *Client) buildURL(path string, extra url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + path

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	for key, values := range extra {
		for _, value := range values {
			params.Add(key, value)
		}
	}
	u.RawQuery = params.Encode()

	return u.String()
}

// Fetch performs a single GET against the given URL and returns the raw body.
// Any non-200 status is a failure.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	reqURL, err := url.Parse(rawURL)
	if err != nil {
		// Malformed URL, skip the request entirely
		c.logger.WithError(err).Error("Invalid request URL")
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}

	c.logger.WithField("url", reqURL.Redacted()).Debug("Fetching from TheMovieDb")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "moviebrowse/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TMDB request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status_code", resp.StatusCode).Error("TheMovieDb returned non-OK status")
		return nil, fmt.Errorf("TMDB returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Probe issues a cheap request against the API host to check reachability.
// Status codes do not matter here, only whether the host answered at all.
func (c *Client) Probe(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create probe request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	resp.Body.Close()

	return nil
}
