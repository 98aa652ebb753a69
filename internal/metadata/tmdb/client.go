// Package tmdb implements the metadata.Provider interface against The
// Movie Database API v3.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mediaclean/internal/metadata"
)

// DefaultBaseURL is the production TMDB API endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// ImageBaseURL is the CDN prefix for relative poster paths.
const ImageBaseURL = "https://image.tmdb.org/t/p/w200"

// Client provides access to the TMDB API for TV series lookups.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ metadata.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// New creates a TMDB client.
func New(apiKey, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type searchResult struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	Overview     string `json:"overview"`
	FirstAirDate string `json:"first_air_date"`
	PosterPath   string `json:"poster_path"`
}

type searchResponse struct {
	Page         int            `json:"page"`
	Results      []searchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

type seriesDetails struct {
	searchResult
	NumberOfSeasons int `json:"number_of_seasons"`
}

type episodeEntry struct {
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	AirDate       string `json:"air_date"`
	StillPath     string `json:"still_path"`
}

type seasonDetails struct {
	SeasonNumber int            `json:"season_number"`
	Episodes     []episodeEntry `json:"episodes"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}

// Search looks up TV series by name.
func (c *Client) Search(ctx context.Context, query string) ([]metadata.Series, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)

	var payload searchResponse
	if err := c.get(ctx, "/search/tv", params, &payload); err != nil {
		return nil, err
	}
	results := make([]metadata.Series, 0, len(payload.Results))
	for _, item := range payload.Results {
		results = append(results, metadata.Series{
			ID:           item.ID,
			Name:         item.Name,
			OriginalName: item.OriginalName,
			Overview:     item.Overview,
			FirstAirDate: item.FirstAirDate,
			Poster:       item.PosterPath,
		})
	}
	return results, nil
}

// SeriesDetails fetches series-level metadata by TMDB id.
func (c *Client) SeriesDetails(ctx context.Context, id int64) (metadata.Series, error) {
	if id <= 0 {
		return metadata.Series{}, errors.New("series id must be positive")
	}
	var payload seriesDetails
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &payload); err != nil {
		return metadata.Series{}, err
	}
	return metadata.Series{
		ID:           id,
		Name:         payload.Name,
		OriginalName: payload.OriginalName,
		Overview:     payload.Overview,
		FirstAirDate: payload.FirstAirDate,
		Poster:       payload.PosterPath,
		SeasonCount:  payload.NumberOfSeasons,
	}, nil
}

// LoadEpisodes populates series.Episodes for the given seasons. A nil
// slice loads every season. Seasons the API cannot serve are skipped.
func (c *Client) LoadEpisodes(ctx context.Context, series *metadata.Series, seasons []int) error {
	if series == nil {
		return errors.New("series must not be nil")
	}
	if seasons == nil {
		details, err := c.SeriesDetails(ctx, series.ID)
		if err != nil {
			return err
		}
		series.SeasonCount = details.SeasonCount
		for s := 1; s <= details.SeasonCount; s++ {
			seasons = append(seasons, s)
		}
	}
	for _, season := range seasons {
		var payload seasonDetails
		if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", series.ID, season), nil, &payload); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		for _, item := range payload.Episodes {
			sn := item.SeasonNumber
			if sn == 0 {
				sn = season
			}
			series.SetEpisode(metadata.Episode{
				Season:   sn,
				Episode:  item.EpisodeNumber,
				Title:    item.Name,
				Overview: item.Overview,
				AirDate:  item.AirDate,
				Still:    item.StillPath,
			})
		}
	}
	return nil
}
