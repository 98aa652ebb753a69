// Package omdb implements the metadata.Provider interface against the
// Open Movie Database API. It is a drop-in alternative to the TMDB
// client: the numeric part of the IMDB id (tt0903747 -> 903747) is
// stored in the Series.ID field so the rest of the application works
// unchanged. OMDB only serves English titles, so loaded titles are
// optionally translated through Wikidata on a best-effort basis.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mediaclean/internal/metadata"
	"mediaclean/internal/metadata/wikidata"
)

// DefaultBaseURL is the production OMDB API endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

// Translator resolves IMDB ids to localized labels. Satisfied by
// *wikidata.Client; nil disables translation.
type Translator interface {
	Labels(ctx context.Context, imdbIDs []string) map[string]string
}

// Client provides access to the OMDB API for TV series lookups.
type Client struct {
	apiKey     string
	baseURL    string
	translator Translator
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
			c.baseURL = baseURL
		}
	}
}

// WithTranslator replaces the default Wikidata translator. Passing nil
// disables title translation.
func WithTranslator(tr Translator) Option {
	return func(c *Client) {
		c.translator = tr
	}
}

// New creates an OMDB client. The language selects the Wikidata label
// language ("es-ES" requests "es" labels); OMDB itself has no language
// parameter.
func New(apiKey, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	labelLang, _, _ := strings.Cut(strings.TrimSpace(language), "-")
	client := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		translator: wikidata.New(labelLang),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// IMDBIDToInt converts "tt0903747" to 903747.
func IMDBIDToInt(imdbID string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(imdbID, "tt"), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// IntToIMDBID converts 903747 to "tt0903747".
func IntToIMDBID(n int64) string {
	return fmt.Sprintf("tt%07d", n)
}

// blankNA maps OMDB's "N/A" placeholder to an empty string.
func blankNA(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("omdb returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode omdb response: %w", err)
	}
	return nil
}

type apiStatus struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// err reports the error OMDB signals inside the JSON body, if any.
func (s apiStatus) err() error {
	if s.Response == "False" {
		if s.Error == "" {
			return errors.New("unknown omdb error")
		}
		return errors.New(s.Error)
	}
	return nil
}

type searchResponse struct {
	apiStatus
	Search []struct {
		Title  string `json:"Title"`
		Year   string `json:"Year"`
		IMDBID string `json:"imdbID"`
		Poster string `json:"Poster"`
	} `json:"Search"`
}

type seriesResponse struct {
	apiStatus
	Title        string `json:"Title"`
	Year         string `json:"Year"`
	Plot         string `json:"Plot"`
	Poster       string `json:"Poster"`
	TotalSeasons string `json:"totalSeasons"`
}

type seasonResponse struct {
	apiStatus
	Episodes []struct {
		Title    string `json:"Title"`
		Released string `json:"Released"`
		Episode  string `json:"Episode"`
		IMDBID   string `json:"imdbID"`
	} `json:"Episodes"`
}

// Search looks up TV series by name. Series names are translated via
// Wikidata when a localized label exists.
func (c *Client) Search(ctx context.Context, query string) ([]metadata.Series, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("s", query)
	params.Set("type", "series")

	var payload searchResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, err
	}
	if err := payload.err(); err != nil {
		return nil, err
	}

	results := make([]metadata.Series, 0, len(payload.Search))
	imdbIDs := make([]string, 0, len(payload.Search))
	for _, item := range payload.Search {
		results = append(results, metadata.Series{
			ID:           IMDBIDToInt(item.IMDBID),
			Name:         item.Title,
			OriginalName: item.Title,
			FirstAirDate: item.Year,
			Poster:       blankNA(item.Poster),
		})
		if item.IMDBID != "" {
			imdbIDs = append(imdbIDs, item.IMDBID)
		}
	}

	if c.translator != nil {
		labels := c.translator.Labels(ctx, imdbIDs)
		for i := range results {
			if label, ok := labels[IntToIMDBID(results[i].ID)]; ok {
				results[i].Name = label
			}
		}
	}
	return results, nil
}

// SeriesDetails fetches series-level metadata by numeric IMDB id.
func (c *Client) SeriesDetails(ctx context.Context, id int64) (metadata.Series, error) {
	if id <= 0 {
		return metadata.Series{}, errors.New("series id must be positive")
	}
	params := url.Values{}
	params.Set("i", IntToIMDBID(id))
	params.Set("type", "series")

	var payload seriesResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return metadata.Series{}, err
	}
	if err := payload.err(); err != nil {
		return metadata.Series{}, err
	}

	totalSeasons, _ := strconv.Atoi(payload.TotalSeasons)
	return metadata.Series{
		ID:           id,
		Name:         payload.Title,
		OriginalName: payload.Title,
		Overview:     blankNA(payload.Plot),
		FirstAirDate: payload.Year,
		Poster:       blankNA(payload.Poster),
		SeasonCount:  totalSeasons,
	}, nil
}

// LoadEpisodes populates series.Episodes for the given seasons. A nil
// slice loads every season; seasons OMDB cannot serve are skipped.
// Afterwards the series name and episode titles are translated via
// Wikidata where localized labels exist; translation failures keep the
// English titles.
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

	// Episode key -> IMDB id, for the translation pass.
	episodeIMDB := make(map[string]string)
	for _, season := range seasons {
		params := url.Values{}
		params.Set("i", IntToIMDBID(series.ID))
		params.Set("Season", strconv.Itoa(season))

		var payload seasonResponse
		if err := c.get(ctx, params, &payload); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		if payload.err() != nil {
			continue
		}
		for _, item := range payload.Episodes {
			epNum, err := strconv.Atoi(item.Episode)
			if err != nil {
				continue
			}
			series.SetEpisode(metadata.Episode{
				Season:  season,
				Episode: epNum,
				Title:   blankNA(item.Title),
				AirDate: blankNA(item.Released),
			})
			if item.IMDBID != "" {
				episodeIMDB[metadata.EpisodeKey(season, epNum)] = item.IMDBID
			}
		}
	}

	c.translate(ctx, series, episodeIMDB)
	return nil
}

func (c *Client) translate(ctx context.Context, series *metadata.Series, episodeIMDB map[string]string) {
	if c.translator == nil {
		return
	}
	seriesIMDB := IntToIMDBID(series.ID)
	allIDs := make([]string, 0, len(episodeIMDB)+1)
	allIDs = append(allIDs, seriesIMDB)
	for _, id := range episodeIMDB {
		allIDs = append(allIDs, id)
	}

	labels := c.translator.Labels(ctx, allIDs)
	if label, ok := labels[seriesIMDB]; ok {
		series.Name = label
	}
	for key, imdbID := range episodeIMDB {
		label, ok := labels[imdbID]
		if !ok {
			continue
		}
		if ep, exists := series.Episodes[key]; exists {
			ep.Title = label
			series.Episodes[key] = ep
		}
	}
}
