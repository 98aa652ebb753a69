// Package wikidata translates IMDB ids to localized titles through the
// Wikidata SPARQL endpoint. OMDB only serves English titles; Wikidata
// stores multilingual labels indexed by IMDB id (property P345), so a
// batch query can swap English titles for localized ones.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mediaclean/internal/logging"
)

// DefaultEndpoint is the public Wikidata Query Service.
const DefaultEndpoint = "https://query.wikidata.org/sparql"

// batchSize caps IMDB ids per SPARQL query to stay within payload limits.
const batchSize = 200

// Client queries Wikidata for localized labels of IMDB entities.
type Client struct {
	endpoint   string
	language   string
	logger     *slog.Logger
	httpClient *http.Client
}

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

// WithEndpoint overrides the SPARQL endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithLogger attaches a logger for query failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Wikidata client. Labels are requested in the given
// language with an English fallback.
func New(language string, opts ...Option) *Client {
	language = strings.TrimSpace(language)
	if language == "" {
		language = "en"
	}
	client := &Client{
		endpoint:   DefaultEndpoint,
		language:   language,
		logger:     logging.NewNop(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Labels maps IMDB ids to their label in the configured language.
// Missing entries (no Wikidata item, or label is just a Q-id) are
// omitted. Lookups are best-effort: a failed batch contributes nothing
// rather than failing the whole call.
func (c *Client) Labels(ctx context.Context, imdbIDs []string) map[string]string {
	labels := make(map[string]string)
	for start := 0; start < len(imdbIDs); start += batchSize {
		end := start + batchSize
		if end > len(imdbIDs) {
			end = len(imdbIDs)
		}
		for id, label := range c.queryBatch(ctx, imdbIDs[start:end]) {
			labels[id] = label
		}
	}
	return labels
}

type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

func (c *Client) queryBatch(ctx context.Context, imdbIDs []string) map[string]string {
	values := make([]string, 0, len(imdbIDs))
	for _, id := range imdbIDs {
		values = append(values, fmt.Sprintf("%q", id))
	}
	sparql := fmt.Sprintf(`SELECT ?imdbId ?itemLabel WHERE {
  VALUES ?imdbId { %s }
  ?item wdt:P345 ?imdbId .
  SERVICE wikibase:label { bd:serviceParam wikibase:language %q . }
}`, strings.Join(values, " "), c.language+",en")

	body := url.Values{"query": {sparql}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "mediaclean/1.0 (TV series renamer)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("wikidata query failed", logging.Error(err))
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("wikidata query failed", logging.Int("status", resp.StatusCode))
		return nil
	}

	var payload sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("wikidata response parse error", logging.Error(err))
		return nil
	}

	labels := make(map[string]string, len(payload.Results.Bindings))
	for _, row := range payload.Results.Bindings {
		imdbID := row["imdbId"].Value
		label := row["itemLabel"].Value
		if imdbID == "" || label == "" {
			continue
		}
		if isBareQID(label) {
			continue
		}
		labels[imdbID] = label
	}
	return labels
}

// isBareQID reports whether a label is just the entity id (e.g.
// "Q12345"), which Wikidata returns when no label exists in any
// requested language.
func isBareQID(label string) bool {
	if len(label) < 2 || label[0] != 'Q' {
		return false
	}
	for _, r := range label[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
