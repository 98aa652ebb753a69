package metadata

import (
	"context"
	"fmt"
	"strings"
)

// Episode holds per-episode metadata from a provider.
type Episode struct {
	Season   int
	Episode  int
	Title    string
	Overview string
	AirDate  string
	Still    string
}

// Series holds series-level metadata plus any loaded episodes, keyed by
// EpisodeKey.
type Series struct {
	ID           int64
	Name         string
	OriginalName string
	Overview     string
	FirstAirDate string
	Poster       string
	SeasonCount  int
	Episodes     map[string]Episode
}

// EpisodeKey builds the canonical map key for a season/episode pair,
// e.g. "S01E05".
func EpisodeKey(season, episode int) string {
	return fmt.Sprintf("S%02dE%02d", season, episode)
}

// Episode returns the loaded episode for the given pair, if present.
func (s *Series) Episode(season, episode int) (Episode, bool) {
	ep, ok := s.Episodes[EpisodeKey(season, episode)]
	return ep, ok
}

// SetEpisode records an episode under its canonical key, allocating the
// map on first use.
func (s *Series) SetEpisode(ep Episode) {
	if s.Episodes == nil {
		s.Episodes = make(map[string]Episode)
	}
	s.Episodes[EpisodeKey(ep.Season, ep.Episode)] = ep
}

// PosterURL returns a fetchable poster URL. TMDB stores relative paths
// that need the image CDN prefix; OMDB stores full URLs already.
func (s *Series) PosterURL(imageBase string) string {
	if s.Poster == "" {
		return ""
	}
	if strings.HasPrefix(s.Poster, "http") {
		return s.Poster
	}
	return imageBase + s.Poster
}

// Provider is the lookup interface the CLI and organizer work against.
// Implementations live in the tmdb and omdb subpackages.
type Provider interface {
	// Search returns candidate series for a name query, best match first.
	Search(ctx context.Context, query string) ([]Series, error)
	// SeriesDetails fetches full series-level metadata by provider id.
	SeriesDetails(ctx context.Context, id int64) (Series, error)
	// LoadEpisodes populates series.Episodes for the given seasons. A nil
	// seasons slice loads every season the series has. Seasons the
	// provider cannot serve are skipped.
	LoadEpisodes(ctx context.Context, series *Series, seasons []int) error
}
