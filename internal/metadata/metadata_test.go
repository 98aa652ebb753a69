package metadata_test

import (
	"testing"

	"mediaclean/internal/metadata"
)

func TestEpisodeKey(t *testing.T) {
	if got := metadata.EpisodeKey(1, 5); got != "S01E05" {
		t.Errorf("EpisodeKey(1, 5) = %q", got)
	}
	if got := metadata.EpisodeKey(12, 345); got != "S12E345" {
		t.Errorf("EpisodeKey(12, 345) = %q", got)
	}
}

func TestSeriesEpisodeLookup(t *testing.T) {
	var s metadata.Series
	if _, ok := s.Episode(1, 1); ok {
		t.Fatal("empty series should have no episodes")
	}
	s.SetEpisode(metadata.Episode{Season: 1, Episode: 1, Title: "Pilot"})
	ep, ok := s.Episode(1, 1)
	if !ok || ep.Title != "Pilot" {
		t.Fatalf("Episode(1,1) = %+v, %v", ep, ok)
	}
}

func TestPosterURL(t *testing.T) {
	const base = "https://image.tmdb.org/t/p/w200"
	cases := []struct {
		poster string
		want   string
	}{
		{"", ""},
		{"/abc.jpg", base + "/abc.jpg"},
		{"https://example.com/poster.jpg", "https://example.com/poster.jpg"},
	}
	for _, tc := range cases {
		s := metadata.Series{Poster: tc.poster}
		if got := s.PosterURL(base); got != tc.want {
			t.Errorf("PosterURL with poster %q = %q, want %q", tc.poster, got, tc.want)
		}
	}
}
