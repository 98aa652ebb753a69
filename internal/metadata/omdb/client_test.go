package omdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediaclean/internal/metadata"
	"mediaclean/internal/metadata/omdb"
)

type stubTranslator map[string]string

func (s stubTranslator) Labels(_ context.Context, imdbIDs []string) map[string]string {
	out := make(map[string]string)
	for _, id := range imdbIDs {
		if label, ok := s[id]; ok {
			out[id] = label
		}
	}
	return out
}

func TestIMDBIDConversion(t *testing.T) {
	if got := omdb.IMDBIDToInt("tt0903747"); got != 903747 {
		t.Errorf("IMDBIDToInt = %d", got)
	}
	if got := omdb.IntToIMDBID(903747); got != "tt0903747" {
		t.Errorf("IntToIMDBID = %q", got)
	}
	if got := omdb.IntToIMDBID(12345678); got != "tt12345678" {
		t.Errorf("IntToIMDBID should not truncate long ids, got %q", got)
	}
	if got := omdb.IMDBIDToInt("garbage"); got != 0 {
		t.Errorf("IMDBIDToInt(garbage) = %d", got)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := omdb.New("", "es-ES"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestSearchTranslatesNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "key" {
			t.Fatalf("expected apikey parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("type") != "series" {
			t.Fatalf("expected type=series, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"True","Search":[
			{"Title":"Money Heist","Year":"2017-2021","imdbID":"tt6468322","Poster":"N/A"}
		]}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", "es-ES",
		omdb.WithBaseURL(server.URL),
		omdb.WithTranslator(stubTranslator{"tt6468322": "La casa de papel"}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	results, err := client.Search(context.Background(), "Money Heist")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("unexpected results: %#v", results)
	}
	if results[0].Name != "La casa de papel" {
		t.Errorf("name should be translated, got %q", results[0].Name)
	}
	if results[0].OriginalName != "Money Heist" {
		t.Errorf("original name should stay English, got %q", results[0].OriginalName)
	}
	if results[0].Poster != "" {
		t.Errorf("N/A poster should be blanked, got %q", results[0].Poster)
	}
	if results[0].ID != 6468322 {
		t.Errorf("ID = %d", results[0].ID)
	}
}

func TestSearchResponseFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", "", omdb.WithBaseURL(server.URL), omdb.WithTranslator(nil))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), "nope"); err == nil {
		t.Fatal("Response=False should surface as an error")
	}
}

func TestLoadEpisodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("Season") {
		case "1":
			_, _ = w.Write([]byte(`{"Response":"True","Episodes":[
				{"Title":"Pilot","Released":"2008-01-20","Episode":"1","imdbID":"tt0959621"},
				{"Title":"N/A","Released":"N/A","Episode":"2","imdbID":"tt0962550"}
			]}`))
		case "7":
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Series or season not found!"}`))
		default:
			t.Fatalf("unexpected query %q", r.URL.RawQuery)
		}
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", "es-ES",
		omdb.WithBaseURL(server.URL),
		omdb.WithTranslator(stubTranslator{"tt0959621": "Piloto"}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	series := metadata.Series{ID: 903747, Name: "Breaking Bad"}
	if err := client.LoadEpisodes(context.Background(), &series, []int{1, 7}); err != nil {
		t.Fatalf("LoadEpisodes returned error: %v", err)
	}
	if len(series.Episodes) != 2 {
		t.Fatalf("expected 2 episodes, got %#v", series.Episodes)
	}
	ep, _ := series.Episode(1, 1)
	if ep.Title != "Piloto" {
		t.Errorf("S01E01 title should be translated, got %q", ep.Title)
	}
	ep, _ = series.Episode(1, 2)
	if ep.Title != "" || ep.AirDate != "" {
		t.Errorf("N/A fields should be blanked, got %+v", ep)
	}
}
