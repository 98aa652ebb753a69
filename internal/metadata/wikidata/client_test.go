package wikidata_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mediaclean/internal/metadata/wikidata"
)

func TestLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "tt0903747") {
			t.Fatalf("query should carry the imdb id, got %q", body)
		}
		w.Header().Set("Content-Type", "application/sparql-results+json")
		_, _ = w.Write([]byte(`{"results":{"bindings":[
			{"imdbId":{"value":"tt0903747"},"itemLabel":{"value":"Breaking Bad"}},
			{"imdbId":{"value":"tt9999999"},"itemLabel":{"value":"Q12345"}}
		]}}`))
	}))
	t.Cleanup(server.Close)

	client := wikidata.New("es", wikidata.WithEndpoint(server.URL))
	labels := client.Labels(context.Background(), []string{"tt0903747", "tt9999999"})
	if labels["tt0903747"] != "Breaking Bad" {
		t.Errorf("labels = %#v", labels)
	}
	if _, ok := labels["tt9999999"]; ok {
		t.Error("bare Q-id labels should be skipped")
	}
}

func TestLabelsEmptyInput(t *testing.T) {
	client := wikidata.New("es")
	if labels := client.Labels(context.Background(), nil); len(labels) != 0 {
		t.Errorf("expected empty map, got %#v", labels)
	}
}

func TestLabelsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := wikidata.New("es", wikidata.WithEndpoint(server.URL))
	if labels := client.Labels(context.Background(), []string{"tt0903747"}); len(labels) != 0 {
		t.Errorf("failures should yield an empty map, got %#v", labels)
	}
}
