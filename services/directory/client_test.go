package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchNormalizesPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "oxford" {
			t.Errorf("name param = %q, want oxford", got)
		}
		if got := r.URL.Query().Get("country"); got != "United Kingdom" {
			t.Errorf("country param = %q, want United Kingdom", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "University of Oxford", "country": "United Kingdom", "state-province": "Oxfordshire", "web_pages": ["https://ox.ac.uk", "https://oxford.example"]},
			{"country": "United Kingdom", "web_pages": []}
		]`))
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	got, err := client.Search(context.Background(), "oxford", "United Kingdom")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}

	first := got[0]
	if first.ID != 0 {
		t.Errorf("external record ID = %d, want 0 (unresolved)", first.ID)
	}
	if first.Name != "University of Oxford" {
		t.Errorf("name = %q", first.Name)
	}
	if first.City != "Oxfordshire" {
		t.Errorf("city = %q, want state-province value", first.City)
	}
	if first.Website != "https://ox.ac.uk" {
		t.Errorf("website = %q, want first web page", first.Website)
	}
	if first.Latitude == nil || *first.Latitude != 0.0 {
		t.Errorf("latitude should default to 0.0, got %v", first.Latitude)
	}

	second := got[1]
	if second.Name != UnknownName {
		t.Errorf("missing name should default to %q, got %q", UnknownName, second.Name)
	}
	if second.Website != "" {
		t.Errorf("empty web_pages should leave website blank, got %q", second.Website)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	if _, err := client.Search(context.Background(), "x", ""); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestSearchMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	if _, err := client.Search(context.Background(), "", ""); err == nil {
		t.Fatal("expected error on malformed payload")
	}
}

func TestSearchUnreachable(t *testing.T) {
	client := NewClient()
	client.BaseURL = "http://127.0.0.1:1"

	if _, err := client.Search(context.Background(), "", ""); err == nil {
		t.Fatal("expected error when the directory is unreachable")
	}
}
