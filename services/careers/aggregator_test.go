package careers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genfuture/careers-api/model"
)

func TestMergeLocalWinsOnNameCollision(t *testing.T) {
	external := []ExternalCareer{
		{Name: "Software Developer", Description: "external copy", AvgSalary: "external salary"},
		{Name: "Only External", Description: "kept"},
	}
	local := []model.CareerPath{
		{ID: 12, CourseID: 3, Name: "Software Developer", Description: "local copy", AvgSalary: "$90k"},
	}

	merged := Merge(external, local, 3)

	var devCount int
	var dev model.CareerPath
	for _, cp := range merged {
		if cp.Name == "Software Developer" {
			devCount++
			dev = cp
		}
	}

	if devCount != 1 {
		t.Fatalf("got %d entries named Software Developer, want 1", devCount)
	}
	if dev.ID != 12 || dev.Description != "local copy" {
		t.Errorf("merged entry is not the local one: %+v", dev)
	}
	if len(merged) != 2 {
		t.Errorf("merged length = %d, want 2", len(merged))
	}
}

func TestMergeInsertionOrder(t *testing.T) {
	external := []ExternalCareer{
		{Name: "A"},
		{Name: "B"},
	}
	local := []model.CareerPath{
		{Name: "B"}, // collides, keeps position of first insertion
		{Name: "C"},
	}

	merged := Merge(external, local, 1)

	wantOrder := []string{"A", "B", "C"}
	if len(merged) != len(wantOrder) {
		t.Fatalf("merged length = %d, want %d", len(merged), len(wantOrder))
	}
	for i, name := range wantOrder {
		if merged[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, merged[i].Name, name)
		}
	}
}

func TestFetchExternalNoCredentialsUsesFallback(t *testing.T) {
	a := NewAggregator("", "")

	got := a.FetchExternal(context.Background(), "Computer Science")
	if len(got) == 0 {
		t.Fatal("expected curated fallback careers for computer science")
	}
	if got[0].Name != "Software Engineer" {
		t.Errorf("first fallback career = %q, want Software Engineer", got[0].Name)
	}
}

func TestFetchExternalNoCredentialsUnknownCourse(t *testing.T) {
	a := NewAggregator("", "")

	got := a.FetchExternal(context.Background(), "Underwater Basket Weaving")
	if len(got) != 0 {
		t.Errorf("unknown course must yield empty external set, got %d", len(got))
	}
}

func TestFetchExternalPartialCredentialsSkipNetwork(t *testing.T) {
	// Only one of the two keys present: behaves as unconfigured
	a := NewAggregator("onet-key", "")

	got := a.FetchExternal(context.Background(), "finance")
	if len(got) != 2 {
		t.Errorf("expected curated finance careers, got %d", len(got))
	}
}

func TestSearchCareersListPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, _, ok := r.BasicAuth(); !ok || user != "test-key" {
			t.Errorf("missing basic auth with API key as username")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title": "Software Developer", "summary": "Writes software."}]`))
	}))
	defer server.Close()

	client := NewONetClient("test-key")
	client.BaseURL = server.URL

	got, err := client.SearchCareers(context.Background(), "computer science")
	if err != nil {
		t.Fatalf("SearchCareers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if got[0].Name != "Software Developer" || got[0].Description != "Writes software." {
		t.Errorf("unexpected item: %+v", got[0])
	}
	if got[0].AvgSalary != SalaryPlaceholder {
		t.Errorf("salary = %q, want BLS placeholder", got[0].AvgSalary)
	}
	if got[0].GrowthRate != GrowthPlaceholder {
		t.Errorf("growth = %q, want BLS placeholder", got[0].GrowthRate)
	}
}

func TestSearchCareersWrappedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"careers": [{"career": "Data Analyst", "description": "Analyzes data."}]}`))
	}))
	defer server.Close()

	client := NewONetClient("test-key")
	client.BaseURL = server.URL

	got, err := client.SearchCareers(context.Background(), "statistics")
	if err != nil {
		t.Fatalf("SearchCareers: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Data Analyst" {
		t.Errorf("wrapped payload not decoded: %+v", got)
	}
}

func TestFetchExternalUpstreamErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	a := NewAggregator("key", "key")
	a.onet.BaseURL = server.URL

	got := a.FetchExternal(context.Background(), "medicine")
	if len(got) != 2 {
		t.Fatalf("expected curated medicine fallback after upstream 500, got %d items", len(got))
	}
	if got[0].Name != "Physician (General)" {
		t.Errorf("first fallback career = %q", got[0].Name)
	}
}

func TestFetchExternalEmptyResultFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	a := NewAggregator("key", "key")
	a.onet.BaseURL = server.URL

	got := a.FetchExternal(context.Background(), "electrical engineering")
	if len(got) != 2 {
		t.Errorf("expected curated fallback on empty search, got %d items", len(got))
	}
}
