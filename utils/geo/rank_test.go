package geo

import (
	"math"
	"testing"

	"github.com/genfuture/careers-api/model"
)

func uni(name string, lat, lon float64) model.University {
	return model.University{Name: name, Latitude: &lat, Longitude: &lon}
}

func TestRankNearbyOrdering(t *testing.T) {
	candidates := []model.University{
		uni("far", 1, 1),
		uni("near", 0, 0.1),
		uni("mid", 0, 0.5),
	}

	got := RankNearby(candidates, 0, 0, 20, 0)

	wantOrder := []string{"near", "mid", "far"}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestRankNearbyNonDecreasing(t *testing.T) {
	candidates := []model.University{
		uni("a", 48.8566, 2.3522),
		uni("b", 42.3744, -71.1169),
		uni("c", -33.8886, 151.1873),
		uni("d", 51.7548, -1.2544),
		{Name: "e"}, // no coordinates
	}

	got := RankNearby(candidates, 40.0, -3.7, 100, 0)

	prev := -1.0
	for _, u := range got {
		d := Distance(40.0, -3.7, &u)
		if !math.IsInf(d, 1) && d < prev {
			t.Fatalf("distances not non-decreasing: %v after %v", d, prev)
		}
		prev = d
	}
}

func TestRankNearbyMissingCoordinatesLast(t *testing.T) {
	candidates := []model.University{
		{Name: "unknown"},
		uni("one-east", 0, 1),
		uni("origin", 0, 0),
		uni("one-north", 1, 0),
	}

	got := RankNearby(candidates, 0, 0, 20, 0)

	if got[0].Name != "origin" {
		t.Errorf("first = %q, want origin", got[0].Name)
	}
	if got[len(got)-1].Name != "unknown" {
		t.Errorf("last = %q, want unknown (missing coords sorts last)", got[len(got)-1].Name)
	}
}

func TestRankNearbyStableOnTies(t *testing.T) {
	// All four share the Infinite sentinel; input order must survive
	candidates := []model.University{
		{Name: "first"},
		{Name: "second"},
		{Name: "third"},
		{Name: "fourth"},
	}

	got := RankNearby(candidates, 0, 0, 20, 0)

	wantOrder := []string{"first", "second", "third", "fourth"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Errorf("tie order broken at %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{20, 20},
		{100, 100},
		{101, 100},
		{100000, 100},
	}
	for _, c := range cases {
		if got := ClampLimit(c.in); got != c.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClampOffset(t *testing.T) {
	if got := ClampOffset(-10); got != 0 {
		t.Errorf("ClampOffset(-10) = %d, want 0", got)
	}
	if got := ClampOffset(7); got != 7 {
		t.Errorf("ClampOffset(7) = %d, want 7", got)
	}
}

func TestRankNearbyPagination(t *testing.T) {
	candidates := make([]model.University, 0, 10)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, uni("u", 0, float64(i)))
	}

	page := RankNearby(candidates, 0, 0, 3, 4)
	if len(page) != 3 {
		t.Fatalf("page length = %d, want 3", len(page))
	}
	if *page[0].Longitude != 4.0 {
		t.Errorf("page starts at lon %v, want 4", *page[0].Longitude)
	}

	// Offset past the end yields an empty page
	empty := RankNearby(candidates, 0, 0, 5, 50)
	if len(empty) != 0 {
		t.Errorf("page past end has %d items, want 0", len(empty))
	}

	// Limit above the cap never returns more than MaxLimit
	capped := RankNearby(candidates, 0, 0, 500, 0)
	if len(capped) > MaxLimit {
		t.Errorf("capped page has %d items, want <= %d", len(capped), MaxLimit)
	}

	// Limit below 1 is treated as 1
	one := RankNearby(candidates, 0, 0, 0, 0)
	if len(one) != 1 {
		t.Errorf("limit 0 page has %d items, want 1", len(one))
	}
}
