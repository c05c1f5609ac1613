package reconcile

import (
	"strings"
	"testing"

	"github.com/genfuture/careers-api/model"
)

// fakeFinder implements UniversityFinder over an in-memory slice using
// the same case-insensitive semantics as the catalog store.
type fakeFinder struct {
	universities []model.University
}

func (f *fakeFinder) FindByNameCountry(name, country string) (*model.University, error) {
	for i := range f.universities {
		u := &f.universities[i]
		if strings.ToLower(u.Name) != name {
			continue
		}
		if country != "" && strings.ToLower(u.Country) != country {
			continue
		}
		return u, nil
	}
	return nil, nil
}

func (f *fakeFinder) FindByNameCountryCity(name, country, city string) (*model.University, error) {
	for i := range f.universities {
		u := &f.universities[i]
		if strings.ToLower(u.Name) != name {
			continue
		}
		if country != "" && strings.ToLower(u.Country) != country {
			continue
		}
		if strings.ToLower(u.City) != city {
			continue
		}
		return u, nil
	}
	return nil, nil
}

func (f *fakeFinder) FindByNameContains(name, country string) (*model.University, error) {
	for i := range f.universities {
		u := &f.universities[i]
		if !strings.Contains(strings.ToLower(u.Name), name) {
			continue
		}
		if country != "" && strings.ToLower(u.Country) != country {
			continue
		}
		return u, nil
	}
	return nil, nil
}

func external(name, country, city string) model.University {
	return model.University{ID: 0, Name: name, Country: country, City: city}
}

func TestReconcileStrictMatch(t *testing.T) {
	finder := &fakeFinder{universities: []model.University{
		{ID: 7, Name: "Harvard University", Country: "United States", City: "Cambridge"},
	}}
	r := NewReconciler(finder)

	got := r.Reconcile([]model.University{
		external("harvard university", "united states", ""),
	})

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].ID != 7 {
		t.Errorf("ID = %d, want 7 (strict tier)", got[0].ID)
	}
}

func TestReconcileStrictBeatsCityAndPartial(t *testing.T) {
	// The strict candidate and a city-qualified candidate both exist;
	// the strict tier must fire first and take the first strict match.
	finder := &fakeFinder{universities: []model.University{
		{ID: 1, Name: "MIT", Country: "United States", City: "Cambridge"},
		{ID: 2, Name: "MIT", Country: "United States", City: "Boston"},
	}}
	r := NewReconciler(finder)

	got := r.Reconcile([]model.University{
		external("MIT", "United States", "Boston"),
	})

	if got[0].ID != 1 {
		t.Errorf("ID = %d, want 1 (first strict match wins before city tier runs)", got[0].ID)
	}
}

// scriptedFinder returns canned answers per lookup and records the
// order in which tiers were attempted.
type scriptedFinder struct {
	strict  *model.University
	city    *model.University
	partial *model.University
	calls   []string
}

func (f *scriptedFinder) FindByNameCountry(name, country string) (*model.University, error) {
	f.calls = append(f.calls, "strict")
	return f.strict, nil
}

func (f *scriptedFinder) FindByNameCountryCity(name, country, city string) (*model.University, error) {
	f.calls = append(f.calls, "city")
	return f.city, nil
}

func (f *scriptedFinder) FindByNameContains(name, country string) (*model.University, error) {
	f.calls = append(f.calls, "partial")
	return f.partial, nil
}

func TestReconcileCityTierRunsAfterStrict(t *testing.T) {
	finder := &scriptedFinder{city: &model.University{ID: 3}}
	r := NewReconciler(finder)

	got := r.Reconcile([]model.University{
		external("sorbonne university", "france", "paris"),
	})

	if got[0].ID != 3 {
		t.Errorf("ID = %d, want 3 (city tier)", got[0].ID)
	}
	want := []string{"strict", "city"}
	if len(finder.calls) != 2 || finder.calls[0] != want[0] || finder.calls[1] != want[1] {
		t.Errorf("tier order = %v, want %v (partial must not run)", finder.calls, want)
	}
}

func TestReconcileCityTierSkippedWithoutCity(t *testing.T) {
	finder := &scriptedFinder{partial: &model.University{ID: 8}}
	r := NewReconciler(finder)

	got := r.Reconcile([]model.University{
		external("some college", "spain", ""),
	})

	if got[0].ID != 8 {
		t.Errorf("ID = %d, want 8 (partial tier)", got[0].ID)
	}
	for _, call := range finder.calls {
		if call == "city" {
			t.Errorf("city tier ran without an external city: %v", finder.calls)
		}
	}
}

func TestReconcilePartialTier(t *testing.T) {
	finder := &fakeFinder{universities: []model.University{
		{ID: 9, Name: "University of California Berkeley", Country: "United States", City: "Berkeley"},
	}}
	r := NewReconciler(finder)

	got := r.Reconcile([]model.University{
		external("Berkeley", "United States", ""),
	})

	if got[0].ID != 9 {
		t.Errorf("ID = %d, want 9 (partial tier, substring containment)", got[0].ID)
	}
}

func TestReconcileCountryMismatchBlocksMatch(t *testing.T) {
	finder := &fakeFinder{universities: []model.University{
		{ID: 4, Name: "University of Cambridge", Country: "United Kingdom", City: "Cambridge"},
	}}
	r := NewReconciler(finder)

	got := r.Reconcile([]model.University{
		external("University of Cambridge", "Canada", ""),
	})

	if got[0].ID != 0 {
		t.Errorf("ID = %d, want 0 (country mismatch must not match)", got[0].ID)
	}
}

func TestReconcileNoMatchKeepsZeroID(t *testing.T) {
	r := NewReconciler(&fakeFinder{})

	got := r.Reconcile([]model.University{
		external("Nonexistent University", "Nowhere", ""),
	})

	if len(got) != 1 || got[0].ID != 0 {
		t.Errorf("unmatched record must keep ID 0, got %+v", got)
	}
}

func TestDedupeFirstSeenOrder(t *testing.T) {
	records := []model.University{
		{ID: 1, Name: "A", Country: "X", City: "C1"},
		{ID: 2, Name: "B", Country: "Y", City: "C2"},
		{ID: 1, Name: "A", Country: "X", City: "C1"}, // duplicate of first
		{ID: 0, Name: "A", Country: "X", City: "C1"}, // different id, kept
	}

	got := Dedupe(records)

	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].Name != "A" || got[0].ID != 1 {
		t.Errorf("first record changed: %+v", got[0])
	}
	if got[1].Name != "B" {
		t.Errorf("order not preserved: second = %+v", got[1])
	}
	if got[2].ID != 0 {
		t.Errorf("distinct id tuple dropped: %+v", got[2])
	}
}

func TestReconcileDeduplicatesOutput(t *testing.T) {
	finder := &fakeFinder{universities: []model.University{
		{ID: 5, Name: "Stanford University", Country: "United States", City: ""},
	}}
	r := NewReconciler(finder)

	// Two external records normalize to the same (name, country, city)
	// and both resolve to ID 5: they must collapse to one entry.
	got := r.Reconcile([]model.University{
		external("Stanford University", "United States", ""),
		external("Stanford University", "United States", ""),
	})

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1 after dedupe", len(got))
	}
	if got[0].ID != 5 {
		t.Errorf("ID = %d, want 5", got[0].ID)
	}
}
