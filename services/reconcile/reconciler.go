package reconcile

import (
	"log"
	"strings"

	"github.com/genfuture/careers-api/model"
)

// UniversityFinder answers the single-record lookups the matching tiers
// need. The database package provides the GORM-backed implementation;
// tests use an in-memory fake. A miss is (nil, nil), never an error.
type UniversityFinder interface {
	FindByNameCountry(name, country string) (*model.University, error)
	FindByNameCountryCity(name, country, city string) (*model.University, error)
	FindByNameContains(name, country string) (*model.University, error)
}

// Matcher is one strategy in the ordered match-attempt sequence. It
// receives the normalized keys of an external record and returns the
// local match, if any.
type Matcher struct {
	Name string
	Find func(finder UniversityFinder, name, country, city string) (*model.University, error)
}

func matchStrict(finder UniversityFinder, name, country, _ string) (*model.University, error) {
	return finder.FindByNameCountry(name, country)
}

// matchCity only fires when the external record carries a city
func matchCity(finder UniversityFinder, name, country, city string) (*model.University, error) {
	if city == "" {
		return nil, nil
	}
	return finder.FindByNameCountryCity(name, country, city)
}

func matchPartial(finder UniversityFinder, name, country, _ string) (*model.University, error) {
	return finder.FindByNameContains(name, country)
}

// Reconciler assigns local identity to externally-sourced university
// records. Tiers run in order; the first tier that yields a match wins
// and later tiers are skipped for that record.
type Reconciler struct {
	finder   UniversityFinder
	matchers []Matcher
}

// NewReconciler creates a reconciler with the standard tier order:
// strict name+country, then city-qualified, then partial name.
func NewReconciler(finder UniversityFinder) *Reconciler {
	return &Reconciler{
		finder: finder,
		matchers: []Matcher{
			{Name: "strict", Find: matchStrict},
			{Name: "city", Find: matchCity},
			{Name: "partial", Find: matchPartial},
		},
	}
}

// Reconcile maps each record to its local identity where one exists and
// deduplicates the result. Records that match nothing keep ID 0.
// Matching never fails the call: a lookup error just means "no match"
// for that tier.
func (r *Reconciler) Reconcile(universities []model.University) []model.University {
	matchedByTier := make(map[string]int, len(r.matchers))
	matched := 0

	mapped := make([]model.University, 0, len(universities))
	for _, uni := range universities {
		nameKey := strings.ToLower(strings.TrimSpace(uni.Name))
		countryKey := strings.ToLower(strings.TrimSpace(uni.Country))
		cityKey := strings.ToLower(strings.TrimSpace(uni.City))

		for _, m := range r.matchers {
			local, err := m.Find(r.finder, nameKey, countryKey, cityKey)
			if err != nil {
				log.Printf("[reconcile] %s lookup failed for %q: %v", m.Name, uni.Name, err)
				continue
			}
			if local != nil {
				// Real local ID lets clients fetch nested courses
				uni.ID = local.ID
				matched++
				matchedByTier[m.Name]++
				break
			}
		}

		mapped = append(mapped, uni)
	}

	log.Printf("[reconcile] total=%d matched_local=%d (strict=%d, city=%d, partial=%d)",
		len(mapped), matched, matchedByTier["strict"], matchedByTier["city"], matchedByTier["partial"])

	return Dedupe(mapped)
}

type dedupeKey struct {
	name    string
	country string
	city    string
	id      uint
}

// Dedupe collapses records sharing (name, country, city, id). The first
// occurrence wins and first-seen order is preserved.
func Dedupe(universities []model.University) []model.University {
	seen := make(map[dedupeKey]bool, len(universities))
	result := make([]model.University, 0, len(universities))

	for _, uni := range universities {
		key := dedupeKey{name: uni.Name, country: uni.Country, city: uni.City, id: uni.ID}
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, uni)
	}

	return result
}
