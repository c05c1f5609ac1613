package database

import (
	"strings"

	"github.com/genfuture/careers-api/model"
	"gorm.io/gorm"
)

// CatalogStore answers the lookup queries used by the directory search
// path: the reconciler's tiered matching and the local fallback search.
// All matching is case-insensitive.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a catalog store on top of an existing connection
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// FindByNameCountry returns the first university whose name equals the
// given name; country narrows the match only when provided. A miss
// returns (nil, nil), not an error.
func (s *CatalogStore) FindByNameCountry(name, country string) (*model.University, error) {
	q := s.db.Where("LOWER(name) = ?", strings.ToLower(name))
	if country != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	return first(q)
}

// FindByNameCountryCity is FindByNameCountry further narrowed by city.
func (s *CatalogStore) FindByNameCountryCity(name, country, city string) (*model.University, error) {
	q := s.db.Where("LOWER(name) = ?", strings.ToLower(name))
	if country != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	q = q.Where("LOWER(city) = ?", strings.ToLower(city))
	return first(q)
}

// FindByNameContains returns the first university whose name contains
// the given name as a substring, optionally narrowed by country.
func (s *CatalogStore) FindByNameContains(name, country string) (*model.University, error) {
	q := s.db.Where("name ILIKE ?", "%"+strings.ToLower(name)+"%")
	if country != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	return first(q)
}

// Search performs the local fallback query used when the external
// directory is unreachable or empty: substring match on name, exact
// (case-insensitive) match on country, bounded by limit.
func (s *CatalogStore) Search(name, country string, limit int) ([]model.University, error) {
	q := s.db.Model(&model.University{})
	if name != "" {
		q = q.Where("name ILIKE ?", "%"+strings.TrimSpace(name)+"%")
	}
	if country != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(strings.TrimSpace(country)))
	}

	var universities []model.University
	if err := q.Limit(limit).Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}

func first(q *gorm.DB) (*model.University, error) {
	var university model.University
	if err := q.First(&university).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &university, nil
}
