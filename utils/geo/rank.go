package geo

import (
	"sort"

	"github.com/genfuture/careers-api/model"
)

const (
	// DefaultLimit is the page size applied when the caller sends none
	DefaultLimit = 20
	// MaxLimit caps the page size regardless of what the caller sends
	MaxLimit = 100
)

// ClampLimit forces limit into [1, MaxLimit]
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ClampOffset forces offset to be non-negative
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// SortByDistance orders universities in place by ascending distance
// from the query point. The sort is stable: records with equal
// distances (notably those sharing the Infinite sentinel) keep their
// original relative order.
func SortByDistance(universities []model.University, lat, lon float64) {
	sort.SliceStable(universities, func(i, j int) bool {
		return Distance(lat, lon, &universities[i]) < Distance(lat, lon, &universities[j])
	})
}

// Paginate slices [offset, offset+limit) out of the ranked sequence.
// Clamp limit and offset before calling; a window past the end yields
// an empty slice, never an error.
func Paginate(universities []model.University, limit, offset int) []model.University {
	if offset >= len(universities) {
		return []model.University{}
	}
	end := offset + limit
	if end > len(universities) {
		end = len(universities)
	}
	return universities[offset:end]
}

// RankNearby sorts candidates by proximity to the query point and
// returns the requested page. Pagination bounds are clamped first.
func RankNearby(universities []model.University, lat, lon float64, limit, offset int) []model.University {
	limit = ClampLimit(limit)
	offset = ClampOffset(offset)

	SortByDistance(universities, lat, lon)
	return Paginate(universities, limit, offset)
}
