package university

import (
	"log"
	"strconv"

	"github.com/genfuture/careers-api/model"
	"github.com/genfuture/careers-api/utils/geo"
	"github.com/genfuture/careers-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NearbyLiteItem is the flattened projection returned by the lite
// variant: no nested courses, scalar fields only.
type NearbyLiteItem struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Country   string   `json:"country"`
	City      string   `json:"city"`
	Type      string   `json:"type"`
	Ranking   *int     `json:"ranking"`
	Website   string   `json:"website"`
}

// parseNearbyQuery extracts and validates the shared nearby query
// parameters. Pagination values are clamped, never rejected.
func parseNearbyQuery(c *fiber.Ctx) (lat, lon float64, limit, offset int, err error) {
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	if latStr == "" || lonStr == "" {
		return 0, 0, 0, 0, response.BadRequest(c, "latitude and longitude are required")
	}

	lat, parseErr := strconv.ParseFloat(latStr, 64)
	if parseErr != nil {
		return 0, 0, 0, 0, response.BadRequest(c, "latitude must be a number")
	}
	lon, parseErr = strconv.ParseFloat(lonStr, 64)
	if parseErr != nil {
		return 0, 0, 0, 0, response.BadRequest(c, "longitude must be a number")
	}

	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(geo.DefaultLimit)))
	offset, _ = strconv.Atoi(c.Query("offset", "0"))
	limit = geo.ClampLimit(limit)
	offset = geo.ClampOffset(offset)

	return lat, lon, limit, offset, nil
}

// applyNearbyFilters narrows the candidate set before ranking
func applyNearbyFilters(c *fiber.Ctx, query *gorm.DB) *gorm.DB {
	if country := c.Query("country"); country != "" {
		query = query.Where("country ILIKE ?", "%"+country+"%")
	}
	if uniType := c.Query("type"); uniType != "" {
		query = query.Where("type ILIKE ?", "%"+uniType+"%")
	}
	if minStr := c.Query("ranking_min"); minStr != "" {
		if min, err := strconv.Atoi(minStr); err == nil {
			query = query.Where("ranking >= ?", min)
		}
	}
	if maxStr := c.Query("ranking_max"); maxStr != "" {
		if max, err := strconv.Atoi(maxStr); err == nil {
			query = query.Where("ranking <= ?", max)
		}
	}
	return query
}

// NearbyUniversities handles GET /api/v1/universities/nearby.
// Candidates are filtered in the database, then ranked by great-circle
// distance from the query point and paginated in memory. Records
// without coordinates rank last.
func (h *UniversityHandler) NearbyUniversities(c *fiber.Ctx) error {
	lat, lon, limit, offset, err := parseNearbyQuery(c)
	if err != nil {
		return err
	}

	query := applyNearbyFilters(c, h.db.Model(&model.University{}))

	var universities []model.University
	if err := query.Preload("Courses.CareerPaths").Find(&universities).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	ranked := geo.RankNearby(universities, lat, lon, limit, offset)

	logNearbyCardinality(ranked)

	return response.Success(c, ranked)
}

// NearbyUniversitiesLite handles GET /api/v1/universities/nearby-lite.
// Same ranking semantics as NearbyUniversities but returns a flat
// projection without the course tree, skipping the preloads entirely.
func (h *UniversityHandler) NearbyUniversitiesLite(c *fiber.Ctx) error {
	lat, lon, limit, offset, err := parseNearbyQuery(c)
	if err != nil {
		return err
	}

	query := applyNearbyFilters(c, h.db.Model(&model.University{}))

	var universities []model.University
	if err := query.Find(&universities).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	ranked := geo.RankNearby(universities, lat, lon, limit, offset)

	items := make([]NearbyLiteItem, 0, len(ranked))
	for _, u := range ranked {
		items = append(items, NearbyLiteItem{
			ID:        u.ID,
			Name:      u.Name,
			Latitude:  u.Latitude,
			Longitude: u.Longitude,
			Country:   u.Country,
			City:      u.City,
			Type:      u.Type,
			Ranking:   u.Ranking,
			Website:   u.Website,
		})
	}

	return response.Success(c, items)
}

// logNearbyCardinality reports how much nested data a nearby page
// carries. Purely diagnostic, never affects the response.
func logNearbyCardinality(universities []model.University) {
	courses := 0
	careerPaths := 0
	for _, u := range universities {
		courses += len(u.Courses)
		for _, course := range u.Courses {
			careerPaths += len(course.CareerPaths)
		}
	}
	log.Printf("[nearby] universities=%d courses=%d career_paths=%d", len(universities), courses, careerPaths)
}
