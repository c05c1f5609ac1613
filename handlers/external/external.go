package external

import (
	"log"

	"github.com/genfuture/careers-api/database"
	"github.com/genfuture/careers-api/model"
	"github.com/genfuture/careers-api/services/careers"
	"github.com/genfuture/careers-api/services/directory"
	"github.com/genfuture/careers-api/services/reconcile"
	"github.com/genfuture/careers-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LocalFallbackLimit bounds the catalog query used when the external
// directory is unavailable
const LocalFallbackLimit = 50

// ExternalHandler serves the endpoints backed by third-party data
// sources: the university directory and the career outcome feeds.
type ExternalHandler struct {
	db         *gorm.DB
	directory  *directory.Client
	catalog    *database.CatalogStore
	reconciler *reconcile.Reconciler
	aggregator *careers.Aggregator
}

// NewExternalHandler creates an external data handler
func NewExternalHandler(db *gorm.DB, aggregator *careers.Aggregator) *ExternalHandler {
	catalog := database.NewCatalogStore(db)
	return &ExternalHandler{
		db:         db,
		directory:  directory.NewClient(),
		catalog:    catalog,
		reconciler: reconcile.NewReconciler(catalog),
		aggregator: aggregator,
	}
}

// SearchUniversities handles GET /api/v1/external/universities/search.
// The external directory is tried first; its records come back with
// ID 0 and are reconciled against the local catalog so known
// institutions regain their real IDs. If the directory is unreachable,
// returns junk, or has nothing, the local catalog serves the answer
// with real IDs throughout. The endpoint itself never fails on
// upstream trouble.
func (h *ExternalHandler) SearchUniversities(c *fiber.Ctx) error {
	name := c.Query("name", "")
	country := c.Query("country", "")

	externalResults, err := h.directory.Search(c.Context(), name, country)
	if err != nil {
		log.Printf("[external] directory search failed, using local catalog: %v", err)
		externalResults = nil
	}

	if len(externalResults) == 0 {
		local, err := h.catalog.Search(name, country, LocalFallbackLimit)
		if err != nil {
			return response.InternalServerError(c, "Failed to search universities")
		}
		return response.Success(c, local)
	}

	return response.Success(c, h.reconciler.Reconcile(externalResults))
}

// CareersByCourse handles GET /api/v1/external/careers/by-course/:course_id.
// The response is the union of the course's curated career paths and
// the externally sourced ones, with local entries winning every name
// collision. A missing course is the only error a client can see.
func (h *ExternalHandler) CareersByCourse(c *fiber.Ctx) error {
	courseID := c.Params("course_id")

	var course model.Course
	if err := h.db.Preload("CareerPaths").First(&course, courseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	external := h.aggregator.FetchExternal(c.Context(), course.Name)
	merged := careers.Merge(external, course.CareerPaths, course.ID)

	return response.Success(c, fiber.Map{
		"course_id":    course.ID,
		"course_name":  course.Name,
		"career_paths": merged,
	})
}
