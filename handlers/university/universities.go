package university

import (
	"strconv"
	"strings"

	"github.com/genfuture/careers-api/model"
	"github.com/genfuture/careers-api/utils/middleware"
	"github.com/genfuture/careers-api/utils/response"
	"github.com/genfuture/careers-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UniversityHandler handles university-related requests
type UniversityHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewUniversityHandler creates a new university handler
func NewUniversityHandler(db *gorm.DB) *UniversityHandler {
	return &UniversityHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateUniversityRequest represents the request body for creating a university
type CreateUniversityRequest struct {
	Name      string   `json:"name" validate:"required,min=2,max=255"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Country   string   `json:"country" validate:"omitempty,max=100"`
	City      string   `json:"city" validate:"omitempty,max=100"`
	Type      string   `json:"type" validate:"omitempty,max=50"`
	Ranking   *int     `json:"ranking" validate:"omitempty,min=1"`
	Website   string   `json:"website" validate:"omitempty,url,max=255"`
}

// UpdateUniversityRequest represents the request body for updating a university
type UpdateUniversityRequest struct {
	Name      string   `json:"name" validate:"omitempty,min=2,max=255"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Country   string   `json:"country" validate:"omitempty,max=100"`
	City      string   `json:"city" validate:"omitempty,max=100"`
	Type      string   `json:"type" validate:"omitempty,max=50"`
	Ranking   *int     `json:"ranking" validate:"omitempty,min=1"`
	Website   string   `json:"website" validate:"omitempty,url,max=255"`
}

// ListUniversities handles GET /api/v1/universities
func (h *UniversityHandler) ListUniversities(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")
	country := c.Query("country", "")

	query := h.db.Model(&model.University{})

	if search != "" {
		query = query.Where("name ILIKE ? OR city ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if country != "" {
		query = query.Where("LOWER(country) = ?", strings.ToLower(country))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count universities")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var universities []model.University
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&universities).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch universities")
	}

	return response.Paginated(c, universities, pagination)
}

// GetUniversity handles GET /api/v1/universities/:id
func (h *UniversityHandler) GetUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	var university model.University
	if err := h.db.Preload("Courses.CareerPaths").First(&university, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	return response.Success(c, university)
}

// CreateUniversity handles POST /api/v1/universities
func (h *UniversityHandler) CreateUniversity(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can create universities")
	}

	var req CreateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Country = validation.SanitizeString(req.Country)
	req.City = validation.SanitizeString(req.City)

	// Same name and country means the same institution
	var existing model.University
	if err := h.db.Where("LOWER(name) = ? AND LOWER(country) = ?",
		strings.ToLower(req.Name), strings.ToLower(req.Country)).
		First(&existing).Error; err == nil {
		return response.Conflict(c, "University with this name already exists in this country")
	}

	university := model.University{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Country:   req.Country,
		City:      req.City,
		Type:      req.Type,
		Ranking:   req.Ranking,
		Website:   req.Website,
	}

	if err := h.db.Create(&university).Error; err != nil {
		return response.InternalServerError(c, "Failed to create university")
	}

	return response.Created(c, university)
}

// UpdateUniversity handles PUT /api/v1/universities/:id
func (h *UniversityHandler) UpdateUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can update universities")
	}

	var req UpdateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var university model.University
	if err := h.db.First(&university, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	if req.Name != "" {
		university.Name = validation.SanitizeString(req.Name)
	}
	if req.Latitude != nil {
		university.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		university.Longitude = req.Longitude
	}
	if req.Country != "" {
		university.Country = validation.SanitizeString(req.Country)
	}
	if req.City != "" {
		university.City = validation.SanitizeString(req.City)
	}
	if req.Type != "" {
		university.Type = req.Type
	}
	if req.Ranking != nil {
		university.Ranking = req.Ranking
	}
	if req.Website != "" {
		university.Website = validation.SanitizeString(req.Website)
	}

	if err := h.db.Save(&university).Error; err != nil {
		return response.InternalServerError(c, "Failed to update university")
	}

	return response.SuccessWithMessage(c, "University updated successfully", university)
}

// DeleteUniversity handles DELETE /api/v1/universities/:id
// Cascade deletes all courses and their career paths
func (h *UniversityHandler) DeleteUniversity(c *fiber.Ctx) error {
	id := c.Params("id")

	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can delete universities")
	}

	var university model.University
	if err := h.db.First(&university, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id IN (SELECT id FROM courses WHERE university_id = ?)", id).
			Delete(&model.CareerPath{}).Error; err != nil {
			return err
		}

		if err := tx.Where("university_id = ?", id).Delete(&model.Course{}).Error; err != nil {
			return err
		}

		// Soft delete
		return tx.Delete(&university).Error
	})

	if err != nil {
		return response.InternalServerError(c, "Failed to delete university: "+err.Error())
	}

	return response.SuccessWithMessage(c, "University and all related data deleted successfully", nil)
}
