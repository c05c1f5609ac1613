package career

import (
	"strconv"

	"github.com/genfuture/careers-api/model"
	"github.com/genfuture/careers-api/utils/middleware"
	"github.com/genfuture/careers-api/utils/response"
	"github.com/genfuture/careers-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CareerPathHandler handles career path requests
type CareerPathHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCareerPathHandler creates a new career path handler
func NewCareerPathHandler(db *gorm.DB) *CareerPathHandler {
	return &CareerPathHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCareerPathRequest represents the request body for creating a career path
type CreateCareerPathRequest struct {
	CourseID    uint   `json:"course_id" validate:"required,min=1"`
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	AvgSalary   string `json:"avg_salary" validate:"omitempty,max=100"`
	GrowthRate  string `json:"growth_rate" validate:"omitempty,max=100"`
}

// UpdateCareerPathRequest represents the request body for updating a career path
type UpdateCareerPathRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	AvgSalary   string `json:"avg_salary" validate:"omitempty,max=100"`
	GrowthRate  string `json:"growth_rate" validate:"omitempty,max=100"`
}

// ListByCourse handles GET /api/v1/courses/:id/career-paths.
// A course with no career paths yields an empty page, not a 404.
func (h *CareerPathHandler) ListByCourse(c *fiber.Ctx) error {
	courseID := c.Params("id")

	var course model.Course
	if err := h.db.First(&course, courseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	query := h.db.Model(&model.CareerPath{}).Where("course_id = ?", course.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count career paths")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var careerPaths []model.CareerPath
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&careerPaths).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch career paths")
	}

	return response.Paginated(c, careerPaths, pagination)
}

// CreateCareerPath handles POST /api/v1/career-paths
func (h *CareerPathHandler) CreateCareerPath(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can create career paths")
	}

	var req CreateCareerPathRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var course model.Course
	if err := h.db.First(&course, req.CourseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	careerPath := model.CareerPath{
		CourseID:    req.CourseID,
		Name:        validation.SanitizeString(req.Name),
		Description: validation.SanitizeString(req.Description),
		AvgSalary:   req.AvgSalary,
		GrowthRate:  req.GrowthRate,
	}

	if err := h.db.Create(&careerPath).Error; err != nil {
		return response.InternalServerError(c, "Failed to create career path")
	}

	return response.Created(c, careerPath)
}

// UpdateCareerPath handles PUT /api/v1/career-paths/:id
func (h *CareerPathHandler) UpdateCareerPath(c *fiber.Ctx) error {
	id := c.Params("id")

	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can update career paths")
	}

	var req UpdateCareerPathRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var careerPath model.CareerPath
	if err := h.db.First(&careerPath, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Career path not found")
		}
		return response.InternalServerError(c, "Failed to fetch career path")
	}

	if req.Name != "" {
		careerPath.Name = validation.SanitizeString(req.Name)
	}
	if req.Description != "" {
		careerPath.Description = validation.SanitizeString(req.Description)
	}
	if req.AvgSalary != "" {
		careerPath.AvgSalary = req.AvgSalary
	}
	if req.GrowthRate != "" {
		careerPath.GrowthRate = req.GrowthRate
	}

	if err := h.db.Save(&careerPath).Error; err != nil {
		return response.InternalServerError(c, "Failed to update career path")
	}

	return response.SuccessWithMessage(c, "Career path updated successfully", careerPath)
}

// DeleteCareerPath handles DELETE /api/v1/career-paths/:id
func (h *CareerPathHandler) DeleteCareerPath(c *fiber.Ctx) error {
	id := c.Params("id")

	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can delete career paths")
	}

	var careerPath model.CareerPath
	if err := h.db.First(&careerPath, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Career path not found")
		}
		return response.InternalServerError(c, "Failed to fetch career path")
	}

	if err := h.db.Delete(&careerPath).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete career path")
	}

	return response.SuccessWithMessage(c, "Career path deleted successfully", nil)
}
