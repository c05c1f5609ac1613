package course

import (
	"strconv"

	"github.com/genfuture/careers-api/model"
	"github.com/genfuture/careers-api/utils/middleware"
	"github.com/genfuture/careers-api/utils/response"
	"github.com/genfuture/careers-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseHandler handles course-related requests
type CourseHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	UniversityID uint   `json:"university_id" validate:"required,min=1"`
	Name         string `json:"name" validate:"required,min=2,max=255"`
	Description  string `json:"description" validate:"omitempty"`
	Duration     string `json:"duration" validate:"omitempty,max=50"`
	DegreeType   string `json:"degree_type" validate:"omitempty,max=50"`
}

// UpdateCourseRequest represents the request body for updating a course
type UpdateCourseRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Duration    string `json:"duration" validate:"omitempty,max=50"`
	DegreeType  string `json:"degree_type" validate:"omitempty,max=50"`
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")
	degreeType := c.Query("degree_type", "")

	query := h.db.Model(&model.Course{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if degreeType != "" {
		query = query.Where("degree_type ILIKE ?", degreeType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count courses")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var courses []model.Course
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&courses).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Paginated(c, courses, pagination)
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.Course
	if err := h.db.Preload("CareerPaths").First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	return response.Success(c, course)
}

// ListByUniversity handles GET /api/v1/universities/:id/courses.
// A university with no courses yields an empty page, not a 404; only
// a missing university is an error.
func (h *CourseHandler) ListByUniversity(c *fiber.Ctx) error {
	universityID := c.Params("id")

	var university model.University
	if err := h.db.First(&university, universityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	query := h.db.Model(&model.Course{}).Where("university_id = ?", university.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count courses")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var courses []model.Course
	if err := query.Order("name ASC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&courses).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Paginated(c, courses, pagination)
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can create courses")
	}

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var university model.University
	if err := h.db.First(&university, req.UniversityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "University not found")
		}
		return response.InternalServerError(c, "Failed to fetch university")
	}

	course := model.Course{
		UniversityID: req.UniversityID,
		Name:         validation.SanitizeString(req.Name),
		Description:  validation.SanitizeString(req.Description),
		Duration:     req.Duration,
		DegreeType:   req.DegreeType,
	}

	if err := h.db.Create(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can update courses")
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	if req.Name != "" {
		course.Name = validation.SanitizeString(req.Name)
	}
	if req.Description != "" {
		course.Description = validation.SanitizeString(req.Description)
	}
	if req.Duration != "" {
		course.Duration = req.Duration
	}
	if req.DegreeType != "" {
		course.DegreeType = req.DegreeType
	}

	if err := h.db.Save(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.SuccessWithMessage(c, "Course updated successfully", course)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
// Cascade deletes all career paths for the course
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}
	if user.Role != "admin" {
		return response.Forbidden(c, "Only administrators can delete courses")
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&model.CareerPath{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})

	if err != nil {
		return response.InternalServerError(c, "Failed to delete course: "+err.Error())
	}

	return response.SuccessWithMessage(c, "Course and all related data deleted successfully", nil)
}
