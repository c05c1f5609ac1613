package model

import (
	"time"

	"gorm.io/gorm"
)

// CareerPath represents a career outcome associated with a course.
// Salary and growth figures are display labels, not parsed values.
type CareerPath struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	CourseID    uint           `gorm:"not null;index" json:"course_id"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	AvgSalary   string         `gorm:"type:varchar(100)" json:"avg_salary"`   // e.g. "$60,000 - $90,000"
	GrowthRate  string         `gorm:"type:varchar(100)" json:"growth_rate"` // e.g. "15% growth expected"

	// Relationships
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
