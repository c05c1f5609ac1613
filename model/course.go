package model

import (
	"time"

	"gorm.io/gorm"
)

// Course represents a program of study offered by a university.
type Course struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UniversityID uint           `gorm:"not null;index" json:"university_id"`
	Name         string         `gorm:"not null;index" json:"name"`
	Description  string         `gorm:"type:text" json:"description"`
	Duration     string         `gorm:"type:varchar(50)" json:"duration"`    // e.g. "4 years"
	DegreeType   string         `gorm:"type:varchar(50)" json:"degree_type"` // Bachelor's, Master's, PhD

	// Relationships
	University  University   `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"-"`
	CareerPaths []CareerPath `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"career_paths,omitempty"`
}
