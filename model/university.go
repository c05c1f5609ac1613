package model

import (
	"time"

	"gorm.io/gorm"
)

// University represents an institution in the catalog. Latitude and
// longitude are nullable: locally curated records always carry both,
// records normalized from the external directory may not. ID 0 is
// reserved for external records that have not been matched to a local
// row yet and must never be used as a lookup key.
type University struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Latitude  *float64       `json:"latitude"`
	Longitude *float64       `json:"longitude"`
	Country   string         `gorm:"index" json:"country"`
	City      string         `json:"city"`
	Type      string         `gorm:"type:varchar(50)" json:"type"` // public, private, research, etc.
	Ranking   *int           `json:"ranking"`                      // lower is more prestigious
	Website   string         `gorm:"type:varchar(255)" json:"website"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Courses []Course `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
}
