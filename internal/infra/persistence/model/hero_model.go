package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeroSectionModel is the GORM-specific struct for the 'hero_sections' table.
// Only the first row is ever read.
type HeroSectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Greeting    string    `gorm:"type:varchar(255);not null"`
	Heading     string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	HeroImage   *string   `gorm:"type:varchar(1024)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HeroSectionModel) TableName() string {
	return "hero_sections"
}

func (m *HeroSectionModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
