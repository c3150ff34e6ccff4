package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillModel is the GORM-specific struct for the 'skills' table.
type SkillModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Level     int       `gorm:"not null;default:0"`
	Category  string    `gorm:"type:varchar(100);not null"`
	SortOrder int       `gorm:"not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}

func (m *SkillModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
