package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmissionModel is the GORM-specific struct for the 'contact_submissions' table.
type ContactSubmissionModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Email     string         `gorm:"type:varchar(255);not null"`
	Message   string         `gorm:"type:text;not null"`
	IPHash    string         `gorm:"column:ip_hash;type:varchar(16);not null;index"`
	CreatedAt time.Time      `gorm:"index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactSubmissionModel) TableName() string {
	return "contact_submissions"
}

func (m *ContactSubmissionModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
