package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectModel is the GORM-specific struct for the 'projects' table.
type ProjectModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Category    string                      `gorm:"type:varchar(20);not null;index"`
	Description string                      `gorm:"type:text;not null"`
	Image       *string                     `gorm:"type:varchar(1024)"`
	VideoURL    *string                     `gorm:"column:video_url;type:varchar(1024)"`
	Tech        datatypes.JSONSlice[string] `gorm:"not null"`
	SortOrder   int                         `gorm:"not null;default:0;index"`
	Images      []ProjectImageModel         `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

func (m *ProjectModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ProjectImageModel is one gallery row of a project. Gallery rows are
// replaced wholesale on update, so they are hard deleted.
type ProjectImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(1024);not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectImageModel) TableName() string {
	return "project_images"
}

func (m *ProjectImageModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}
