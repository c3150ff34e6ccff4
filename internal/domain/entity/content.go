package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectCategory groups projects on the showcase.
type ProjectCategory string

const (
	ProjectCategoryVideo ProjectCategory = "video"
	ProjectCategoryPhoto ProjectCategory = "photo"
	ProjectCategoryWeb   ProjectCategory = "web"
	ProjectCategoryAll   ProjectCategory = "all"
)

// Valid reports whether c is one of the known categories.
func (c ProjectCategory) Valid() bool {
	switch c {
	case ProjectCategoryVideo, ProjectCategoryPhoto, ProjectCategoryWeb, ProjectCategoryAll:
		return true
	default:
		return false
	}
}

// HeroSection is the singleton landing block.
type HeroSection struct {
	ID          uuid.UUID `json:"id"`
	Greeting    string    `json:"greeting"`
	Heading     string    `json:"heading"`
	Description string    `json:"description"`
	HeroImage   *string   `json:"heroImage"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Project is a showcase entry with an optional gallery and video.
type Project struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Category    ProjectCategory `json:"category"`
	Description string          `json:"description"`
	Image       *string         `json:"image"`
	VideoURL    *string         `json:"videoUrl"`
	EmbedURL    *string         `json:"embedUrl,omitempty"` // Derived from VideoURL when it is a YouTube link.
	Tech        []string        `json:"tech"`
	SortOrder   int             `json:"sortOrder"`
	Images      []ProjectImage  `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProjectImage is one gallery picture of a project.
type ProjectImage struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	SortOrder int       `json:"sortOrder"`
}

// Skill is a rated expertise entry.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Category  string    `json:"category"`
	SortOrder int       `json:"sortOrder"`
}

// ParseTechList splits a comma separated technology list, trimming entries
// and dropping empty ones.
func ParseTechList(raw string) []string {
	parts := strings.Split(raw, ",")
	tech := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tech = append(tech, trimmed)
		}
	}

	return tech
}

// OptionalString maps an empty string to nil.
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}
