package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// HeroInput is the hero editor form.
type HeroInput struct {
	Greeting    string `json:"greeting" validate:"max=200"`
	Heading     string `json:"heading" validate:"max=200"`
	Description string `json:"description" validate:"max=5000"`
	HeroImage   string `json:"heroImage" validate:"max=2048"`
}

// ProjectInput is the project editor form. Tech is already split into entries.
type ProjectInput struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Category    string   `json:"category" validate:"required,oneof=video photo web all"`
	Description string   `json:"description" validate:"max=5000"`
	Image       string   `json:"image" validate:"max=2048"`
	VideoURL    string   `json:"videoUrl" validate:"max=2048"`
	Tech        TechList `json:"tech"`
	SortOrder   int      `json:"sortOrder" validate:"min=0"`
	Images      []string `json:"images" validate:"dive,required,max=2048"`
}

// SkillInput is the skill editor form.
type SkillInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Level    int    `json:"level" validate:"min=0,max=100"`
	Category string `json:"category" validate:"required,max=50"`
}

// ContentUsecase administers the portfolio content.
type ContentUsecase interface {
	GetHero(ctx context.Context) (*entity.HeroSection, error)
	SaveHero(ctx context.Context, input *HeroInput) (*entity.HeroSection, error)

	ListProjects(ctx context.Context) ([]*entity.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	CreateProject(ctx context.Context, input *ProjectInput) (*entity.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, input *ProjectInput) (*entity.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	ListSkills(ctx context.Context) ([]*entity.Skill, error)
	// CreateSkill appends the skill after the current highest sort order.
	CreateSkill(ctx context.Context, input *SkillInput) (*entity.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

// TechList accepts either a JSON list or one comma separated string.
// Entries are trimmed and empty ones dropped.
type TechList []string

func (t *TechList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		cleaned := make([]string, 0, len(list))
		for _, item := range list {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		*t = cleaned

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "tech must be a string or a list of strings")
	}
	*t = entity.ParseTechList(raw)

	return nil
}
