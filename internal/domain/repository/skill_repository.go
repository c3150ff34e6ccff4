package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSkillNotFound is returned when a skill does not exist or was deleted.
var ErrSkillNotFound = errors.New("skill not found")

// SkillRepository defines the interface for skill storage.
type SkillRepository interface {
	// List returns live skills ordered by sort order.
	List(ctx context.Context) ([]*entity.Skill, error)

	// Create persists a skill.
	Create(ctx context.Context, skill *entity.Skill) error

	// Delete soft-deletes a skill.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of live skills.
	Count(ctx context.Context) (int64, error)

	// MaxSortOrder returns the highest sort order in use, 0 when empty.
	MaxSortOrder(ctx context.Context) (int, error)
}
