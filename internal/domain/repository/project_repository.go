package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProjectNotFound is returned when a project does not exist or was deleted.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the interface for project storage.
type ProjectRepository interface {
	// List returns live projects with their gallery, ordered by sort order.
	List(ctx context.Context) ([]*entity.Project, error)

	// FindByID returns one project with its gallery.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// Create persists a project and its gallery.
	Create(ctx context.Context, project *entity.Project) error

	// Update overwrites a project and replaces its gallery.
	Update(ctx context.Context, project *entity.Project) error

	// Delete soft-deletes a project.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of live projects.
	Count(ctx context.Context) (int64, error)
}
