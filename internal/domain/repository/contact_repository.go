// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrContactSubmissionNotFound is returned when a submission does not exist or was deleted.
var ErrContactSubmissionNotFound = errors.New("contact submission not found")

// ContactRepository defines the interface for contact submission storage.
type ContactRepository interface {
	// Create persists a new submission.
	Create(ctx context.Context, submission *entity.ContactSubmission) error

	// FindByID returns a live submission or ErrContactSubmissionNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactSubmission, error)

	// List returns all live submissions, newest first.
	List(ctx context.Context) ([]*entity.ContactSubmission, error)

	// Recent returns at most limit live submissions, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.ContactSubmission, error)

	// Count returns the number of live submissions.
	Count(ctx context.Context) (int64, error)

	// Delete soft-deletes a submission.
	Delete(ctx context.Context, id uuid.UUID) error
}
