package usecase

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactSubmitResult is returned for an accepted submission.
type ContactSubmitResult struct {
	Submission *entity.ContactSubmission
	Remaining  int // Requests left in the client's current window.
}

// ContactUsecase gates the public contact form and manages stored messages.
type ContactUsecase interface {
	// Submit runs the raw request body through rate limiting, parsing,
	// validation and CSRF verification, then stores it. It returns a
	// RateLimitError, ErrInvalidJSON, a ValidationError, ErrInvalidCSRFToken
	// or ErrUnexpected when the submission is refused.
	Submit(ctx context.Context, clientIP string, body []byte) (*ContactSubmitResult, error)

	// ListMessages returns live submissions, newest first.
	ListMessages(ctx context.Context) ([]*entity.ContactSubmission, error)

	// DeleteMessage soft-deletes a submission.
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
