package usecase

import (
	"context"

	"portfolio/internal/domain/service"
)

// NotificationUsecase consumes contact events delivered by the message queue.
type NotificationUsecase interface {
	// NotifySubmission alerts the site owner about a stored submission. It
	// returns ErrMessageNotFound when the submission was deleted in between.
	NotifySubmission(ctx context.Context, event *service.ContactEvent) error
}
