package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidContactEvent is returned for events without a usable submission ID.
var ErrInvalidContactEvent = errors.New("contact event has no valid submission id")

type notificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.NotificationUsecase {
	return &notificationService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifySubmission re-reads the submission so redelivered or stale events
// for deleted messages are dropped, then emits the owner alert.
func (srv *notificationService) NotifySubmission(ctx context.Context, event *service.ContactEvent) error {
	id, err := uuid.Parse(event.SubmissionID)
	if err != nil {
		return errors.Wrap(ErrInvalidContactEvent, err.Error())
	}

	var submission *entity.ContactSubmission
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		submission, findErr = repoFactory.NewContactRepository().FindByID(ctx, id)

		return findErr
	})
	if errors.Is(err, repository.ErrContactSubmissionNotFound) {
		srv.log(ctx).Info("Contact submission gone before notification", slog.String("submission_id", event.SubmissionID))

		return domainerrors.ErrMessageNotFound
	}
	if err != nil {
		return errors.Wrap(err, "load contact submission")
	}

	srv.log(ctx).Info("New contact message",
		slog.String("submission_id", submission.ID.String()),
		slog.String("name", submission.Name),
		slog.Int("message_length", len(submission.Message)),
		slog.Time("received_at", submission.CreatedAt),
	)

	return nil
}
