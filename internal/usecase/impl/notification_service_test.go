package impl

import (
	"context"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	mockRepo "portfolio/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type notificationServiceFixtures struct {
	service     *notificationService
	txManager   *mockRepo.MockTransactionManager
	contactRepo *mockRepo.MockContactRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		contactRepo: mockRepo.NewMockContactRepository(t),
	}
	fx.service = NewNotificationService(fx.txManager, newDiscardLogger()).(*notificationService)

	return fx
}

func (fx notificationServiceFixtures) expectTx(t *testing.T) {
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewContactRepository().Return(fx.contactRepo)
	})
}

func TestNotificationService_NotifySubmission(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	t.Run("stored submission", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.expectTx(t)
		fx.contactRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.ContactSubmission{
			ID:        id,
			Name:      "Ada Lovelace",
			Message:   "Hello there, nice site.",
			CreatedAt: time.Now(),
		}, nil)

		err := fx.service.NotifySubmission(ctx, &service.ContactEvent{SubmissionID: id.String()})

		assert.NoError(t, err)
	})

	t.Run("deleted submission", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.expectTx(t)
		fx.contactRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrContactSubmissionNotFound)

		err := fx.service.NotifySubmission(ctx, &service.ContactEvent{SubmissionID: id.String()})

		assert.ErrorIs(t, err, domainerrors.ErrMessageNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.expectTx(t)
		fx.contactRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errors.New("database is locked"))

		err := fx.service.NotifySubmission(ctx, &service.ContactEvent{SubmissionID: id.String()})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrMessageNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestNotificationService(t)

		err := fx.service.NotifySubmission(ctx, &service.ContactEvent{SubmissionID: "not-a-uuid"})

		assert.ErrorIs(t, err, ErrInvalidContactEvent)
	})
}
