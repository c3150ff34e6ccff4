package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"portfolio/internal/delivery/api/validator"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	mockRepo "portfolio/internal/mocks/repository"
	mockSvc "portfolio/internal/mocks/service"
	"portfolio/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testClientIP  = "203.0.113.7"
	validContact  = `{"name":"Jane O'Neil","email":"  Jane@Example.COM ","message":"Hello there, nice work!","csrfToken":"tok"}`
	contactWindow = time.Hour
)

// contactServiceFixtures holds all test dependencies for contact service tests.
type contactServiceFixtures struct {
	service   *contactService
	txManager *mockRepo.MockTransactionManager
	limiter   *mockSvc.MockRateLimiter
	csrf      *mockSvc.MockCSRFService
	publisher *mockSvc.MockEventPublisher
	now       time.Time
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	fx := contactServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		limiter:   mockSvc.NewMockRateLimiter(t),
		csrf:      mockSvc.NewMockCSRFService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		now:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	srv := NewContactService(ContactServiceParams{
		TxManager: fx.txManager,
		Limiter:   fx.limiter,
		CSRF:      fx.csrf,
		Publisher: fx.publisher,
		Validator: validator.New(),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*contactService)
	srv.now = fixedClock(fx.now)
	fx.service = srv

	return fx
}

func (fx contactServiceFixtures) allow(remaining int) {
	fx.limiter.EXPECT().
		Check(mock.Anything, util.HashIdentifier(testClientIP), 5, contactWindow).
		Return(entity.RateLimitResult{Allowed: true, Remaining: remaining, ResetTime: fx.now.Add(contactWindow)}, nil).
		Once()
}

func TestContactService_Submit_Success(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	storedID := uuid.New()

	fx.allow(4)
	fx.csrf.EXPECT().Validate("tok", time.Hour).Return(true)

	var stored *entity.ContactSubmission
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		factory.EXPECT().NewContactRepository().Return(contactRepo)
		contactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ContactSubmission")).
			RunAndReturn(func(_ context.Context, submission *entity.ContactSubmission) error {
				submission.ID = storedID
				stored = submission

				return nil
			})
	})
	fx.publisher.EXPECT().
		PublishContactEvent(ctx, mock.MatchedBy(func(event *service.ContactEvent) bool {
			return event.SubmissionID == storedID.String() && event.Email == "jane@example.com"
		})).
		Return(nil)

	result, err := fx.service.Submit(ctx, testClientIP, []byte(validContact))

	require.NoError(t, err)
	assert.Equal(t, 4, result.Remaining)
	require.NotNil(t, stored)
	assert.Equal(t, "Jane O'Neil", stored.Name)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "Hello there, nice work!", stored.Message)
	assert.Equal(t, util.HashIdentifier(testClientIP), stored.IPHash)
	assert.NotContains(t, stored.IPHash, testClientIP)
}

func TestContactService_Submit_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.allow(0)
	fx.csrf.EXPECT().Validate("tok", time.Hour).Return(true)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		factory.EXPECT().NewContactRepository().Return(contactRepo)
		contactRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	})
	fx.publisher.EXPECT().PublishContactEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := fx.service.Submit(ctx, testClientIP, []byte(validContact))

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestContactService_Submit_RateLimited(t *testing.T) {
	fx := createTestContactService(t)

	fx.limiter.EXPECT().
		Check(mock.Anything, util.HashIdentifier(testClientIP), 5, contactWindow).
		Return(entity.RateLimitResult{Allowed: false, ResetTime: fx.now.Add(30 * time.Minute)}, nil)

	// Not even the body is looked at once the client is throttled.
	_, err := fx.service.Submit(context.Background(), testClientIP, []byte("not json"))

	var rateErr *domainerrors.RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, 1800, rateErr.RetryAfter)
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyRequests))
}

func TestContactService_Submit_LimiterError(t *testing.T) {
	fx := createTestContactService(t)

	fx.limiter.EXPECT().
		Check(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(entity.RateLimitResult{}, errors.New("redis down"))

	_, err := fx.service.Submit(context.Background(), testClientIP, []byte(validContact))

	assert.True(t, errors.Is(err, domainerrors.ErrUnexpected))
}

func TestContactService_Submit_InvalidJSON(t *testing.T) {
	fx := createTestContactService(t)
	fx.allow(4)

	_, err := fx.service.Submit(context.Background(), testClientIP, []byte(`{"name":`))

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidJSON))
}

func TestContactService_Submit_ValidationDetails(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []domainerrors.FieldError
	}{
		{
			name: "short and malformed fields",
			body: `{"name":"J","email":"nope","message":"short","csrfToken":""}`,
			fields: []domainerrors.FieldError{
				{Field: "name", Message: "Name must be at least 2 characters"},
				{Field: "email", Message: "Please enter a valid email address"},
				{Field: "message", Message: "Message must be at least 10 characters"},
				{Field: "csrfToken", Message: "Security token is required"},
			},
		},
		{
			name: "name with digits",
			body: `{"name":"R2D2","email":"r2@example.com","message":"Beep boop beep boop","csrfToken":"tok"}`,
			fields: []domainerrors.FieldError{
				{Field: "name", Message: "Name can only contain letters, spaces, hyphens, apostrophes, and periods"},
			},
		},
		{
			name: "too long",
			body: `{"name":"` + strings.Repeat("a", 101) + `","email":"a@example.com","message":"` + strings.Repeat("m", 5001) + `","csrfToken":"tok"}`,
			fields: []domainerrors.FieldError{
				{Field: "name", Message: "Name must be less than 100 characters"},
				{Field: "message", Message: "Message must be less than 5000 characters"},
			},
		},
		{
			name: "wrong types",
			body: `{"name":42,"email":"a@example.com","message":["x"],"csrfToken":"tok"}`,
			fields: []domainerrors.FieldError{
				{Field: "name", Message: "Expected string, received number"},
				{Field: "message", Message: "Expected string, received array"},
			},
		},
		{
			name: "not an object",
			body: `[1,2,3]`,
			fields: []domainerrors.FieldError{
				{Field: "", Message: "Expected object, received array"},
			},
		},
		{
			name: "whitespace only name is trimmed before checks",
			body: `{"name":"   ","email":"a@example.com","message":"A long enough message","csrfToken":"tok"}`,
			fields: []domainerrors.FieldError{
				{Field: "name", Message: "Name must be at least 2 characters"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContactService(t)
			fx.allow(4)

			_, err := fx.service.Submit(context.Background(), testClientIP, []byte(tt.body))

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tt.fields, validationErr.Fields)
		})
	}
}

func TestContactService_Submit_InvalidCSRF(t *testing.T) {
	fx := createTestContactService(t)
	fx.allow(4)
	fx.csrf.EXPECT().Validate("tok", time.Hour).Return(false)

	_, err := fx.service.Submit(context.Background(), testClientIP, []byte(validContact))

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCSRFToken))
}

func TestContactService_Submit_StoreFailure(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.allow(4)
	fx.csrf.EXPECT().Validate("tok", time.Hour).Return(true)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		factory.EXPECT().NewContactRepository().Return(contactRepo)
		contactRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))
	})

	_, err := fx.service.Submit(ctx, testClientIP, []byte(validContact))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnexpected))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.NotContains(t, appErr.Message(), "disk full")
}

func TestContactService_DeleteMessage_NotFound(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		factory.EXPECT().NewContactRepository().Return(contactRepo)
		contactRepo.EXPECT().Delete(ctx, id).Return(repository.ErrContactSubmissionNotFound)
	})

	err := fx.service.DeleteMessage(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

func TestContactService_ListMessages(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	messages := []*entity.ContactSubmission{{ID: uuid.New(), Name: "Jane"}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		contactRepo := mockRepo.NewMockContactRepository(t)
		factory.EXPECT().NewContactRepository().Return(contactRepo)
		contactRepo.EXPECT().List(ctx).Return(messages, nil)
	})

	got, err := fx.service.ListMessages(ctx)

	require.NoError(t, err)
	assert.Equal(t, messages, got)
}
