package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"portfolio/config"
	"portfolio/internal/delivery/api/validator"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"
	"portfolio/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactForm is the validated shape of a contact submission.
type contactForm struct {
	Name      string `json:"name" validate:"required,min=2,max=100,personname"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Message   string `json:"message" validate:"required,min=10,max=5000"`
	CSRFToken string `json:"csrfToken" validate:"required"`
}

var contactFormMessages = map[string]string{
	"name.required":      "Name must be at least 2 characters",
	"name.min":           "Name must be at least 2 characters",
	"name.max":           "Name must be less than 100 characters",
	"name.personname":    "Name can only contain letters, spaces, hyphens, apostrophes, and periods",
	"email.required":     "Please enter a valid email address",
	"email.email":        "Please enter a valid email address",
	"email.max":          "Email must be less than 255 characters",
	"message.required":   "Message must be at least 10 characters",
	"message.min":        "Message must be at least 10 characters",
	"message.max":        "Message must be less than 5000 characters",
	"csrfToken.required": "Security token is required",
}

// contactFormFields lists the string fields in the order they are reported.
var contactFormFields = []string{"name", "email", "message", "csrfToken"}

// ContactServiceParams holds dependencies for the contact service, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Limiter   service.RateLimiter
	CSRF      service.CSRFService
	Publisher service.EventPublisher
	Validator *validator.Validator
	Config    *config.Config
	Logger    *slog.Logger
}

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager repository.TransactionManager
	limiter   service.RateLimiter
	csrf      service.CSRFService
	publisher service.EventPublisher
	validator *validator.Validator
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager: params.TxManager,
		limiter:   params.Limiter,
		csrf:      params.CSRF,
		publisher: params.Publisher,
		validator: params.Validator,
		cfg:       params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit short-circuits at the first failing step; nothing is written unless
// every check passed.
func (srv *contactService) Submit(ctx context.Context, clientIP string, body []byte) (*usecase.ContactSubmitResult, error) {
	ipHash := util.HashIdentifier(clientIP)

	// 1. Rate limit
	limit, err := srv.limiter.Check(ctx, ipHash, srv.cfg.RateLimit.MaxRequests, srv.cfg.RateLimit.Window)
	if err != nil {
		srv.log(ctx).Error("Contact rate limit check failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnexpected, err.Error())
	}
	if !limit.Allowed {
		srv.log(ctx).Warn("Contact submission throttled", slog.String("ip_hash", ipHash))

		return nil, domainerrors.NewRateLimitError(domainerrors.ErrTooManyRequests, limit.RetryAfter(srv.now()))
	}

	// 2. Parse
	form, err := parseContactForm(body)
	if err != nil {
		return nil, err
	}

	// 3. Schema
	if err := srv.validator.ValidateWithMessages(form, contactFormMessages); err != nil {
		return nil, err
	}

	// 4. CSRF
	if !srv.csrf.Validate(form.CSRFToken, srv.cfg.CSRF.MaxAge) {
		srv.log(ctx).Info("Contact submission with invalid csrf token", slog.String("ip_hash", ipHash))

		return nil, domainerrors.ErrInvalidCSRFToken
	}

	// 5. Persist
	submission := &entity.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
		IPHash:  ipHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewContactRepository().Create(ctx, submission)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store contact submission", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnexpected, err.Error())
	}

	srv.log(ctx).Info("Contact submission stored", slog.String("submission_id", submission.ID.String()))

	srv.notify(ctx, submission)

	return &usecase.ContactSubmitResult{
		Submission: submission,
		Remaining:  limit.Remaining,
	}, nil
}

// notify publishes the submission event. Failures are only logged.
func (srv *contactService) notify(ctx context.Context, submission *entity.ContactSubmission) {
	event := &service.ContactEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		SubmissionID: submission.ID.String(),
		Name:         submission.Name,
		Email:        submission.Email,
		CreatedAt:    submission.CreatedAt,
	}

	if err := srv.publisher.PublishContactEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish contact event",
			slog.String("submission_id", event.SubmissionID),
			slog.Any("error", err),
		)
	}
}

func (srv *contactService) ListMessages(ctx context.Context) ([]*entity.ContactSubmission, error) {
	var messages []*entity.ContactSubmission

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		messages, err = repoFactory.NewContactRepository().List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

func (srv *contactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewContactRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrContactSubmissionNotFound) {
			return errors.Wrap(domainerrors.ErrMessageNotFound, "message not found")
		}

		return errors.Wrap(err, "failed to delete message")
	}

	srv.log(ctx).Info("Message deleted", slog.String("submission_id", id.String()))

	return nil
}

// parseContactForm decodes body into a trimmed form. Malformed JSON is
// ErrInvalidJSON; well-formed JSON of the wrong shape is a validation error.
func parseContactForm(body []byte) (*contactForm, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domainerrors.ErrInvalidJSON
	}

	object, ok := raw.(map[string]any)
	if !ok {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "",
			Message: "Expected object, received " + jsonTypeName(raw),
		})
	}

	values := make(map[string]string, len(contactFormFields))
	var typeErrs []domainerrors.FieldError
	for _, field := range contactFormFields {
		value, present := object[field]
		if !present || value == nil {
			continue
		}

		s, ok := value.(string)
		if !ok {
			typeErrs = append(typeErrs, domainerrors.FieldError{
				Field:   field,
				Message: "Expected string, received " + jsonTypeName(value),
			})

			continue
		}
		values[field] = s
	}

	if len(typeErrs) > 0 {
		return nil, domainerrors.NewValidationError(typeErrs...)
	}

	return &contactForm{
		Name:      strings.TrimSpace(values["name"]),
		Email:     strings.ToLower(strings.TrimSpace(values["email"])),
		Message:   strings.TrimSpace(values["message"]),
		CSRFToken: values["csrfToken"],
	}, nil
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return "object"
	}
}
