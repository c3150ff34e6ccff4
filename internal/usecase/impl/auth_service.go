// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"portfolio/config"
	"portfolio/internal/delivery/api/validator"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"
	"portfolio/internal/util"

	"go.uber.org/fx"
)

// loginKeyPrefix keeps login throttling apart from the contact form limit.
const loginKeyPrefix = "login:"

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Credentials service.CredentialStore
	Hasher      service.PasswordHasher
	Limiter     service.RateLimiter
	Validator   *validator.Validator
	Config      *config.Config
	Logger      *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	credentials service.CredentialStore
	hasher      service.PasswordHasher
	limiter     service.RateLimiter
	validator   *validator.Validator
	cfg         *config.Config
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentials: params.Credentials,
		hasher:      params.Hasher,
		limiter:     params.Limiter,
		validator:   params.Validator,
		cfg:         params.Config,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate walks the login state machine. Credentials are resolved on
// every call so a change to the credential record is seen immediately.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.LoginInput) (usecase.LoginOutcome, *entity.Session) {
	if input == nil {
		return usecase.LoginInvalidInput, nil
	}
	if err := srv.validator.Validate(input); err != nil {
		srv.log(ctx).Debug("Login input rejected", slog.Any("error", err))

		return usecase.LoginInvalidInput, nil
	}

	creds := srv.credentials.Resolve(ctx)
	if !creds.IsConfigured() {
		return usecase.LoginCredentialLookupFailed, nil
	}

	if subtle.ConstantTimeCompare([]byte(input.Username), []byte(creds.Username)) != 1 {
		return usecase.LoginUsernameMismatch, nil
	}

	if !srv.hasher.Check(input.Password, creds.PasswordHash) {
		return usecase.LoginPasswordMismatch, nil
	}

	now := srv.now()

	return usecase.LoginAuthenticated, &entity.Session{
		Principal:   entity.AdminPrincipal(),
		Fingerprint: creds.Fingerprint(),
		IssuedAt:    now,
		ExpiresAt:   now.Add(srv.cfg.Session.MaxAge),
	}
}

// Login throttles per hashed client IP, then authenticates. The outcome tag
// only reaches the logs; callers see ErrInvalidCredentials for all failures.
func (srv *authService) Login(ctx context.Context, clientIP string, input *usecase.LoginInput) (*entity.Session, error) {
	identifier := loginKeyPrefix + util.HashIdentifier(clientIP)
	limit := srv.cfg.RateLimit.Login

	result, err := srv.limiter.Check(ctx, identifier, limit.MaxRequests, limit.Window)
	switch {
	case err != nil:
		// Fail open on store errors.
		srv.log(ctx).Error("Login rate limit check failed", slog.Any("error", err))
	case !result.Allowed:
		srv.log(ctx).Warn("Login throttled", slog.String("identifier", identifier))

		return nil, domainerrors.NewRateLimitError(domainerrors.ErrTooManyLoginAttempts, result.RetryAfter(srv.now()))
	}

	outcome, session := srv.Authenticate(ctx, input)
	if outcome != usecase.LoginAuthenticated {
		level := slog.LevelInfo
		if outcome == usecase.LoginCredentialLookupFailed {
			level = slog.LevelWarn
		}
		srv.log(ctx).Log(ctx, level, "Login rejected",
			slog.String("outcome", string(outcome)),
			slog.String("identifier", identifier),
		)

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Info("Login succeeded", slog.String("identifier", identifier))

	return session, nil
}

// ValidateSession rejects expired sessions and sessions issued for a
// credential record that has since been replaced.
func (srv *authService) ValidateSession(ctx context.Context, session *entity.Session) bool {
	if session == nil || session.Expired(srv.now()) {
		return false
	}

	creds := srv.credentials.Resolve(ctx)
	if !creds.IsConfigured() {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(session.Fingerprint), []byte(creds.Fingerprint())) == 1
}
