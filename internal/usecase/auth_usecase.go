// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// LoginOutcome tags how a login attempt ended. Only LoginAuthenticated is a
// success; every other tag maps to the same external error.
type LoginOutcome string

const (
	LoginInvalidInput           LoginOutcome = "invalid_input"
	LoginCredentialLookupFailed LoginOutcome = "credential_lookup_failed"
	LoginUsernameMismatch       LoginOutcome = "username_mismatch"
	LoginPasswordMismatch       LoginOutcome = "password_mismatch"
	LoginAuthenticated          LoginOutcome = "authenticated"
)

// LoginInput is the submitted login form.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required,max=256"`
	Password string `json:"password" form:"password" validate:"required,max=1024"`
}

// AuthUsecase authenticates the single admin identity.
type AuthUsecase interface {
	// Authenticate runs one login attempt against the current credentials.
	// The session is non-nil only for LoginAuthenticated.
	Authenticate(ctx context.Context, input *LoginInput) (LoginOutcome, *entity.Session)

	// Login throttles attempts per client and collapses every failure into
	// ErrInvalidCredentials, or a RateLimitError once the client is throttled.
	Login(ctx context.Context, clientIP string, input *LoginInput) (*entity.Session, error)

	// ValidateSession reports whether a previously issued session is still
	// usable: not expired and issued for the credentials in force now.
	ValidateSession(ctx context.Context, session *entity.Session) bool
}
