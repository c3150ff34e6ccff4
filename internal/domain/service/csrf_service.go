package service

import (
	"context"
	"time"
)

// SecretProvider supplies the process-wide signing secret for CSRF tokens.
// It is consulted once at startup; the secret must stay stable afterwards.
type SecretProvider interface {
	Secret(ctx context.Context) (string, error)
}

// CSRFService mints and verifies stateless anti-forgery tokens.
type CSRFService interface {
	// Issue returns a fresh token on every call.
	Issue() (string, error)

	// Validate reports whether token was issued with the current secret and is
	// not older than maxAge. It never panics on malformed input.
	Validate(token string, maxAge time.Duration) bool
}
