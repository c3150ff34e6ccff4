package service

import (
	"portfolio/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the JWT claims of an admin session token.
type SessionClaims struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Fingerprint string `json:"fp"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the session transport.
type TokenService interface {
	// GenerateSessionToken signs a token carrying the session.
	GenerateSessionToken(session *entity.Session) (string, error)

	// ValidateSessionToken verifies signature and expiry and returns the session.
	ValidateSessionToken(token string) (*entity.Session, error)
}
