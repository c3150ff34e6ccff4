package auth

import (
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "portfolio"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(secret string, ttl time.Duration) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// GenerateSessionToken signs the session with HS256.
func (s *jwtService) GenerateSessionToken(session *entity.Session) (string, error) {
	issuedAt := session.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = s.now()
	}
	expiresAt := session.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = issuedAt.Add(s.ttl)
	}

	claims := service.SessionClaims{
		Name:        session.Principal.Name,
		Email:       session.Principal.Email,
		Fingerprint: session.Fingerprint,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   session.Principal.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// ValidateSessionToken checks signature, algorithm, issuer and expiry.
func (s *jwtService) ValidateSessionToken(tokenString string) (*entity.Session, error) {
	claims := &service.SessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	session := &entity.Session{
		Principal: entity.Principal{
			ID:    claims.Subject,
			Name:  claims.Name,
			Email: claims.Email,
		},
		Fingerprint: claims.Fingerprint,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}
