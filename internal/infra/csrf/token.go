// Package csrf issues and verifies stateless anti-forgery tokens of the form
// value.timestamp.signature.
package csrf

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"portfolio/internal/domain/lifecycle"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	"go.uber.org/fx"
)

const tokenValueBytes = 32

// hmacService signs tokens with HMAC-SHA256 under a secret fixed at construction.
type hmacService struct {
	secret []byte
	now    func() time.Time
}

// Params defines the dependencies of the CSRF service.
type Params struct {
	fx.In

	Secrets service.SecretProvider
	Logger  *slog.Logger
}

// New resolves the signing secret once and builds the service.
func New(params Params) (service.CSRFService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	secret, err := params.Secrets.Secret(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve csrf secret")
	}

	return NewService(secret, time.Now), nil
}

// NewService builds the service from a known secret and clock.
func NewService(secret string, now func() time.Time) service.CSRFService {
	return &hmacService{secret: []byte(secret), now: now}
}

// Issue returns a fresh token carrying the current time in base36 milliseconds.
func (s *hmacService) Issue() (string, error) {
	raw := make([]byte, tokenValueBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	value := hex.EncodeToString(raw)
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 36)

	return value + "." + timestamp + "." + s.sign(value, timestamp), nil
}

// Validate rejects anything malformed, re-signed, or older than maxAge.
// Tokens from the future are accepted, only age is bounded.
func (s *hmacService) Validate(token string, maxAge time.Duration) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}

	value, timestamp, signature := parts[0], parts[1], parts[2]
	if value == "" || timestamp == "" || signature == "" {
		return false
	}

	expected := s.sign(value, timestamp)
	if len(signature) != len(expected) {
		return false
	}
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return false
	}

	issuedMillis, err := strconv.ParseInt(timestamp, 36, 64)
	if err != nil {
		return false
	}

	age := s.now().UnixMilli() - issuedMillis

	return age <= maxAge.Milliseconds()
}

func (s *hmacService) sign(value, timestamp string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value + "." + timestamp))

	return hex.EncodeToString(mac.Sum(nil))
}
