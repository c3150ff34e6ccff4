package service

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialsUnavailable is returned by a provider that has no record to offer.
var ErrCredentialsUnavailable = errors.New("credentials unavailable")

// CredentialProvider is one source of the admin credential record.
type CredentialProvider interface {
	// Name identifies the source in logs.
	Name() string

	// Load returns the record, or an error when this source cannot supply one.
	Load(ctx context.Context) (entity.Credentials, error)
}

// CredentialStore resolves the current admin credentials from its providers.
// It never caches: every call reads the sources again.
type CredentialStore interface {
	// Resolve returns the first record supplied by the ordered providers, or
	// empty credentials when none could.
	Resolve(ctx context.Context) entity.Credentials
}

// CredentialWriter persists a new credential record to the highest-precedence source.
type CredentialWriter interface {
	Save(ctx context.Context, credentials entity.Credentials) error
}
