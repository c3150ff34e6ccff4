package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	credentials service.CredentialStore
	writer      service.CredentialWriter
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	credentials service.CredentialStore,
	writer service.CredentialWriter,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		credentials: credentials,
		writer:      writer,
		hasher:      hasher,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateCredentials checks the form, re-verifies the current password and
// writes the new record to the credential object.
func (srv *settingsService) UpdateCredentials(ctx context.Context, input *usecase.UpdateCredentialsInput) error {
	if input.CurrentPassword == "" {
		return domainerrors.ErrCurrentPasswordRequired
	}

	newUsername := strings.TrimSpace(input.NewUsername)
	if newUsername == "" {
		return domainerrors.ErrNewUsernameRequired
	}

	if input.NewPassword != "" && input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	current := srv.credentials.Resolve(ctx)
	if !current.IsConfigured() {
		return domainerrors.ErrCredentialsNotConfigured
	}

	if !srv.hasher.Check(input.CurrentPassword, current.PasswordHash) {
		srv.log(ctx).Warn("Credential update rejected: current password mismatch")

		return domainerrors.ErrCurrentPasswordIncorrect
	}

	passwordHash := current.PasswordHash
	if input.NewPassword != "" {
		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		passwordHash = hash
	}

	updated := entity.Credentials{
		Username:     newUsername,
		PasswordHash: passwordHash,
	}

	if err := srv.writer.Save(ctx, updated); err != nil {
		srv.log(ctx).Error("Failed to write credentials", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCredentialsUpdateFailed, err.Error())
	}

	srv.log(ctx).Info("Admin credentials updated",
		slog.Bool("username_changed", newUsername != current.Username),
		slog.Bool("password_changed", input.NewPassword != ""),
	)

	return nil
}
