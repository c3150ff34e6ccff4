package usecase

import "context"

// UpdateCredentialsInput is the settings form. NewPassword is optional; the
// current password hash is kept when it is empty.
type UpdateCredentialsInput struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewUsername     string `json:"newUsername" form:"newUsername"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// SettingsUsecase manages the admin credentials.
type SettingsUsecase interface {
	// UpdateCredentials verifies the current password and writes the new
	// record. Sessions issued for the old record stop validating.
	UpdateCredentials(ctx context.Context, input *UpdateCredentialsInput) error
}
