package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const credentialsUpdated = "Credentials updated successfully! You can now log in with your new credentials."

// AdminHandler serves the dashboard and the settings page.
type AdminHandler struct {
	portfolio usecase.PortfolioUsecase
	settings  usecase.SettingsUsecase
	sessions  service.SessionManager
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	portfolio usecase.PortfolioUsecase,
	settings usecase.SettingsUsecase,
	sessions service.SessionManager,
) *AdminHandler {
	return &AdminHandler{
		portfolio: portfolio,
		settings:  settings,
		sessions:  sessions,
	}
}

// Dashboard returns content counts and the latest messages.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.portfolio.GetDashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// UpdateCredentials changes the admin username and optionally the password.
// Every session, including the caller's, stops validating afterwards, so the
// caller's cookie is cleared as well.
func (h *AdminHandler) UpdateCredentials(c echo.Context) error {
	var input usecase.UpdateCredentialsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := h.settings.UpdateCredentials(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.sessions.Revoke(c.Response(), c.Request()); err != nil {
		return errors.Wrap(err, "revoke session")
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": credentialsUpdated})
}
