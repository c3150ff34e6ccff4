package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"portfolio/internal/delivery/api/response"
	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

const adminAPIPrefix = "/admin/api/"

// GuardMiddleware loads the session cookie and asks the route guard whether
// the request may reach the admin area.
type GuardMiddleware struct {
	guard    usecase.RouteGuard
	sessions service.SessionManager
	logger   *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(guard usecase.RouteGuard, sessions service.SessionManager, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{
		guard:    guard,
		sessions: sessions,
		logger:   logger,
	}
}

// Protect evaluates every request; nothing is cached between requests.
// Denied page requests are redirected to the login page, denied API
// requests get 401.
func (m *GuardMiddleware) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		path := req.URL.Path

		session, err := m.sessions.Load(req)
		if err != nil {
			session = nil
		}

		decision := m.guard.Authorize(req.Context(), path, session)
		if decision.Allow {
			if session != nil {
				deliverycontext.SetSession(c, session)
			}

			return next(c)
		}

		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Debug("Admin request denied",
			slog.String("path", path),
			slog.Bool("had_session", session != nil),
		)

		if strings.HasPrefix(path, adminAPIPrefix) {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		target := decision.RedirectTo + "?callbackUrl=" + url.QueryEscape(path)

		return c.Redirect(http.StatusSeeOther, target)
	}
}
