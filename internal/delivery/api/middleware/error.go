package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"portfolio/internal/delivery/api/response"
	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	headerRetryAfter         = "Retry-After"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
)

// ErrorMiddleware handles errors in the HTTP pipeline. Admin routes answer
// with the response envelope, public routes with a flat {"error": ...} body.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var rateErr *domainerrors.RateLimitError
	if errors.As(err, &rateErr) {
		c.Response().Header().Set(headerRetryAfter, strconv.Itoa(rateErr.RetryAfter))
		c.Response().Header().Set(headerRateLimitRemaining, "0")
	}

	if isAdminPath(c.Request().URL.Path) {
		m.handleAdmin(err, c)

		return
	}

	m.handlePublic(err, c, rateErr)
}

func (m *ErrorMiddleware) handleAdmin(err error, c echo.Context) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		_ = response.HandleAppError(c, err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", httpMessage(httpErr), nil)

		return
	}

	m.logError(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) handlePublic(err error, c echo.Context, rateErr *domainerrors.RateLimitError) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Flat(c, http.StatusBadRequest, response.PublicError{
			Error:   validationErr.Message(),
			Details: validationErr.Fields,
		})

		return
	}

	if rateErr != nil {
		_ = response.Flat(c, rateErr.HTTPCode(), response.PublicError{
			Error:      rateErr.Message(),
			RetryAfter: rateErr.RetryAfter,
		})

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		_ = response.Flat(c, appErr.HTTPCode(), response.PublicError{Error: appErr.Message()})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Flat(c, httpErr.Code, response.PublicError{Error: httpMessage(httpErr)})

		return
	}

	m.logError(c, err)
	_ = response.Flat(c, http.StatusInternalServerError, response.PublicError{
		Error: domainerrors.ErrUnexpected.Message(),
	})
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func httpMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}

	return "An error occurred"
}

func isAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}
