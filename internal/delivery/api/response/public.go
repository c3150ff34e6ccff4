package response

import (
	"net/http"

	domainerrors "portfolio/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// PublicError is the flat error body of the public API.
type PublicError struct {
	Error      string                    `json:"error"`
	Details    []domainerrors.FieldError `json:"details,omitempty"`
	RetryAfter int                       `json:"retryAfter,omitempty"`
}

// Flat writes a public error body.
func Flat(c echo.Context, statusCode int, body PublicError) error {
	return c.JSON(statusCode, body)
}

// MethodNotAllowed rejects a verb the public endpoint does not serve.
func MethodNotAllowed(c echo.Context) error {
	return Flat(c, http.StatusMethodNotAllowed, PublicError{Error: "Method not allowed"})
}
