package errors

import (
	"net/http"

	"portfolio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication. Every login failure maps onto ErrInvalidCredentials.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrTooManyLoginAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_LOGIN_ATTEMPTS",
		"Too many login attempts. Please try again later.",
		"",
	)

	// Contact submission gate
	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests. Please try again later.",
		"",
	)

	ErrInvalidJSON = NewBaseError(
		http.StatusBadRequest,
		"INVALID_JSON",
		"Invalid JSON in request body",
		"",
	)

	ErrInvalidCSRFToken = NewBaseError(
		http.StatusForbidden,
		"INVALID_CSRF_TOKEN",
		"Invalid or expired security token. Please refresh and try again.",
		"",
	)

	ErrUnexpected = NewBaseError(
		http.StatusInternalServerError,
		"UNEXPECTED_ERROR",
		"An unexpected error occurred. Please try again later.",
		"",
	)

	// Settings
	ErrCurrentPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"CURRENT_PASSWORD_REQUIRED",
		"Current password is required",
		"",
	)

	ErrNewUsernameRequired = NewBaseError(
		http.StatusBadRequest,
		"NEW_USERNAME_REQUIRED",
		"New username is required",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"New passwords do not match",
		"",
	)

	ErrCurrentPasswordIncorrect = NewBaseError(
		http.StatusBadRequest,
		"CURRENT_PASSWORD_INCORRECT",
		"Current password is incorrect",
		"",
	)

	ErrCredentialsNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIALS_NOT_CONFIGURED",
		"Admin credentials not configured",
		"",
	)

	ErrCredentialsUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIALS_UPDATE_FAILED",
		"Failed to update credentials. Check server logs for details.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Content
	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
		"",
	)

	ErrSkillNotFound = NewBaseError(
		http.StatusNotFound,
		"SKILL_NOT_FOUND",
		"Skill not found",
		"",
	)

	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Category must be one of video, photo, web, all",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// FieldError is one client-input problem, safe to echo back.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level details of a rejected payload.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string     { return ErrValidationFailed.Message() }
func (e *ValidationError) HTTPCode() int     { return ErrValidationFailed.HTTPCode() }
func (e *ValidationError) ErrorCode() string { return ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return ErrValidationFailed.Message() }
func (e *ValidationError) Details() string   { return "" }

// RateLimitError is returned when a client exhausted its window.
type RateLimitError struct {
	base       *BaseError
	RetryAfter int // Seconds until the window resets, at least 1.
}

// NewRateLimitError wraps base with the number of seconds to wait.
func NewRateLimitError(base *BaseError, retryAfter int) *RateLimitError {
	if retryAfter < 1 {
		retryAfter = 1
	}

	return &RateLimitError{base: base, RetryAfter: retryAfter}
}

func (e *RateLimitError) Error() string     { return e.base.Message() }
func (e *RateLimitError) HTTPCode() int     { return e.base.HTTPCode() }
func (e *RateLimitError) ErrorCode() string { return e.base.ErrorCode() }
func (e *RateLimitError) Message() string   { return e.base.Message() }
func (e *RateLimitError) Details() string   { return "" }

// Unwrap lets errors.Is match the underlying predefined error.
func (e *RateLimitError) Unwrap() error { return e.base }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
