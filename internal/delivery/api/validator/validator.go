// Package validator adapts go-playground/validator to Echo and to the
// field-level error details returned to clients.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)

	// GitHub logins: 1..39 alphanumerics or single hyphens, not at either end.
	githubUserPattern = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9]|-[a-zA-Z0-9])*$`)
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so details match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("githubuser", func(fl validator.FieldLevel) bool {
		return IsGitHubUsername(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate validates a struct and returns a *domainerrors.ValidationError
// listing every failing field.
func (v *Validator) Validate(i any) error {
	return v.ValidateWithMessages(i, nil)
}

// ValidateWithMessages is Validate with client-facing messages keyed by
// "field.tag". Unmapped failures fall back to a generic message.
func (v *Validator) ValidateWithMessages(i any, messages map[string]string) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate struct")
	}

	details := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: message(fe, messages),
		})
	}

	return domainerrors.NewValidationError(details...)
}

// IsGitHubUsername reports whether name is a valid GitHub login.
func IsGitHubUsername(name string) bool {
	return len(name) <= 39 && githubUserPattern.MatchString(name)
}

func message(fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return "Must be at least " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param()
	case "oneof":
		return "Must be one of " + fe.Param()
	case "email":
		return "Invalid email"
	case "uuid":
		return "Invalid id"
	default:
		return "Invalid value"
	}
}
