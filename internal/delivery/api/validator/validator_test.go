package validator

import (
	"testing"

	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,min=2,personname"`
	Email string `json:"email" validate:"required,email"`
	Level int    `json:"level" validate:"min=0,max=100"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Name: "Mary-Jane O'Neil Jr.", Email: "mj@example.com", Level: 50})
	assert.NoError(t, err)
}

func TestValidator_FieldDetails(t *testing.T) {
	v := New()

	err := v.ValidateWithMessages(&sample{Name: "R2D2", Email: "nope", Level: 101}, map[string]string{
		"name.personname": "letters only",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []domainerrors.FieldError{
		{Field: "name", Message: "letters only"},
		{Field: "email", Message: "Invalid email"},
		{Field: "level", Message: "Must be at most 100"},
	}, validationErr.Fields)
}

func TestIsGitHubUsername(t *testing.T) {
	valid := []string{"a", "octocat", "my-user", "a1-b2-c3", "abcdefghijabcdefghijabcdefghijabcdefghi"}
	invalid := []string{"", "-lead", "trail-", "dou--ble", "under_score", "abcdefghijabcdefghijabcdefghijabcdefghij"}

	for _, name := range valid {
		assert.True(t, IsGitHubUsername(name), name)
	}
	for _, name := range invalid {
		assert.False(t, IsGitHubUsername(name), name)
	}
}
