package gormdb

import (
	"strings"

	domainerrors "portfolio/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isNotNullConstraintViolation matches both the PostgreSQL (23502) and the
// SQLite wording of a NOT NULL failure.
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}

// writeError converts a failed insert or update into a domain error.
func writeError(err error, action string) error {
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, action+": constraint violated")
	}

	return domainerrors.NewDatabaseExecuteError(err, action)
}
