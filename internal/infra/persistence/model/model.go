// Package model holds the GORM-specific table structs.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// All lists every table struct, in migration order.
func All() []any {
	return []any{
		&ContactSubmissionModel{},
		&HeroSectionModel{},
		&ProjectModel{},
		&ProjectImageModel{},
		&SkillModel{},
	}
}

// assignID gives a fresh UUIDv7 to rows that were created without one.
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate row id")
	}
	*id = generated

	return nil
}
