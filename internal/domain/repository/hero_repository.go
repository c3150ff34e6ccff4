package repository

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrHeroNotFound is returned when no hero section was saved yet.
var ErrHeroNotFound = errors.New("hero section not found")

// HeroRepository stores the singleton hero section.
type HeroRepository interface {
	// FindFirst returns the hero section or ErrHeroNotFound.
	FindFirst(ctx context.Context) (*entity.HeroSection, error)

	// Save updates the existing row, or creates it when there is none.
	Save(ctx context.Context, hero *entity.HeroSection) error
}
