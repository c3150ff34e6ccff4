package gormdb

import (
	"context"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type heroRepository struct {
	db *gorm.DB
}

// NewHeroRepository is the constructor for heroRepository.
func NewHeroRepository(db *gorm.DB) repository.HeroRepository {
	return &heroRepository{db: db}
}

func (repo *heroRepository) FindFirst(ctx context.Context) (*entity.HeroSection, error) {
	heroM, err := repo.first(ctx)
	if err != nil {
		return nil, err
	}

	return toHeroDomain(heroM), nil
}

func (repo *heroRepository) first(ctx context.Context) (*model.HeroSectionModel, error) {
	var heroM model.HeroSectionModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&heroM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHeroNotFound
		}

		return nil, errors.Wrap(err, "failed to find hero section")
	}

	return &heroM, nil
}

// Save updates the first hero row in place, or inserts one when the table is empty.
func (repo *heroRepository) Save(ctx context.Context, hero *entity.HeroSection) error {
	existing, err := repo.first(ctx)
	if err != nil && !errors.Is(err, repository.ErrHeroNotFound) {
		return err
	}

	if existing == nil {
		heroM := fromHeroDomain(hero)
		if err := repo.db.WithContext(ctx).Create(heroM).Error; err != nil {
			return writeError(err, "failed to create hero section")
		}
		hero.ID = heroM.ID
		hero.UpdatedAt = heroM.UpdatedAt

		return nil
	}

	now := time.Now()
	if err := repo.db.WithContext(ctx).
		Model(existing).
		Updates(map[string]any{
			"greeting":    hero.Greeting,
			"heading":     hero.Heading,
			"description": hero.Description,
			"hero_image":  hero.HeroImage,
			"updated_at":  now,
		}).Error; err != nil {
		return writeError(err, "failed to update hero section")
	}

	hero.ID = existing.ID
	hero.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

func toHeroDomain(data *model.HeroSectionModel) *entity.HeroSection {
	if data == nil {
		return nil
	}

	return &entity.HeroSection{
		ID:          data.ID,
		Greeting:    data.Greeting,
		Heading:     data.Heading,
		Description: data.Description,
		HeroImage:   data.HeroImage,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromHeroDomain(data *entity.HeroSection) *model.HeroSectionModel {
	if data == nil {
		return nil
	}

	return &model.HeroSectionModel{
		ID:          data.ID,
		Greeting:    data.Greeting,
		Heading:     data.Heading,
		Description: data.Description,
		HeroImage:   data.HeroImage,
	}
}
