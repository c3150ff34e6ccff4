package gormdb

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{db: db}
}

func (repo *skillRepository) List(ctx context.Context) ([]*entity.Skill, error) {
	var skillModels []*model.SkillModel

	if err := repo.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&skillModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	skills := make([]*entity.Skill, 0, len(skillModels))
	for _, skillM := range skillModels {
		skills = append(skills, toSkillDomain(skillM))
	}

	return skills, nil
}

func (repo *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	skillM := fromSkillDomain(skill)

	if err := repo.db.WithContext(ctx).Create(skillM).Error; err != nil {
		return writeError(err, "failed to create skill")
	}

	skill.ID = skillM.ID

	return nil
}

// Delete removes a skill by its ID (soft delete).
func (repo *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SkillModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete skill")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSkillNotFound
	}

	return nil
}

func (repo *skillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SkillModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count skills")
	}

	return count, nil
}

func (repo *skillRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var maxOrder int
	if err := repo.db.WithContext(ctx).
		Model(&model.SkillModel{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read max skill sort order")
	}

	return maxOrder, nil
}

// --- Mapper Functions ---

func toSkillDomain(data *model.SkillModel) *entity.Skill {
	if data == nil {
		return nil
	}

	return &entity.Skill{
		ID:        data.ID,
		Name:      data.Name,
		Level:     data.Level,
		Category:  data.Category,
		SortOrder: data.SortOrder,
	}
}

func fromSkillDomain(data *entity.Skill) *model.SkillModel {
	if data == nil {
		return nil
	}

	return &model.SkillModel{
		ID:        data.ID,
		Name:      data.Name,
		Level:     data.Level,
		Category:  data.Category,
		SortOrder: data.SortOrder,
	}
}
