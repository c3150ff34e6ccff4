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

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// Create persists a new submission and copies the generated values back.
func (repo *contactRepository) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	submissionM := fromContactDomain(submission)

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		return writeError(err, "failed to create contact submission")
	}

	submission.ID = submissionM.ID
	submission.CreatedAt = submissionM.CreatedAt

	return nil
}

func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactSubmission, error) {
	var submissionM model.ContactSubmissionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact submission")
	}

	return toContactDomain(&submissionM), nil
}

func (repo *contactRepository) List(ctx context.Context) ([]*entity.ContactSubmission, error) {
	return repo.find(ctx, 0)
}

func (repo *contactRepository) Recent(ctx context.Context, limit int) ([]*entity.ContactSubmission, error) {
	if limit <= 0 {
		return []*entity.ContactSubmission{}, nil
	}

	return repo.find(ctx, limit)
}

func (repo *contactRepository) find(ctx context.Context, limit int) ([]*entity.ContactSubmission, error) {
	var submissionModels []*model.ContactSubmissionModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contact submissions")
	}

	submissions := make([]*entity.ContactSubmission, 0, len(submissionModels))
	for _, submissionM := range submissionModels {
		submissions = append(submissions, toContactDomain(submissionM))
	}

	return submissions, nil
}

func (repo *contactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ContactSubmissionModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count contact submissions")
	}

	return count, nil
}

// Delete removes a submission by its ID (soft delete).
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactSubmissionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact submission")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactSubmissionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactSubmissionModel) *entity.ContactSubmission {
	if data == nil {
		return nil
	}

	return &entity.ContactSubmission{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Message:   data.Message,
		IPHash:    data.IPHash,
		CreatedAt: data.CreatedAt,
	}
}

func fromContactDomain(data *entity.ContactSubmission) *model.ContactSubmissionModel {
	if data == nil {
		return nil
	}

	return &model.ContactSubmissionModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Message:   data.Message,
		IPHash:    data.IPHash,
		CreatedAt: data.CreatedAt,
	}
}
