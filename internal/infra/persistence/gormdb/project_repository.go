package gormdb

import (
	"context"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// List returns live projects with their gallery, ordered by sort order.
func (repo *projectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Order("sort_order ASC").
		Order("created_at ASC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// Create persists the project; GORM inserts the gallery rows with it.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		return writeError(err, "failed to create project")
	}

	applyGeneratedProject(project, projectM)

	return nil
}

// Update overwrites the project columns and replaces its gallery.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)
	projectM.UpdatedAt = time.Now()

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ProjectModel{}).
			Where("id = ?", project.ID).
			Updates(map[string]any{
				"title":       projectM.Title,
				"category":    projectM.Category,
				"description": projectM.Description,
				"image":       projectM.Image,
				"video_url":   projectM.VideoURL,
				"tech":        projectM.Tech,
				"sort_order":  projectM.SortOrder,
				"updated_at":  projectM.UpdatedAt,
			})
		if result.Error != nil {
			return writeError(result.Error, "failed to update project")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProjectNotFound
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&model.ProjectImageModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear project gallery")
		}

		if len(projectM.Images) > 0 {
			for i := range projectM.Images {
				projectM.Images[i].ProjectID = project.ID
			}
			if err := tx.Create(&projectM.Images).Error; err != nil {
				return writeError(err, "failed to store project gallery")
			}
		}

		applyGeneratedProject(project, projectM)

		return nil
	})
}

// Delete removes a project by its ID (soft delete). The gallery stays until
// the row is purged.
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProjectModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete project")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (repo *projectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count projects")
	}

	return count, nil
}

// --- Mapper Functions ---

func applyGeneratedProject(project *entity.Project, projectM *model.ProjectModel) {
	project.ID = projectM.ID
	if !projectM.CreatedAt.IsZero() {
		project.CreatedAt = projectM.CreatedAt
	}
	project.UpdatedAt = projectM.UpdatedAt
	for i := range projectM.Images {
		if i < len(project.Images) {
			project.Images[i].ID = projectM.Images[i].ID
		}
	}
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	images := make([]entity.ProjectImage, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, entity.ProjectImage{
			ID:        image.ID,
			URL:       image.URL,
			SortOrder: image.SortOrder,
		})
	}

	tech := []string(data.Tech)
	if tech == nil {
		tech = []string{}
	}

	return &entity.Project{
		ID:          data.ID,
		Title:       data.Title,
		Category:    entity.ProjectCategory(data.Category),
		Description: data.Description,
		Image:       data.Image,
		VideoURL:    data.VideoURL,
		Tech:        tech,
		SortOrder:   data.SortOrder,
		Images:      images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	images := make([]model.ProjectImageModel, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, model.ProjectImageModel{
			ID:        image.ID,
			ProjectID: data.ID,
			URL:       image.URL,
			SortOrder: image.SortOrder,
		})
	}

	tech := data.Tech
	if tech == nil {
		tech = []string{}
	}

	return &model.ProjectModel{
		ID:          data.ID,
		Title:       data.Title,
		Category:    string(data.Category),
		Description: data.Description,
		Image:       data.Image,
		VideoURL:    data.VideoURL,
		Tech:        datatypes.JSONSlice[string](tech),
		SortOrder:   data.SortOrder,
		Images:      images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
