package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"
	"portfolio/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ContentUsecase {
	return &contentService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetHero returns nil without error when no hero section was saved yet.
func (srv *contentService) GetHero(ctx context.Context) (*entity.HeroSection, error) {
	var hero *entity.HeroSection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		hero, err = repoFactory.NewHeroRepository().FindFirst(ctx)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrHeroNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find hero section")
	}

	return hero, nil
}

func (srv *contentService) SaveHero(ctx context.Context, input *usecase.HeroInput) (*entity.HeroSection, error) {
	hero := &entity.HeroSection{
		Greeting:    input.Greeting,
		Heading:     input.Heading,
		Description: input.Description,
		HeroImage:   entity.OptionalString(input.HeroImage),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewHeroRepository().Save(ctx, hero)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save hero section")
	}

	srv.log(ctx).Info("Hero section saved", slog.String("hero_id", hero.ID.String()))

	return hero, nil
}

func (srv *contentService) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	var projects []*entity.Project

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		projects, err = repoFactory.NewProjectRepository().List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	for _, project := range projects {
		withEmbedURL(project)
	}

	return projects, nil
}

func (srv *contentService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var project *entity.Project

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		project, err = repoFactory.NewProjectRepository().FindByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, projectError(err, "failed to find project")
	}

	return withEmbedURL(project), nil
}

func (srv *contentService) CreateProject(ctx context.Context, input *usecase.ProjectInput) (*entity.Project, error) {
	project, err := projectFromInput(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProjectRepository().Create(ctx, project)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created", slog.String("project_id", project.ID.String()))

	return withEmbedURL(project), nil
}

// UpdateProject overwrites the project and replaces its gallery, then
// returns the stored state.
func (srv *contentService) UpdateProject(ctx context.Context, id uuid.UUID, input *usecase.ProjectInput) (*entity.Project, error) {
	project, err := projectFromInput(input)
	if err != nil {
		return nil, err
	}
	project.ID = id

	var updated *entity.Project
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		projectRepo := repoFactory.NewProjectRepository()
		if err := projectRepo.Update(ctx, project); err != nil {
			return err
		}

		var err error
		updated, err = projectRepo.FindByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, projectError(err, "failed to update project")
	}

	srv.log(ctx).Info("Project updated", slog.String("project_id", id.String()))

	return withEmbedURL(updated), nil
}

func (srv *contentService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProjectRepository().Delete(ctx, id)
	})
	if err != nil {
		return projectError(err, "failed to delete project")
	}

	srv.log(ctx).Info("Project deleted", slog.String("project_id", id.String()))

	return nil
}

func (srv *contentService) ListSkills(ctx context.Context) ([]*entity.Skill, error) {
	var skills []*entity.Skill

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		skills, err = repoFactory.NewSkillRepository().List(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	return skills, nil
}

func (srv *contentService) CreateSkill(ctx context.Context, input *usecase.SkillInput) (*entity.Skill, error) {
	skill := &entity.Skill{
		Name:     strings.TrimSpace(input.Name),
		Level:    input.Level,
		Category: strings.TrimSpace(input.Category),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		skillRepo := repoFactory.NewSkillRepository()

		maxOrder, err := skillRepo.MaxSortOrder(ctx)
		if err != nil {
			return err
		}
		skill.SortOrder = maxOrder + 1

		return skillRepo.Create(ctx, skill)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create skill")
	}

	srv.log(ctx).Info("Skill created", slog.String("skill_id", skill.ID.String()))

	return skill, nil
}

func (srv *contentService) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewSkillRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return errors.Wrap(domainerrors.ErrSkillNotFound, "skill not found")
		}

		return errors.Wrap(err, "failed to delete skill")
	}

	srv.log(ctx).Info("Skill deleted", slog.String("skill_id", id.String()))

	return nil
}

func projectFromInput(input *usecase.ProjectInput) (*entity.Project, error) {
	category := entity.ProjectCategory(strings.TrimSpace(input.Category))
	if !category.Valid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	images := make([]entity.ProjectImage, 0, len(input.Images))
	for _, url := range input.Images {
		if url = strings.TrimSpace(url); url != "" {
			images = append(images, entity.ProjectImage{URL: url, SortOrder: len(images)})
		}
	}

	tech := []string(input.Tech)
	if tech == nil {
		tech = []string{}
	}

	return &entity.Project{
		Title:       strings.TrimSpace(input.Title),
		Category:    category,
		Description: input.Description,
		Image:       entity.OptionalString(input.Image),
		VideoURL:    entity.OptionalString(input.VideoURL),
		Tech:        tech,
		SortOrder:   input.SortOrder,
		Images:      images,
	}, nil
}

// withEmbedURL derives the privacy-enhanced player URL for YouTube videos.
func withEmbedURL(project *entity.Project) *entity.Project {
	if project == nil || project.VideoURL == nil {
		return project
	}

	if embed, ok := util.YouTubeEmbedURL(*project.VideoURL); ok {
		project.EmbedURL = &embed
	}

	return project
}

func projectError(err error, message string) error {
	if errors.Is(err, repository.ErrProjectNotFound) {
		return errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
	}

	return errors.Wrap(err, message)
}
