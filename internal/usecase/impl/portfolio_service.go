package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
)

const recentMessagesLimit = 5

// skillGroupNames are the showcase sections skills are bucketed into.
var skillGroupNames = []string{"video", "photo", "web"}

// portfolioService implements the PortfolioUsecase interface.
type portfolioService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPortfolioService is the constructor for portfolioService.
func NewPortfolioService(txManager repository.TransactionManager, logger *slog.Logger) usecase.PortfolioUsecase {
	return &portfolioService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *portfolioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPortfolio reads hero, projects and skills in one transaction. Each
// section that is empty, or all of them when the read fails, is replaced by
// default content.
func (srv *portfolioService) GetPortfolio(ctx context.Context) *usecase.Portfolio {
	var (
		hero     *entity.HeroSection
		projects []*entity.Project
		skills   []*entity.Skill
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		hero, err = repoFactory.NewHeroRepository().FindFirst(ctx)
		if err != nil && !errors.Is(err, repository.ErrHeroNotFound) {
			return err
		}

		if projects, err = repoFactory.NewProjectRepository().List(ctx); err != nil {
			return err
		}

		skills, err = repoFactory.NewSkillRepository().List(ctx)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load portfolio content, using fallback data", slog.Any("error", err))
		hero, projects, skills = nil, nil, nil
	}

	result := &usecase.Portfolio{
		Hero:     hero,
		Projects: projects,
		Skills:   skills,
	}

	if result.Hero == nil {
		result.Hero = defaultHero()
		result.Fallback = true
	}
	if len(result.Projects) == 0 {
		result.Projects = defaultProjects()
		result.Fallback = true
	}
	if len(result.Skills) == 0 {
		result.Skills = defaultSkills()
		result.Fallback = true
	}

	for _, project := range result.Projects {
		withEmbedURL(project)
	}
	result.SkillGroups = groupSkills(result.Skills)

	return result
}

func (srv *portfolioService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	dashboard := &usecase.Dashboard{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		if dashboard.Projects, err = repoFactory.NewProjectRepository().Count(ctx); err != nil {
			return err
		}
		if dashboard.Skills, err = repoFactory.NewSkillRepository().Count(ctx); err != nil {
			return err
		}

		contactRepo := repoFactory.NewContactRepository()
		if dashboard.Messages, err = contactRepo.Count(ctx); err != nil {
			return err
		}

		dashboard.RecentMessages, err = contactRepo.Recent(ctx, recentMessagesLimit)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard")
	}

	return dashboard, nil
}

func groupSkills(skills []*entity.Skill) map[string][]*entity.Skill {
	groups := make(map[string][]*entity.Skill, len(skillGroupNames))
	for _, name := range skillGroupNames {
		groups[name] = []*entity.Skill{}
	}

	for _, skill := range skills {
		if _, ok := groups[skill.Category]; ok {
			groups[skill.Category] = append(groups[skill.Category], skill)
		}
	}

	return groups
}

func defaultHero() *entity.HeroSection {
	return &entity.HeroSection{
		Greeting:    "Hi,",
		Heading:     "Welcome to my portfolio",
		Description: "I create engaging and interactive experiences across video, photography and the web.",
	}
}

func defaultProjects() []*entity.Project {
	image := "N/A.gif"

	return []*entity.Project{{
		Title:       "N/A",
		Category:    entity.ProjectCategoryAll,
		Description: "N/A",
		Image:       &image,
		Tech:        []string{"N/A"},
		SortOrder:   1,
		Images:      []entity.ProjectImage{},
	}}
}

func defaultSkills() []*entity.Skill {
	return []*entity.Skill{{
		Name:      "N/A",
		Level:     0,
		Category:  "N/A",
		SortOrder: 1,
	}}
}
