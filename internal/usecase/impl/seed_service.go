package impl

import (
	"context"
	"log/slog"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SeedUsecase {
	return &seedService{
		txManager: txManager,
		logger:    logger,
	}
}

// Seed writes starter content into every empty section in one transaction.
func (srv *seedService) Seed(ctx context.Context) (*usecase.SeedResult, error) {
	result := &usecase.SeedResult{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		heroRepo := repoFactory.NewHeroRepository()
		if _, err := heroRepo.FindFirst(ctx); err != nil {
			if !errors.Is(err, repository.ErrHeroNotFound) {
				return errors.Wrap(err, "failed to check hero section")
			}
			if err := heroRepo.Save(ctx, seedHero()); err != nil {
				return errors.Wrap(err, "failed to seed hero section")
			}
			result.Hero = true
		}

		skillRepo := repoFactory.NewSkillRepository()
		skillCount, err := skillRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count skills")
		}
		if skillCount == 0 {
			for _, skill := range seedSkills() {
				if err := skillRepo.Create(ctx, skill); err != nil {
					return errors.Wrap(err, "failed to seed skill")
				}
				result.Skills++
			}
		}

		projectRepo := repoFactory.NewProjectRepository()
		projectCount, err := projectRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count projects")
		}
		if projectCount == 0 {
			for _, project := range seedProjects() {
				if err := projectRepo.Create(ctx, project); err != nil {
					return errors.Wrap(err, "failed to seed project")
				}
				result.Projects++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Seeding finished",
		slog.Bool("hero", result.Hero),
		slog.Int("skills", result.Skills),
		slog.Int("projects", result.Projects),
	)

	return result, nil
}

func seedHero() *entity.HeroSection {
	return &entity.HeroSection{
		Greeting:    "Hi, nice to meet you,",
		Heading:     "I'm a creative developer",
		Description: "I build engaging and interactive experiences, with a strong foundation in web development and a keen eye for detail in video and photo work.",
	}
}

func seedSkills() []*entity.Skill {
	skills := []struct {
		name     string
		level    int
		category string
	}{
		{"Adobe Premiere Pro", 95, "video"},
		{"After Effects", 90, "video"},
		{"CapCut", 85, "video"},
		{"Canva", 80, "video"},
		{"Adobe Photoshop", 95, "photo"},
		{"Lightroom", 90, "photo"},
		{"Canva", 85, "photo"},
		{"Next.js / React", 95, "web"},
		{"TypeScript", 90, "web"},
		{"Tailwind CSS", 95, "web"},
		{"Go", 85, "web"},
	}

	seeded := make([]*entity.Skill, 0, len(skills))
	for i, s := range skills {
		seeded = append(seeded, &entity.Skill{
			Name:      s.name,
			Level:     s.level,
			Category:  s.category,
			SortOrder: i + 1,
		})
	}

	return seeded
}

func seedProjects() []*entity.Project {
	project := func(order int, title string, category entity.ProjectCategory, description, image string, tech ...string) *entity.Project {
		return &entity.Project{
			Title:       title,
			Category:    category,
			Description: description,
			Image:       &image,
			Tech:        tech,
			SortOrder:   order,
			Images:      []entity.ProjectImage{},
		}
	}

	return []*entity.Project{
		project(1, "Product Infomercial", entity.ProjectCategoryVideo,
			"Infomercial production with color grading and motion graphics", "/images/infomercial.gif",
			"Premiere Pro", "After Effects", "CapCut"),
		project(2, "Personal Branding Shoot", entity.ProjectCategoryPhoto,
			"Personal branding photography with advanced retouching", "/images/branding.png",
			"Photoshop", "Lightroom", "Canva"),
		project(3, "Creature Library with Mini-game", entity.ProjectCategoryWeb,
			"Full-stack reference library with a browser mini-game", "/images/library.png",
			"Next.js", "React", "Stripe", "MongoDB"),
		project(4, "Short Film", entity.ProjectCategoryVideo,
			"Story-driven short film about memory and consequence", "/images/short-film.gif",
			"Premiere Pro", "Color Grading"),
		project(5, "Digital Arts", entity.ProjectCategoryPhoto,
			"Creative digital art with dramatic lighting", "/images/digital-art.png",
			"Photoshop", "Lightroom", "Canva"),
		project(6, "Appointment Platform", entity.ProjectCategoryWeb,
			"UI/UX design for a campus appointment platform", "/images/appointments.png",
			"Laravel", "MySQL", "Tailwind CSS", "Stripe"),
	}
}
