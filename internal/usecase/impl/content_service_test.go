package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentService_GetHero(t *testing.T) {
	ctx := context.Background()

	t.Run("none saved yet", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			heroRepo := mockRepo.NewMockHeroRepository(t)
			factory.EXPECT().NewHeroRepository().Return(heroRepo)
			heroRepo.EXPECT().FindFirst(ctx).Return(nil, repository.ErrHeroNotFound)
		})

		hero, err := NewContentService(txManager, newDiscardLogger()).GetHero(ctx)

		require.NoError(t, err)
		assert.Nil(t, hero)
	})

	t.Run("stored", func(t *testing.T) {
		stored := &entity.HeroSection{ID: uuid.New(), Heading: "Hello"}
		txManager := mockRepo.NewMockTransactionManager(t)
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			heroRepo := mockRepo.NewMockHeroRepository(t)
			factory.EXPECT().NewHeroRepository().Return(heroRepo)
			heroRepo.EXPECT().FindFirst(ctx).Return(stored, nil)
		})

		hero, err := NewContentService(txManager, newDiscardLogger()).GetHero(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, hero)
	})
}

func TestContentService_SaveHero_BlankImageIsNil(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		heroRepo := mockRepo.NewMockHeroRepository(t)
		factory.EXPECT().NewHeroRepository().Return(heroRepo)
		heroRepo.EXPECT().Save(ctx, mock.MatchedBy(func(hero *entity.HeroSection) bool {
			return hero.Heading == "Heading" && hero.HeroImage == nil
		})).Return(nil)
	})

	hero, err := NewContentService(txManager, newDiscardLogger()).
		SaveHero(ctx, &usecase.HeroInput{Heading: "Heading", HeroImage: "  "})

	require.NoError(t, err)
	assert.Equal(t, "Heading", hero.Heading)
}

func TestContentService_CreateProject(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)

	var created *entity.Project
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)
		projectRepo.EXPECT().Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, project *entity.Project) error {
				created = project

				return nil
			})
	})

	project, err := NewContentService(txManager, newDiscardLogger()).CreateProject(ctx, &usecase.ProjectInput{
		Title:    " Reel ",
		Category: "video",
		VideoURL: "https://youtu.be/dQw4w9WgXcQ",
		Images:   []string{" /a.png ", "", "/b.png"},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Reel", project.Title)
	assert.Equal(t, []string{}, project.Tech)
	assert.Equal(t, []entity.ProjectImage{
		{URL: "/a.png", SortOrder: 0},
		{URL: "/b.png", SortOrder: 1},
	}, project.Images)
	require.NotNil(t, project.EmbedURL)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", *project.EmbedURL)
}

func TestContentService_CreateProject_InvalidCategory(t *testing.T) {
	srv := NewContentService(mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	_, err := srv.CreateProject(context.Background(), &usecase.ProjectInput{Title: "x", Category: "music"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}

func TestContentService_UpdateProject_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)
		projectRepo.EXPECT().Update(ctx, mock.MatchedBy(func(project *entity.Project) bool {
			return project.ID == id
		})).Return(repository.ErrProjectNotFound)
	})

	_, err := NewContentService(txManager, newDiscardLogger()).
		UpdateProject(ctx, id, &usecase.ProjectInput{Title: "x", Category: "web"})

	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestContentService_UpdateProject_ReturnsStoredState(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Project{ID: id, Title: "Stored", Category: entity.ProjectCategoryWeb}
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)
		projectRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
		projectRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)
	})

	project, err := NewContentService(txManager, newDiscardLogger()).
		UpdateProject(ctx, id, &usecase.ProjectInput{Title: "Stored", Category: "web"})

	require.NoError(t, err)
	assert.Equal(t, stored, project)
}

func TestContentService_CreateSkill_AppendsSortOrder(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		skillRepo := mockRepo.NewMockSkillRepository(t)
		factory.EXPECT().NewSkillRepository().Return(skillRepo)
		skillRepo.EXPECT().MaxSortOrder(ctx).Return(7, nil)
		skillRepo.EXPECT().Create(ctx, mock.MatchedBy(func(skill *entity.Skill) bool {
			return skill.SortOrder == 8 && skill.Name == "Go"
		})).Return(nil)
	})

	skill, err := NewContentService(txManager, newDiscardLogger()).
		CreateSkill(ctx, &usecase.SkillInput{Name: " Go ", Level: 80, Category: "web"})

	require.NoError(t, err)
	assert.Equal(t, 8, skill.SortOrder)
}

func TestContentService_DeleteSkill_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		skillRepo := mockRepo.NewMockSkillRepository(t)
		factory.EXPECT().NewSkillRepository().Return(skillRepo)
		skillRepo.EXPECT().Delete(ctx, id).Return(repository.ErrSkillNotFound)
	})

	err := NewContentService(txManager, newDiscardLogger()).DeleteSkill(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrSkillNotFound))
}
