package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPortfolioService_GetPortfolio_StoredContent(t *testing.T) {
	ctx := context.Background()
	video := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	hero := &entity.HeroSection{ID: uuid.New(), Heading: "Stored"}
	projects := []*entity.Project{{ID: uuid.New(), Title: "Reel", Category: entity.ProjectCategoryVideo, VideoURL: &video}}
	skills := []*entity.Skill{
		{Name: "Premiere", Category: "video"},
		{Name: "Go", Category: "web"},
		{Name: "Knitting", Category: "other"},
	}

	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		heroRepo := mockRepo.NewMockHeroRepository(t)
		projectRepo := mockRepo.NewMockProjectRepository(t)
		skillRepo := mockRepo.NewMockSkillRepository(t)
		factory.EXPECT().NewHeroRepository().Return(heroRepo)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)
		factory.EXPECT().NewSkillRepository().Return(skillRepo)
		heroRepo.EXPECT().FindFirst(ctx).Return(hero, nil)
		projectRepo.EXPECT().List(ctx).Return(projects, nil)
		skillRepo.EXPECT().List(ctx).Return(skills, nil)
	})

	portfolio := NewPortfolioService(txManager, newDiscardLogger()).GetPortfolio(ctx)

	assert.False(t, portfolio.Fallback)
	assert.Equal(t, hero, portfolio.Hero)
	require.Len(t, portfolio.Projects, 1)
	require.NotNil(t, portfolio.Projects[0].EmbedURL)
	assert.Len(t, portfolio.SkillGroups["video"], 1)
	assert.Len(t, portfolio.SkillGroups["web"], 1)
	assert.Empty(t, portfolio.SkillGroups["photo"])
	assert.NotContains(t, portfolio.SkillGroups, "other")
}

func TestPortfolioService_GetPortfolio_EmptySectionsFallBack(t *testing.T) {
	ctx := context.Background()
	hero := &entity.HeroSection{Heading: "Stored"}

	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		heroRepo := mockRepo.NewMockHeroRepository(t)
		projectRepo := mockRepo.NewMockProjectRepository(t)
		skillRepo := mockRepo.NewMockSkillRepository(t)
		factory.EXPECT().NewHeroRepository().Return(heroRepo)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)
		factory.EXPECT().NewSkillRepository().Return(skillRepo)
		heroRepo.EXPECT().FindFirst(ctx).Return(hero, nil)
		projectRepo.EXPECT().List(ctx).Return([]*entity.Project{}, nil)
		skillRepo.EXPECT().List(ctx).Return(nil, nil)
	})

	portfolio := NewPortfolioService(txManager, newDiscardLogger()).GetPortfolio(ctx)

	assert.True(t, portfolio.Fallback)
	assert.Equal(t, hero, portfolio.Hero)
	assert.Equal(t, defaultProjects(), portfolio.Projects)
	assert.Equal(t, defaultSkills(), portfolio.Skills)
}

func TestPortfolioService_GetPortfolio_StoreFailure(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("database is locked"))

	portfolio := NewPortfolioService(txManager, newDiscardLogger()).GetPortfolio(ctx)

	assert.True(t, portfolio.Fallback)
	assert.Equal(t, defaultHero(), portfolio.Hero)
	assert.Len(t, portfolio.Projects, 1)
	assert.Len(t, portfolio.Skills, 1)
}

func TestPortfolioService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	recent := []*entity.ContactSubmission{{ID: uuid.New()}}

	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		projectRepo := mockRepo.NewMockProjectRepository(t)
		skillRepo := mockRepo.NewMockSkillRepository(t)
		contactRepo := mockRepo.NewMockContactRepository(t)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)
		factory.EXPECT().NewSkillRepository().Return(skillRepo)
		factory.EXPECT().NewContactRepository().Return(contactRepo)
		projectRepo.EXPECT().Count(ctx).Return(6, nil)
		skillRepo.EXPECT().Count(ctx).Return(11, nil)
		contactRepo.EXPECT().Count(ctx).Return(3, nil)
		contactRepo.EXPECT().Recent(ctx, 5).Return(recent, nil)
	})

	dashboard, err := NewPortfolioService(txManager, newDiscardLogger()).GetDashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(6), dashboard.Projects)
	assert.Equal(t, int64(11), dashboard.Skills)
	assert.Equal(t, int64(3), dashboard.Messages)
	assert.Equal(t, recent, dashboard.RecentMessages)
}

func TestPortfolioService_GetDashboard_Error(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)
		projectRepo.EXPECT().Count(ctx).Return(0, repository.ErrProjectNotFound)
	})

	_, err := NewPortfolioService(txManager, newDiscardLogger()).GetDashboard(ctx)

	assert.Error(t, err)
}
