package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Seed_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		heroRepo := mockRepo.NewMockHeroRepository(t)
		skillRepo := mockRepo.NewMockSkillRepository(t)
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewHeroRepository().Return(heroRepo)
		factory.EXPECT().NewSkillRepository().Return(skillRepo)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)

		heroRepo.EXPECT().FindFirst(ctx).Return(nil, repository.ErrHeroNotFound)
		heroRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
		skillRepo.EXPECT().Count(ctx).Return(0, nil)
		skillRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(11)
		projectRepo.EXPECT().Count(ctx).Return(0, nil)
		projectRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(6)
	})

	result, err := NewSeedService(txManager, newDiscardLogger()).Seed(ctx)

	require.NoError(t, err)
	assert.True(t, result.Hero)
	assert.Equal(t, 11, result.Skills)
	assert.Equal(t, 6, result.Projects)
}

func TestSeedService_Seed_KeepsExistingContent(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		heroRepo := mockRepo.NewMockHeroRepository(t)
		skillRepo := mockRepo.NewMockSkillRepository(t)
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewHeroRepository().Return(heroRepo)
		factory.EXPECT().NewSkillRepository().Return(skillRepo)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)

		heroRepo.EXPECT().FindFirst(ctx).Return(&entity.HeroSection{}, nil)
		skillRepo.EXPECT().Count(ctx).Return(3, nil)
		projectRepo.EXPECT().Count(ctx).Return(2, nil)
	})

	result, err := NewSeedService(txManager, newDiscardLogger()).Seed(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedResult{}, result)
}
