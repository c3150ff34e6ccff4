package gormdb

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewHeroRepository(newTestDB(t))

	_, err := repo.FindFirst(ctx)
	require.ErrorIs(t, err, repository.ErrHeroNotFound)

	image := "/images/hero.jpg"
	hero := &entity.HeroSection{Greeting: "Hi", Heading: "Filmmaker", Description: "I tell stories.", HeroImage: &image}
	require.NoError(t, repo.Save(ctx, hero))
	firstID := hero.ID

	update := &entity.HeroSection{Greeting: "Hello", Heading: "Director", Description: "Still telling stories."}
	require.NoError(t, repo.Save(ctx, update))
	assert.Equal(t, firstID, update.ID, "existing row is updated in place")

	got, err := repo.FindFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Greeting)
	assert.Equal(t, "Director", got.Heading)
	assert.Nil(t, got.HeroImage)
}

func TestProjectRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(newTestDB(t))

	video := "https://youtu.be/dQw4w9WgXcQ"
	project := &entity.Project{
		Title:       "Short Film",
		Category:    entity.ProjectCategoryVideo,
		Description: "A short film.",
		VideoURL:    &video,
		Tech:        []string{"Premiere", "After Effects"},
		SortOrder:   2,
		Images: []entity.ProjectImage{
			{URL: "/b.jpg", SortOrder: 1},
			{URL: "/a.jpg", SortOrder: 0},
		},
	}
	require.NoError(t, repo.Create(ctx, project))
	require.NotEqual(t, uuid.Nil, project.ID)

	other := &entity.Project{Title: "Site", Category: entity.ProjectCategoryWeb, Description: "A site.", SortOrder: 1}
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, other.ID, list[0].ID, "ordered by sort order")
	assert.Empty(t, list[0].Tech)

	got, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Premiere", "After Effects"}, got.Tech)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "/a.jpg", got.Images[0].URL)

	got.Title = "Short Film (Director's Cut)"
	got.Images = []entity.ProjectImage{{URL: "/c.jpg"}}
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Short Film (Director's Cut)", updated.Title)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, "/c.jpg", updated.Images[0].URL)

	require.NoError(t, repo.Delete(ctx, project.ID))
	_, err = repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestProjectRepository_UpdateMissing(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	err := repo.Update(context.Background(), &entity.Project{ID: uuid.New(), Title: "x", Category: entity.ProjectCategoryAll})
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestSkillRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSkillRepository(newTestDB(t))

	maxOrder, err := repo.MaxSortOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, maxOrder)

	editing := &entity.Skill{Name: "Editing", Level: 90, Category: "Video", SortOrder: 3}
	color := &entity.Skill{Name: "Color Grading", Level: 80, Category: "Video", SortOrder: 1}
	require.NoError(t, repo.Create(ctx, editing))
	require.NoError(t, repo.Create(ctx, color))

	maxOrder, err = repo.MaxSortOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, maxOrder)

	skills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "Color Grading", skills[0].Name)

	require.NoError(t, repo.Delete(ctx, color.ID))
	assert.ErrorIs(t, repo.Delete(ctx, color.ID), repository.ErrSkillNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	sentinel := assert.AnError
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewSkillRepository().Create(ctx, &entity.Skill{Name: "Lighting", Level: 50, Category: "Photo"}); err != nil {
			return err
		}

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	count, err := NewSkillRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewHeroRepository().Save(ctx, &entity.HeroSection{Greeting: "Hi", Heading: "H", Description: "D"})
	}))

	_, err = NewHeroRepository(db).FindFirst(ctx)
	assert.NoError(t, err)
}
