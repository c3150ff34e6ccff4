package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	mockUC "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSiteHandler_GitHubRepos_CacheControl(t *testing.T) {
	cfg := &config.Config{GitHub: &config.GitHubConfig{CacheTTL: 10 * time.Minute}}

	tests := []struct {
		name   string
		result *usecase.GitHubRepos
		want   string
	}{
		{
			name:   "fresh",
			result: &usecase.GitHubRepos{Repos: []entity.GitHubRepo{{Name: "dotfiles"}}},
			want:   "public, max-age=600",
		},
		{
			name:   "stale",
			result: &usecase.GitHubRepos{Repos: []entity.GitHubRepo{}, Cached: true, Stale: true},
			want:   "no-store",
		},
		{
			name:   "degraded",
			result: &usecase.GitHubRepos{Repos: []entity.GitHubRepo{}, Error: "GitHub user not found"},
			want:   "no-store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			github := mockUC.NewMockGitHubUsecase(t)
			github.EXPECT().ListRepos(mock.Anything).Return(tt.result)
			h := NewSiteHandler(mockUC.NewMockPortfolioUsecase(t), github, cfg)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/github", nil), rec)

			require.NoError(t, h.GitHubRepos(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get(echo.HeaderCacheControl))
		})
	}
}
