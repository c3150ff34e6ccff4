package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"portfolio/config"
	"portfolio/internal/delivery/api/validator"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const githubRepoLimit = 6

const (
	msgGitHubNotConfigured = "GitHub username not configured"
	msgGitHubInvalidUser   = "GitHub username is invalid"
	msgGitHubUserNotFound  = "GitHub user not found"
	msgGitHubRateLimited   = "GitHub API rate limit exceeded"
	msgGitHubFetchFailed   = "Failed to fetch GitHub repositories"
)

type repoCache struct {
	repos     []entity.GitHubRepo
	fetchedAt time.Time
}

// githubService implements the GitHubUsecase interface.
type githubService struct {
	source service.RepoSource
	cfg    *config.GitHubConfig
	logger *slog.Logger
	now    func() time.Time

	group singleflight.Group
	mu    sync.RWMutex
	cache *repoCache
}

// NewGitHubService is the constructor for githubService.
func NewGitHubService(source service.RepoSource, cfg *config.Config, logger *slog.Logger) usecase.GitHubUsecase {
	return &githubService{
		source: source,
		cfg:    cfg.GitHub,
		logger: logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *githubService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRepos answers from the cache while it is fresh. Concurrent misses share
// one upstream call. Upstream failures degrade to the last good list.
func (srv *githubService) ListRepos(ctx context.Context) *usecase.GitHubRepos {
	username := strings.TrimSpace(srv.cfg.Username)
	if username == "" {
		return &usecase.GitHubRepos{Repos: []entity.GitHubRepo{}, Error: msgGitHubNotConfigured}
	}
	if !validator.IsGitHubUsername(username) {
		srv.log(ctx).Warn("Configured GitHub username is invalid", slog.String("username", username))

		return &usecase.GitHubRepos{Repos: []entity.GitHubRepo{}, Error: msgGitHubInvalidUser}
	}

	cached := srv.cached()
	if cached != nil && srv.now().Sub(cached.fetchedAt) < srv.cfg.CacheTTL {
		return &usecase.GitHubRepos{Repos: cached.repos, Cached: true}
	}

	value, err, _ := srv.group.Do(username, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.cfg.Timeout)
		defer cancel()

		repos, err := srv.source.ListRepos(fetchCtx, username, githubRepoLimit)
		if err != nil {
			return nil, err
		}
		srv.store(repos)

		return repos, nil
	})
	if err == nil {
		repos, _ := value.([]entity.GitHubRepo)

		return &usecase.GitHubRepos{Repos: repos}
	}

	switch {
	case errors.Is(err, service.ErrGitHubUserNotFound):
		srv.log(ctx).Warn("GitHub user not found", slog.String("username", username))

		return &usecase.GitHubRepos{Repos: []entity.GitHubRepo{}, Error: msgGitHubUserNotFound}
	case errors.Is(err, service.ErrGitHubRateLimited):
		srv.log(ctx).Warn("GitHub API rate limit exceeded")

		repos := []entity.GitHubRepo{}
		if cached != nil {
			repos = cached.repos
		}

		return &usecase.GitHubRepos{Repos: repos, Error: msgGitHubRateLimited}
	}

	srv.log(ctx).Error("Failed to fetch GitHub repositories", slog.Any("error", err))

	if cached != nil {
		return &usecase.GitHubRepos{Repos: cached.repos, Cached: true, Stale: true}
	}

	return &usecase.GitHubRepos{Repos: []entity.GitHubRepo{}, Error: msgGitHubFetchFailed}
}

func (srv *githubService) cached() *repoCache {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.cache
}

func (srv *githubService) store(repos []entity.GitHubRepo) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cache = &repoCache{repos: repos, fetchedAt: srv.now()}
}
