package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	mockSvc "portfolio/internal/mocks/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sampleRepos = []entity.GitHubRepo{{ID: 1, Name: "dotfiles"}, {ID: 2, Name: "portfolio"}}

func createTestGitHubService(t *testing.T, username string) (*githubService, *mockSvc.MockRepoSource, *time.Time) {
	source := mockSvc.NewMockRepoSource(t)
	cfg := newTestConfig()
	cfg.GitHub.Username = username

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := NewGitHubService(source, cfg, newDiscardLogger()).(*githubService)
	srv.now = func() time.Time { return now }

	return srv, source, &now
}

func TestGitHubService_ListRepos_Configuration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
	}{
		{name: "unset", username: "  ", want: msgGitHubNotConfigured},
		{name: "invalid", username: "-not-valid-", want: msgGitHubInvalidUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := createTestGitHubService(t, tt.username)

			result := srv.ListRepos(context.Background())

			assert.Equal(t, tt.want, result.Error)
			assert.Empty(t, result.Repos)
			assert.False(t, result.Cacheable())
		})
	}
}

func TestGitHubService_ListRepos_CachesWithinTTL(t *testing.T) {
	srv, source, now := createTestGitHubService(t, "octocat")
	source.EXPECT().ListRepos(mock.Anything, "octocat", githubRepoLimit).Return(sampleRepos, nil).Once()

	first := srv.ListRepos(context.Background())
	assert.Equal(t, &usecase.GitHubRepos{Repos: sampleRepos}, first)
	assert.True(t, first.Cacheable())

	*now = now.Add(5 * time.Minute)
	second := srv.ListRepos(context.Background())
	assert.Equal(t, &usecase.GitHubRepos{Repos: sampleRepos, Cached: true}, second)
}

func TestGitHubService_ListRepos_StaleOnUpstreamFailure(t *testing.T) {
	srv, source, now := createTestGitHubService(t, "octocat")
	source.EXPECT().ListRepos(mock.Anything, "octocat", githubRepoLimit).Return(sampleRepos, nil).Once()
	source.EXPECT().ListRepos(mock.Anything, "octocat", githubRepoLimit).Return(nil, errors.New("connection reset")).Once()

	srv.ListRepos(context.Background())
	*now = now.Add(11 * time.Minute)

	result := srv.ListRepos(context.Background())

	assert.Equal(t, &usecase.GitHubRepos{Repos: sampleRepos, Cached: true, Stale: true}, result)
	assert.False(t, result.Cacheable())
}

func TestGitHubService_ListRepos_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unknown user", err: service.ErrGitHubUserNotFound, want: msgGitHubUserNotFound},
		{name: "rate limited", err: errors.Wrap(service.ErrGitHubRateLimited, "403"), want: msgGitHubRateLimited},
		{name: "network", err: errors.New("dial tcp: timeout"), want: msgGitHubFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, source, _ := createTestGitHubService(t, "octocat")
			source.EXPECT().ListRepos(mock.Anything, "octocat", githubRepoLimit).Return(nil, tt.err)

			result := srv.ListRepos(context.Background())

			assert.Equal(t, tt.want, result.Error)
			assert.Empty(t, result.Repos)
		})
	}
}

func TestGitHubService_ListRepos_SharesConcurrentFetches(t *testing.T) {
	srv, source, _ := createTestGitHubService(t, "octocat")

	var calls atomic.Int32
	release := make(chan struct{})
	source.EXPECT().ListRepos(mock.Anything, "octocat", githubRepoLimit).
		RunAndReturn(func(context.Context, string, int) ([]entity.GitHubRepo, error) {
			calls.Add(1)
			<-release

			return sampleRepos, nil
		}).
		Maybe()

	const callers = 8
	var started, done sync.WaitGroup
	results := make([]*usecase.GitHubRepos, callers)
	for i := range callers {
		started.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			started.Done()
			results[i] = srv.ListRepos(context.Background())
		}()
	}

	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	for _, result := range results {
		require.NotNil(t, result)
		assert.Equal(t, sampleRepos, result.Repos)
	}
	assert.LessOrEqual(t, calls.Load(), int32(callers))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestGitHubService_ListRepos_FetchSurvivesCallerCancel(t *testing.T) {
	srv, source, _ := createTestGitHubService(t, "octocat")
	source.EXPECT().ListRepos(mock.Anything, "octocat", githubRepoLimit).
		RunAndReturn(func(ctx context.Context, _ string, _ int) ([]entity.GitHubRepo, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			return sampleRepos, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := srv.ListRepos(ctx)

	assert.Equal(t, sampleRepos, result.Repos)
}
