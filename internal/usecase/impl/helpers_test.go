package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session:   &config.SessionConfig{MaxAge: time.Hour},
		CSRF:      &config.CSRFConfig{MaxAge: time.Hour},
		RateLimit: &config.RateLimitConfig{MaxRequests: 5, Window: time.Hour},
		GitHub: &config.GitHubConfig{
			Username: "octocat",
			CacheTTL: 10 * time.Minute,
			Timeout:  time.Second,
		},
	}
	cfg.RateLimit.Login.MaxRequests = 10
	cfg.RateLimit.Login.Window = 15 * time.Minute

	return cfg
}

// expectTx expects one Execute call and runs the callback against a fresh
// factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
