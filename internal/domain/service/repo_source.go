package service

import (
	"context"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrGitHubUserNotFound is returned when the configured account does not exist.
	ErrGitHubUserNotFound = errors.New("github user not found")
	// ErrGitHubRateLimited is returned when the GitHub API refuses further calls.
	ErrGitHubRateLimited = errors.New("github api rate limit exceeded")
)

// RepoSource lists the public repositories of an account, most recently pushed first.
type RepoSource interface {
	ListRepos(ctx context.Context, username string, limit int) ([]entity.GitHubRepo, error)
}
