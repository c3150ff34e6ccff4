package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// GitHubRepos is the payload of the repository showcase. Error is set for
// every degraded answer; the endpoint still answers 200.
type GitHubRepos struct {
	Repos  []entity.GitHubRepo `json:"repos"`
	Cached bool                `json:"cached"`
	Stale  bool                `json:"stale,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// Cacheable reports whether clients may cache the answer.
func (r *GitHubRepos) Cacheable() bool {
	return r.Error == "" && !r.Stale
}

// GitHubUsecase lists the site owner's repositories through a short-lived cache.
type GitHubUsecase interface {
	ListRepos(ctx context.Context) *GitHubRepos
}
