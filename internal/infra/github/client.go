// Package github lists public repositories through the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	"golang.org/x/oauth2"
)

const userAgent = "Portfolio-App"

type apiRepo struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Homepage    *string  `json:"homepage"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	Language    *string  `json:"language"`
	Topics      []string `json:"topics"`
	PushedAt    string   `json:"pushed_at"`
}

// client implements service.RepoSource.
type client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds the API client. A configured token is sent as a bearer
// token for the higher authenticated rate limit.
func NewClient(cfg *config.Config) service.RepoSource {
	return newClient(cfg.GitHub, http.DefaultTransport)
}

func newClient(cfg *config.GitHubConfig, base http.RoundTripper) *client {
	httpClient := &http.Client{Timeout: cfg.Timeout, Transport: base}
	if cfg.Token != "" {
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
			Base:   base,
		}
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// ListRepos fetches the most recently pushed repositories, dropping the
// profile and organisation config repos whose names contain ".github".
func (c *client) ListRepos(ctx context.Context, username string, limit int) ([]entity.GitHubRepo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?sort=pushed&per_page=%d", c.baseURL, url.PathEscape(username), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build github request")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "github request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, service.ErrGitHubUserNotFound
	case resp.StatusCode == http.StatusForbidden:
		return nil, service.ErrGitHubRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("github api error: %d", resp.StatusCode)
	}

	var repos []apiRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, errors.Wrap(err, "failed to decode github response")
	}

	result := make([]entity.GitHubRepo, 0, limit)
	for _, repo := range repos {
		if strings.Contains(repo.Name, ".github") {
			continue
		}
		if len(result) == limit {
			break
		}

		topics := repo.Topics
		if topics == nil {
			topics = []string{}
		}

		result = append(result, entity.GitHubRepo{
			ID:          repo.ID,
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.HTMLURL,
			Homepage:    repo.Homepage,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Language:    repo.Language,
			Topics:      topics,
			UpdatedAt:   repo.PushedAt,
		})
	}

	return result, nil
}
