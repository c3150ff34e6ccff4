package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newClient(&config.GitHubConfig{
		Token:   token,
		BaseURL: server.URL + "/",
		Timeout: 5 * time.Second,
	}, http.DefaultTransport)
}

func TestClient_ListRepos(t *testing.T) {
	var gotAuth, gotQuery, gotAgent string
	c := newTestClient(t, "secret-token", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)

		var items []string
		for i := range 8 {
			name := fmt.Sprintf("repo-%d", i)
			if i == 1 {
				name = ".github"
			}
			items = append(items, fmt.Sprintf(`{"id":%d,"name":%q,"description":null,"html_url":"https://github.com/octocat/%s","homepage":null,"stargazers_count":%d,"forks_count":1,"language":"Go","topics":["cli"],"pushed_at":"2024-01-0%dT00:00:00Z"}`, i, name, name, i, i+1))
		}
		_, _ = w.Write([]byte("[" + strings.Join(items, ",") + "]"))
	})

	repos, err := c.ListRepos(context.Background(), "octocat", 6)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "Portfolio-App", gotAgent)
	assert.Equal(t, "sort=pushed&per_page=6", gotQuery)

	require.Len(t, repos, 6)
	for _, repo := range repos {
		assert.NotContains(t, repo.Name, ".github")
	}
	assert.Equal(t, "repo-0", repos[0].Name)
	assert.Equal(t, "https://github.com/octocat/repo-0", repos[0].URL)
	assert.Nil(t, repos[0].Description)
	assert.Equal(t, "repo-2", repos[1].Name)
	assert.Equal(t, "2024-01-03T00:00:00Z", repos[1].UpdatedAt)
}

func TestClient_NoTokenSendsNoAuthorization(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("[]"))
	})

	repos, err := c.ListRepos(context.Background(), "octocat", 6)
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestClient_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: service.ErrGitHubUserNotFound},
		{status: http.StatusForbidden, wantErr: service.ErrGitHubRateLimited},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := c.ListRepos(context.Background(), "octocat", 6)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
