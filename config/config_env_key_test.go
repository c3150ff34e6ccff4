package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"rateLimit": map[string]any{
			"maxRequests": 5,
			"login": map[string]any{
				"maxRequests": 10,
			},
		},
		"csrf": map[string]any{
			"secret": "",
			"maxAge": "1h",
		},
		"github": map[string]any{
			"username": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_SSL_MODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPIC_ID", want: "pubsub.topicId"},
		{envKey: "RATE_LIMIT_MAX_REQUESTS", want: "rateLimit.maxRequests"},
		{envKey: "RATE_LIMIT_LOGIN_MAX_REQUESTS", want: "rateLimit.login.maxRequests"},
		{envKey: "CSRF_SECRET", want: "csrf.secret"},
		{envKey: "CSRF_MAX_AGE", want: "csrf.maxAge"},
		{envKey: "GITHUB_USERNAME", want: "github.username"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "GITHUB__TOKEN", want: "github.token"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const testConfigYAML = `
env:
  env: test
  serviceName: portfolio
  log:
    level: info
http:
  port: 8080
csrf:
  secret: ""
  maxAge: 30m
rateLimit:
  store: memory
  maxRequests: 5
  window: 1h
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "7")
	t.Setenv("CSRF_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "portfolio", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, 7, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	require.NotNil(t, cfg.CSRF)
	assert.Equal(t, "from-env", cfg.CSRF.Secret)
	assert.Equal(t, 30*time.Minute, cfg.CSRF.MaxAge)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DatabaseDriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.CSRF.MaxAge)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, time.Minute, cfg.RateLimit.CleanupInterval)
	assert.Equal(t, RateLimitStoreMemory, cfg.RateLimit.Store)
	assert.Equal(t, SessionDriverJWT, cfg.Session.Driver)
	assert.Equal(t, "admin-credentials.json", cfg.Credentials.Key)
	assert.Equal(t, 10*time.Minute, cfg.GitHub.CacheTTL)
	assert.Equal(t, 8081, cfg.PubSub.PushPort)
}
