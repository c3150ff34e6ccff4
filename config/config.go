package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultBcryptCost            = 10
	defaultCSRFMaxAge            = time.Hour
	defaultRateLimitMaxRequests  = 5
	defaultRateLimitWindow       = time.Hour
	defaultRateLimitCleanup      = time.Minute
	defaultLoginLimitMaxRequests = 10
	defaultLoginLimitWindow      = 15 * time.Minute
	defaultSessionMaxAge         = 30 * 24 * time.Hour
	defaultSessionCookieName     = "portfolio-session"
	defaultCredentialsKey        = "admin-credentials.json"
	defaultGitHubBaseURL         = "https://api.github.com"
	defaultGitHubCacheTTL        = 10 * time.Minute
	defaultGitHubTimeout         = 10 * time.Second
	defaultPushPort              = 8081
)

// Driver names accepted by the database, session, rate limit and pubsub sections.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"

	SessionDriverJWT    = "jwt"
	SessionDriverCookie = "cookie"

	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EnvDevelopment is the env.env value of a local checkout.
const EnvDevelopment = "development"

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Credentials locates the JSON credential object that overrides ADMIN_USER / ADMIN_PASSWORD_HASH.
	Credentials *CredentialsConfig `json:"credentials" yaml:"credentials"`

	Session *SessionConfig `json:"session" yaml:"session"`

	CSRF *CSRFConfig `json:"csrf" yaml:"csrf"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	GitHub *GitHubConfig `json:"github" yaml:"github"`

	// PubSub configuration for contact notifications
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	SecurityHeaders *SecurityHeadersConfig `json:"securityHeaders" yaml:"securityHeaders"`
}

// DatabaseConfig selects the gorm dialect.
type DatabaseConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
	SQLite      struct {
		DSN string `json:"dsn" yaml:"dsn"`
	} `json:"sqlite" yaml:"sqlite"`
}

// RedisConfig is optional. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// CredentialsConfig points at the blob holding {username, passwordHash}.
// BucketURL takes precedence over Dir, e.g. "file:///var/lib/portfolio" or "mem://".
type CredentialsConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Dir       string `json:"dir" yaml:"dir"`
	Key       string `json:"key" yaml:"key"`
}

type SessionConfig struct {
	Driver     string        `json:"driver" yaml:"driver"`
	Secret     string        `json:"secret" yaml:"secret"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	MaxAge     time.Duration `json:"maxAge" yaml:"maxAge"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

type CSRFConfig struct {
	Secret string        `json:"secret" yaml:"secret"`
	MaxAge time.Duration `json:"maxAge" yaml:"maxAge"`
}

type RateLimitConfig struct {
	Store           string        `json:"store" yaml:"store"`
	MaxRequests     int           `json:"maxRequests" yaml:"maxRequests"`
	Window          time.Duration `json:"window" yaml:"window"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
	Login           struct {
		MaxRequests int           `json:"maxRequests" yaml:"maxRequests"`
		Window      time.Duration `json:"window" yaml:"window"`
	} `json:"login" yaml:"login"`
}

type GitHubConfig struct {
	Username string        `json:"username" yaml:"username"`
	Token    string        `json:"token" yaml:"token"`
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Port the notifier worker receives push deliveries on
	PushPort int `json:"pushPort" yaml:"pushPort"`
}

type SecurityHeadersConfig struct {
	ContentSecurityPolicy string `json:"contentSecurityPolicy" yaml:"contentSecurityPolicy"`
	PermissionsPolicy     string `json:"permissionsPolicy" yaml:"permissionsPolicy"`
	HSTSMaxAge            int    `json:"hstsMaxAge" yaml:"hstsMaxAge"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// File enables a rotating log file next to stdout when set.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"maxSizeMb" yaml:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// RATE_LIMIT_MAX_REQUESTS -> rateLimit.maxRequests
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// .env.local wins over .env; variables already set in the process win over both.
	loadDotEnv(".env.local", ".env")

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func loadDotEnv(files ...string) {
	for _, name := range files {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		_ = godotenv.Load(name)
	}
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{Driver: DatabaseDriverSQLite}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DatabaseDriverSQLite
	}
	if cfg.Database.Driver == DatabaseDriverSQLite && cfg.Database.SQLite.DSN == "" {
		cfg.Database.SQLite.DSN = "file:portfolio.db"
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	if cfg.Credentials == nil {
		cfg.Credentials = &CredentialsConfig{}
	}
	if cfg.Credentials.BucketURL == "" && cfg.Credentials.Dir == "" {
		cfg.Credentials.Dir = "data"
	}
	if cfg.Credentials.Key == "" {
		cfg.Credentials.Key = defaultCredentialsKey
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Driver == "" {
		cfg.Session.Driver = SessionDriverJWT
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.MaxAge == 0 {
		cfg.Session.MaxAge = defaultSessionMaxAge
	}

	if cfg.CSRF == nil {
		cfg.CSRF = &CSRFConfig{}
	}
	if cfg.CSRF.MaxAge == 0 {
		cfg.CSRF.MaxAge = defaultCSRFMaxAge
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.Store == "" {
		cfg.RateLimit.Store = RateLimitStoreMemory
	}
	if cfg.RateLimit.MaxRequests <= 0 {
		cfg.RateLimit.MaxRequests = defaultRateLimitMaxRequests
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}
	if cfg.RateLimit.CleanupInterval == 0 {
		cfg.RateLimit.CleanupInterval = defaultRateLimitCleanup
	}
	if cfg.RateLimit.Login.MaxRequests <= 0 {
		cfg.RateLimit.Login.MaxRequests = defaultLoginLimitMaxRequests
	}
	if cfg.RateLimit.Login.Window == 0 {
		cfg.RateLimit.Login.Window = defaultLoginLimitWindow
	}

	if cfg.GitHub == nil {
		cfg.GitHub = &GitHubConfig{}
	}
	if cfg.GitHub.BaseURL == "" {
		cfg.GitHub.BaseURL = defaultGitHubBaseURL
	}
	if cfg.GitHub.CacheTTL == 0 {
		cfg.GitHub.CacheTTL = defaultGitHubCacheTTL
	}
	if cfg.GitHub.Timeout == 0 {
		cfg.GitHub.Timeout = defaultGitHubTimeout
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.PushPort == 0 {
		cfg.PubSub.PushPort = defaultPushPort
	}
}

// canonicalizeEnvKey maps an environment variable name onto the YAML tree.
// Consecutive segments are joined greedily so that RATE_LIMIT_MAX_REQUESTS
// resolves to rateLimit.maxRequests; unknown segments are kept as-is.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := make([]string, 0, 4)
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		matched, next, consumed, ok := findExistingSegment(current, segments[i:])
		if !ok {
			canonical = append(canonical, segments[i])
			current = nil
			i++

			continue
		}

		canonical = append(canonical, matched)
		current = next
		i += consumed
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment looks for the longest run of leading segments that
// names a key in current.
func findExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, consumed int, ok bool) {
	if len(current) == 0 {
		return "", nil, 0, false
	}

	for n := len(segments); n > 0; n-- {
		needle := normalizeToken(strings.Join(segments[:n], ""))
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}

			child, _ := value.(map[string]any)

			return key, child, n, true
		}
	}

	return "", nil, 0, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
