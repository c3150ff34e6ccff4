package csrf

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"portfolio/config"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// SharedSecretKey is the Redis key holding the cluster-wide secret.
const SharedSecretKey = "portfolio:csrf:secret"

type staticSecret string

func (s staticSecret) Secret(context.Context) (string, error) {
	if s == "" {
		return "", errors.New("csrf secret not configured")
	}

	return string(s), nil
}

// redisSecret lets every instance agree on one generated secret: the first
// instance to start wins the SET NX race, the rest read its value.
type redisSecret struct {
	client *goredis.Client
	key    string
}

func (s *redisSecret) Secret(ctx context.Context) (string, error) {
	candidate, err := randomSecret()
	if err != nil {
		return "", err
	}

	if err := s.client.SetNX(ctx, s.key, candidate, 0).Err(); err != nil {
		return "", errors.Wrap(err, "failed to publish csrf secret")
	}

	secret, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		return "", errors.Wrap(err, "failed to read csrf secret")
	}

	return secret, nil
}

type randomSecretProvider struct{}

func (randomSecretProvider) Secret(context.Context) (string, error) {
	return randomSecret()
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

type namedSecret struct {
	name     string
	provider service.SecretProvider
}

// chainSecret returns the secret of the first provider that has one.
type chainSecret struct {
	sources []namedSecret
	logger  *slog.Logger
}

func (c *chainSecret) Secret(ctx context.Context) (string, error) {
	var errs []error
	for _, source := range c.sources {
		secret, err := source.provider.Secret(ctx)
		if err == nil && secret != "" {
			c.logger.Debug("csrf secret resolved", slog.String("source", source.name))

			return secret, nil
		}
		if err == nil {
			err = errors.New("empty secret")
		}
		errs = append(errs, errors.Wrap(err, source.name))
	}

	return "", errors.Join(errs...)
}

// SecretParams defines the dependencies of the secret chain.
type SecretParams struct {
	fx.In

	Config *config.Config
	Redis  *goredis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewSecretProvider prefers the configured CSRF_SECRET, then a secret shared
// through Redis, and finally a per-process random secret. The random fallback
// invalidates outstanding tokens on restart and is not shared between
// instances, so it is logged as a warning.
func NewSecretProvider(params SecretParams) service.SecretProvider {
	sources := []namedSecret{{name: "config", provider: staticSecret(params.Config.CSRF.Secret)}}

	if params.Redis != nil {
		sources = append(sources, namedSecret{
			name:     "redis",
			provider: &redisSecret{client: params.Redis, key: SharedSecretKey},
		})
	}

	sources = append(sources, namedSecret{name: "random", provider: warnOnUse{
		provider: randomSecretProvider{},
		logger:   params.Logger,
	}})

	return &chainSecret{sources: sources, logger: params.Logger}
}

type warnOnUse struct {
	provider service.SecretProvider
	logger   *slog.Logger
}

func (w warnOnUse) Secret(ctx context.Context) (string, error) {
	w.logger.WarnContext(ctx, "CSRF_SECRET not set, using a random per-process secret")

	return w.provider.Secret(ctx)
}
