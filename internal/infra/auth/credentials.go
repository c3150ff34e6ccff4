package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Environment variables of the fallback credential source.
const (
	EnvAdminUser         = "ADMIN_USER"
	EnvAdminPasswordHash = "ADMIN_PASSWORD_HASH"
)

// CredentialBucketParams defines the dependencies of the credential bucket.
type CredentialBucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewCredentialBucket opens the bucket that holds the credential object and
// closes it on shutdown.
func NewCredentialBucket(params CredentialBucketParams) (*blob.Bucket, error) {
	bucket, err := OpenCredentialBucket(context.Background(), params.Config.Credentials)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return bucket, nil
}

// OpenCredentialBucket resolves BucketURL (any registered gocloud scheme) or
// falls back to a local directory.
func OpenCredentialBucket(ctx context.Context, cfg *config.CredentialsConfig) (*blob.Bucket, error) {
	if cfg == nil {
		return nil, errors.New("credentials section is missing")
	}

	if cfg.BucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open credential bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	}

	bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open credential directory %s", cfg.Dir)
	}

	return bucket, nil
}

// blobCredentialProvider reads {username, passwordHash} from one blob key.
type blobCredentialProvider struct {
	bucket *blob.Bucket
	key    string
}

// NewBlobCredentialProvider is the constructor for the highest-precedence source.
func NewBlobCredentialProvider(bucket *blob.Bucket, key string) service.CredentialProvider {
	return &blobCredentialProvider{bucket: bucket, key: key}
}

func (p *blobCredentialProvider) Name() string {
	return "blob:" + p.key
}

func (p *blobCredentialProvider) Load(ctx context.Context) (entity.Credentials, error) {
	data, err := p.bucket.ReadAll(ctx, p.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return entity.Credentials{}, service.ErrCredentialsUnavailable
		}

		return entity.Credentials{}, errors.Wrap(err, "failed to read credential object")
	}

	var creds entity.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return entity.Credentials{}, errors.Wrap(err, "failed to parse credential object")
	}

	// A readable object is authoritative even when incomplete.
	return creds, nil
}

// envCredentialProvider reads the process environment on every call so that
// a restart is not needed after an operator changes it.
type envCredentialProvider struct {
	lookup func(string) string
}

// NewEnvCredentialProvider is the constructor for the environment source.
func NewEnvCredentialProvider() service.CredentialProvider {
	return &envCredentialProvider{lookup: os.Getenv}
}

func (p *envCredentialProvider) Name() string {
	return "env"
}

func (p *envCredentialProvider) Load(context.Context) (entity.Credentials, error) {
	creds := entity.Credentials{
		Username:     p.lookup(EnvAdminUser),
		PasswordHash: p.lookup(EnvAdminPasswordHash),
	}
	if !creds.IsConfigured() {
		return entity.Credentials{}, service.ErrCredentialsUnavailable
	}

	return creds, nil
}

// credentialStore asks its providers in order and returns the first answer.
type credentialStore struct {
	providers []service.CredentialProvider
	logger    *slog.Logger
}

// NewCredentialStore builds a store over an explicit, ordered provider list.
func NewCredentialStore(logger *slog.Logger, providers ...service.CredentialProvider) service.CredentialStore {
	return &credentialStore{providers: providers, logger: logger}
}

// CredentialStoreParams defines the dependencies of the default store.
type CredentialStoreParams struct {
	fx.In

	Bucket *blob.Bucket
	Config *config.Config
	Logger *slog.Logger
}

// NewDefaultCredentialStore wires the blob object ahead of the environment.
func NewDefaultCredentialStore(params CredentialStoreParams) service.CredentialStore {
	return NewCredentialStore(params.Logger,
		NewBlobCredentialProvider(params.Bucket, params.Config.Credentials.Key),
		NewEnvCredentialProvider(),
	)
}

func (s *credentialStore) Resolve(ctx context.Context) entity.Credentials {
	for _, provider := range s.providers {
		creds, err := provider.Load(ctx)
		if err == nil {
			if !creds.IsConfigured() {
				s.logger.WarnContext(ctx, "admin credentials incomplete",
					slog.String("source", provider.Name()),
				)
			}

			return creds
		}

		s.logger.DebugContext(ctx, "credential source skipped",
			slog.String("source", provider.Name()),
			slog.Any("error", err),
		)
	}

	s.logger.WarnContext(ctx, "admin credentials not configured")

	return entity.Credentials{}
}

// blobCredentialWriter stores the record as pretty-printed JSON.
type blobCredentialWriter struct {
	bucket *blob.Bucket
	key    string
}

// NewBlobCredentialWriter is the constructor for the settings write path.
func NewBlobCredentialWriter(bucket *blob.Bucket, cfg *config.Config) service.CredentialWriter {
	return &blobCredentialWriter{bucket: bucket, key: cfg.Credentials.Key}
}

func (w *blobCredentialWriter) Save(ctx context.Context, credentials entity.Credentials) error {
	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode credentials")
	}

	if err := w.bucket.WriteAll(ctx, w.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrap(err, "failed to write credential object")
	}

	return nil
}
