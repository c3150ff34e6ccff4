package main

import (
	"context"
	"log/slog"
	"os"

	"portfolio/config"
	"portfolio/internal/delivery"
	"portfolio/internal/delivery/api"
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router/handler"
	"portfolio/internal/delivery/api/validator"
	"portfolio/internal/infra/auth"
	"portfolio/internal/infra/csrf"
	"portfolio/internal/infra/github"
	logs "portfolio/internal/infra/log"
	"portfolio/internal/infra/persistence/gormdb"
	"portfolio/internal/infra/pubsub"
	"portfolio/internal/infra/ratelimit"
	"portfolio/internal/infra/redis"
	"portfolio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormdb.New,
		redis.New,
		validator.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormdb.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCredentialBucket,
			auth.NewDefaultCredentialStore,
			auth.NewBlobCredentialWriter,
			auth.NewSessionManager,
			csrf.NewSecretProvider,
			csrf.New,
			ratelimit.NewStore,
			ratelimit.NewLimiter,
			pubsub.NewEventPublisher,
			github.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRouteGuard,
			impl.NewContactService,
			impl.NewSettingsService,
			impl.NewContentService,
			impl.NewPortfolioService,
			impl.NewGitHubService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGuardMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCSRFHandler,
			handler.NewContactHandler,
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewContentHandler,
			handler.NewSiteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
