// Command seed fills empty content tables with the starter portfolio.
package main

import (
	"context"
	"log/slog"
	"os"

	"portfolio/config"
	logs "portfolio/internal/infra/log"
	"portfolio/internal/infra/persistence/gormdb"
	"portfolio/internal/usecase"
	"portfolio/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	var (
		seeder usecase.SeedUsecase
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			gormdb.New,
			gormdb.NewTransactionManager,
			impl.NewSeedService,
		),
		fx.Populate(&seeder, &logger),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build seed command", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start", slog.Any("error", err))
		os.Exit(1)
	}

	result, err := seeder.Seed(ctx)
	stopErr := app.Stop(ctx)

	if err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	if stopErr != nil {
		logger.Warn("Shutdown incomplete", slog.Any("error", stopErr))
	}

	logger.Info("Seeding finished",
		slog.Bool("hero", result.Hero),
		slog.Int("skills", result.Skills),
		slog.Int("projects", result.Projects),
	)
}
