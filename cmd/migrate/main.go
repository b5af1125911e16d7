// Command migrate creates or updates the slotwise schema and exits.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"slotwise/config"
	logs "slotwise/internal/infra/log"
	"slotwise/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const migrateTimeout = 5 * time.Minute

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(registerMigration),
	)

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// registerMigration runs after the database hook has verified connectivity.
func registerMigration(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Migrating schema", slog.Int("models", len(postgres.Models())))
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Schema is up to date")

			return nil
		},
	})
}
