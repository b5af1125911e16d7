package main

import (
	"context"
	"log/slog"
	"os"

	"slotwise/config"
	"slotwise/internal/delivery"
	"slotwise/internal/delivery/worker"
	"slotwise/internal/infra/events"
	logs "slotwise/internal/infra/log"
	"slotwise/internal/infra/metrics"
	"slotwise/internal/infra/persistence/postgres"
	"slotwise/internal/infra/pubsub"
	"slotwise/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
			postgres.New,
			postgres.NewCatalogRepository,
			postgres.NewOutboxRepository,
		),
		events.Module,
		pubsub.Module,
		fx.Provide(
			impl.NewSettingsService,
			impl.NewEventDispatchService,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
