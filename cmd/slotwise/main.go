package main

import (
	"context"
	"log/slog"
	"os"

	"slotwise/config"
	"slotwise/internal/delivery"
	"slotwise/internal/delivery/api"
	"slotwise/internal/delivery/api/middleware"
	"slotwise/internal/delivery/api/router/handler"
	"slotwise/internal/infra/auth"
	"slotwise/internal/infra/events"
	"slotwise/internal/infra/ledger"
	logs "slotwise/internal/infra/log"
	"slotwise/internal/infra/metrics"
	"slotwise/internal/infra/persistence/postgres"
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
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCatalogRepository,
			postgres.NewSlotRepository,
			postgres.NewBookingRepository,
			postgres.NewOutboxRepository,
			postgres.NewCustomerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		events.Module,
		fx.Provide(
			auth.NewJWTService,
			ledger.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSettingsService,
			impl.NewAvailabilityService,
			impl.NewSlotService,
			impl.NewBookingService,
			impl.NewRecommendationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRecommendationHandler,
			handler.NewBookingHandler,
			handler.NewAvailabilityHandler,
			handler.NewSlotHandler,
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
