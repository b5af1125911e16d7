package ledger

import (
	"context"
	"log/slog"

	"slotwise/config"
	"slotwise/internal/domain/lifecycle"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"
	"slotwise/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Backends selectable through ledger.backend.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Params defines the dependencies of the ledger provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	DB      *gorm.DB         `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`
}

// New builds the ledger backend named in the configuration. Loaded configs
// default to postgres; memory is used only when no backend is set at all and
// suits a single API instance.
func New(params Params) (service.CapacityLedger, error) {
	backend := BackendMemory
	if params.Config.Ledger != nil && params.Config.Ledger.Backend != "" {
		backend = params.Config.Ledger.Backend
	}

	params.Logger.Info("Capacity ledger configured", slog.String("backend", backend))

	switch backend {
	case BackendMemory:
		return NewMemoryLedger(params.Metrics), nil
	case BackendPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres ledger requires a database")
		}

		return NewPostgresLedger(params.DB, params.Metrics), nil
	case BackendRedis:
		client := NewRedisClient(params.Config.Ledger.Redis)
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisLedger(client, params.Metrics), nil
	default:
		return nil, errors.Errorf("unknown ledger backend %q", backend)
	}
}

// NewRedisClient creates a client for a single node or a cluster, depending
// on how many addresses are configured.
func NewRedisClient(cfg config.RedisConfig) redis.UniversalClient {
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
