package pubsub

import (
	"context"
	"log/slog"

	"slotwise/config"
	"slotwise/internal/domain/constants"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher acknowledges every event without sending it
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, msg *service.OutboundMessage) error {
	p.logger.Debug("[Noop] Event publishing disabled, skipping",
		slog.String("event_type", msg.EventType),
		slog.String("idempotency_key", msg.IdempotencyKey),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Publishers are the transports the dispatcher delivers through. DeadLetter
// is nil unless a dead-letter topic is configured.
type Publishers struct {
	fx.Out

	Primary    service.EventPublisher
	DeadLetter service.EventPublisher `name:"deadLetter"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (Publishers, error) {
	cfg := params.Config.Events
	logger := params.Logger

	var (
		publisher service.EventPublisher
		err       error
	)

	switch cfg.Provider {
	case constants.PublisherProviderNoop, "":
		logger.Info("Event publishing disabled, using no-op publisher")
		publisher = &noopPublisher{logger: logger}

	case constants.PublisherProviderWebhook:
		logger.Info("Using webhook publisher")
		publisher = NewWebhookPublisher(cfg.HTTPTimeout, logger)

	case constants.PublisherProviderLocal:
		if cfg.LocalEndpoint == "" {
			return Publishers{}, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher",
			slog.String("endpoint", cfg.LocalEndpoint),
		)
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.HTTPTimeout, logger)

	case constants.PublisherProviderGoogle:
		ps := params.Config.PubSub
		if ps == nil || ps.ProjectID == "" || ps.TopicID == "" {
			return Publishers{}, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", ps.ProjectID),
			slog.String("topic_id", ps.TopicID),
		)
		publisher, err = NewGooglePubSubPublisher(params.Ctx, ps.ProjectID, ps.TopicID, logger)
		if err != nil {
			return Publishers{}, err
		}

	case constants.PublisherProviderKafka:
		kc := params.Config.Kafka
		if kc == nil || len(kc.Brokers) == 0 || kc.Topic == "" {
			return Publishers{}, errors.New("brokers and topic are required for kafka provider")
		}
		logger.Info("Using kafka publisher",
			slog.Any("brokers", kc.Brokers),
			slog.String("topic", kc.Topic),
		)
		publisher = NewKafkaPublisher(kc.Brokers, kc.Topic, logger)

	default:
		return Publishers{}, errors.Errorf("unknown events provider: %s", cfg.Provider)
	}

	var deadLetter service.EventPublisher
	if cfg.DeadLetterTopic != "" && params.Config.Kafka != nil && len(params.Config.Kafka.Brokers) > 0 {
		logger.Info("Forwarding dead-lettered events to kafka",
			slog.String("topic", cfg.DeadLetterTopic),
		)
		deadLetter = NewKafkaPublisher(params.Config.Kafka.Brokers, cfg.DeadLetterTopic, logger)
	}

	// Register lifecycle hook to close publishers on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")
			err := publisher.Close()
			if deadLetter != nil {
				err = errors.Join(err, deadLetter.Close())
			}

			return err
		},
	})

	return Publishers{Primary: publisher, DeadLetter: deadLetter}, nil
}

// Module provides the event publisher FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
