package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"slotwise/config"
	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"
	"slotwise/internal/infra/metrics"
	"slotwise/internal/usecase"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// HeaderDeadLetterReason carries the last delivery error on forwarded
// dead-lettered events.
const HeaderDeadLetterReason = "X-Slotwise-Dead-Letter-Reason"

type eventDispatchService struct {
	outboxRepo  repository.OutboxRepository
	settings    usecase.SettingsUsecase
	publisher   service.EventPublisher
	deadLetter  service.EventPublisher
	signer      service.EventSigner
	metrics     *metrics.Metrics
	logger      *slog.Logger
	batchSize   int
	workers     int
	lease       time.Duration
	initialWait time.Duration
	maxWait     time.Duration
	now         func() time.Time
}

// EventDispatchServiceParams holds dependencies for the dispatcher, injected by Fx.
type EventDispatchServiceParams struct {
	fx.In

	OutboxRepo repository.OutboxRepository
	Settings   usecase.SettingsUsecase
	Publisher  service.EventPublisher
	DeadLetter service.EventPublisher `name:"deadLetter" optional:"true"`
	Signer     service.EventSigner
	Metrics    *metrics.Metrics `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewEventDispatchService creates the outbox dispatcher
func NewEventDispatchService(params EventDispatchServiceParams) usecase.EventDispatchUsecase {
	cfg := params.Config.Events

	return &eventDispatchService{
		outboxRepo:  params.OutboxRepo,
		settings:    params.Settings,
		publisher:   params.Publisher,
		deadLetter:  params.DeadLetter,
		signer:      params.Signer,
		metrics:     params.Metrics,
		logger:      params.Logger,
		batchSize:   cfg.BatchSize,
		workers:     cfg.Workers,
		lease:       cfg.LeaseDuration,
		initialWait: cfg.InitialBackoff,
		maxWait:     cfg.MaxBackoff,
		now:         time.Now,
	}
}

// RetryDelay is the wait before attempt+1 after attempt failed deliveries:
// initial doubled per attempt and capped at maxDelay. There is no jitter, so
// a record's schedule is reproducible.
func RetryDelay(attempt int, initial, maxDelay time.Duration) time.Duration {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     initial,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         maxDelay,
	}
	b.Reset()

	delay := initial
	for range max(attempt, 1) {
		delay = b.NextBackOff()
	}

	return delay
}

func (s *eventDispatchService) DispatchDue(ctx context.Context) (*usecase.DispatchResult, error) {
	now := s.now()

	records, err := s.outboxRepo.LeaseDue(ctx, now, s.batchSize, s.lease)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lease outbox records")
	}
	result := &usecase.DispatchResult{Leased: len(records)}
	if len(records) == 0 {
		return result, nil
	}

	settings := s.resolveSettings(ctx, records)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(max(s.workers, 1))
	for _, record := range records {
		g.Go(func() error {
			status, err := s.deliver(ctx, record, settings[record.ShopID])
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			switch status {
			case entity.OutboxDelivered:
				result.Delivered++
			case entity.OutboxRetrying:
				result.Retrying++
			case entity.OutboxDeadLettered:
				result.DeadLettered++
			}

			return nil
		})
	}

	return result, g.Wait()
}

// resolveSettings loads settings once per shop in the batch. A shop whose
// settings cannot be read is delivered with the service defaults.
func (s *eventDispatchService) resolveSettings(ctx context.Context, records []*entity.OutboxRecord) map[string]entity.ShopSettings {
	out := make(map[string]entity.ShopSettings)
	for _, r := range records {
		if _, ok := out[r.ShopID]; ok {
			continue
		}
		settings, err := s.settings.Resolve(ctx, r.ShopID)
		if err != nil {
			s.logger.Warn("Falling back to default shop settings",
				slog.String("shop_id", r.ShopID),
				slog.Any("error", err),
			)
			settings = entity.DefaultShopSettings(r.ShopID)
		}
		out[r.ShopID] = settings
	}

	return out
}

func (s *eventDispatchService) deliver(ctx context.Context, record *entity.OutboxRecord, settings entity.ShopSettings) (entity.OutboxStatus, error) {
	logger := s.logger.With(
		slog.String("outbox_id", record.ID.String()),
		slog.String("event_type", string(record.EventType)),
		slog.String("shop_id", record.ShopID),
	)
	now := s.now()

	msg, err := s.message(record, settings, now)
	if err == nil {
		err = s.publisher.Publish(ctx, msg)
	}
	if err != nil && ctx.Err() != nil {
		// Shutting down. The lease expires and another round retries.
		return record.Status, nil
	}

	if err == nil {
		if markErr := record.MarkDelivered(now); markErr != nil {
			return "", markErr
		}
		s.metrics.Event(string(record.EventType), metrics.OutcomeOK)
		logger.Info("Event delivered", slog.Int("attempts", record.Attempts))
	} else {
		delay := RetryDelay(record.Attempts+1, s.initialWait, s.maxWait)
		if markErr := record.MarkFailed(now, err, settings.EventRetryCeiling, delay); markErr != nil {
			return "", markErr
		}

		if record.Status == entity.OutboxDeadLettered {
			s.metrics.Event(string(record.EventType), metrics.OutcomeDead)
			logger.Error("Event dead-lettered",
				slog.Int("attempts", record.Attempts),
				slog.Any("error", err),
			)
			s.forwardDeadLetter(ctx, msg, record, logger)
		} else {
			s.metrics.Event(string(record.EventType), metrics.OutcomeRetry)
			logger.Warn("Event delivery failed, will retry",
				slog.Int("attempts", record.Attempts),
				slog.Time("next_attempt_at", record.NextAttemptAt),
				slog.Any("error", err),
			)
		}
	}

	if err := s.outboxRepo.Save(ctx, record); err != nil {
		return "", errors.Wrapf(err, "failed to save outbox record %s", record.ID)
	}

	return record.Status, nil
}

func (s *eventDispatchService) message(record *entity.OutboxRecord, settings entity.ShopSettings, now time.Time) (*service.OutboundMessage, error) {
	headers, err := s.signer.Headers(record, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign event")
	}

	return &service.OutboundMessage{
		ShopID:         record.ShopID,
		EventType:      string(record.EventType),
		IdempotencyKey: record.IdempotencyKey,
		Body:           record.Payload,
		Headers:        headers,
		WebhookURL:     settings.WebhookURL,
	}, nil
}

func (s *eventDispatchService) forwardDeadLetter(ctx context.Context, msg *service.OutboundMessage, record *entity.OutboxRecord, logger *slog.Logger) {
	if s.deadLetter == nil {
		return
	}
	if msg == nil {
		msg = &service.OutboundMessage{
			ShopID:         record.ShopID,
			EventType:      string(record.EventType),
			IdempotencyKey: record.IdempotencyKey,
			Body:           record.Payload,
		}
	}

	forwarded := *msg
	forwarded.Headers = make(map[string]string, len(msg.Headers)+1)
	for k, v := range msg.Headers {
		forwarded.Headers[k] = v
	}
	forwarded.Headers[HeaderDeadLetterReason] = record.LastError

	if err := s.deadLetter.Publish(ctx, &forwarded); err != nil {
		logger.Error("Failed to forward dead-lettered event", slog.Any("error", err))
	}
}
