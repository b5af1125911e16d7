package events

import (
	"context"
	"log/slog"
	"time"

	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"

	"github.com/google/uuid"
)

type recorder struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewRecorder creates the outbox event recorder.
func NewRecorder(logger *slog.Logger) service.EventRecorder {
	return &recorder{logger: logger, now: time.Now}
}

func (r *recorder) Record(ctx context.Context, outbox repository.OutboxRepository, event entity.Event) error {
	record, err := NewRecord(event, r.now())
	if err != nil {
		return err
	}

	created, err := outbox.Enqueue(ctx, record)
	if err != nil {
		return errors.Wrapf(err, "enqueue %s", event.Type())
	}
	if !created {
		r.logger.Debug("Event already recorded",
			slog.String("event_type", string(event.Type())),
			slog.String("idempotency_key", record.IdempotencyKey),
		)
	}

	return nil
}

// NewRecord builds a pending outbox record due immediately.
func NewRecord(event entity.Event, now time.Time) (*entity.OutboxRecord, error) {
	payload, err := EncodeEvent(event)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.OutboxRecord{
		ID:             id,
		ShopID:         event.Shop(),
		EventType:      event.Type(),
		IdempotencyKey: entity.IdempotencyKey(event),
		Payload:        payload,
		Status:         entity.OutboxPending,
		NextAttemptAt:  now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
