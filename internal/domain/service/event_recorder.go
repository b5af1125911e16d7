package service

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
)

// EventRecorder turns a domain event into an outbox record.
type EventRecorder interface {
	// Record encodes event and enqueues it on outbox. Enqueuing an event
	// whose idempotency key is already recorded is a no-op.
	Record(ctx context.Context, outbox repository.OutboxRepository, event entity.Event) error
}

// EventSigner produces the transport headers for an outbox record.
type EventSigner interface {
	// Headers returns the signature, idempotency, event and timestamp headers
	// for a delivery attempt made at at.
	Headers(record *entity.OutboxRecord, at time.Time) (map[string]string, error)
}
