package repository

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"
)

// OutboxRepository stores events until they are delivered.
type OutboxRepository interface {
	// Enqueue records an event. It reports false when an undelivered event
	// with the same idempotency key exists, in which case nothing is written.
	// Delivered or dead-lettered events never block a new one.
	Enqueue(ctx context.Context, record *entity.OutboxRecord) (bool, error)

	// LeaseDue claims up to limit pending or retrying records due at now and
	// hides them from other dispatchers for the lease duration.
	LeaseDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*entity.OutboxRecord, error)

	// Save persists the state of a leased record.
	Save(ctx context.Context, record *entity.OutboxRecord) error
}
