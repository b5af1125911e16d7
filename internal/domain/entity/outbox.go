package entity

import (
	"time"

	"slotwise/internal/errors"

	"github.com/google/uuid"
)

// OutboxStatus is the delivery state of a recorded event.
type OutboxStatus string

const (
	OutboxPending      OutboxStatus = "pending"
	OutboxRetrying     OutboxStatus = "retrying"
	OutboxDelivered    OutboxStatus = "delivered"
	OutboxDeadLettered OutboxStatus = "dead_lettered"
)

// ErrInvalidOutboxTransition is returned for a state change the outbox
// state machine does not allow.
var ErrInvalidOutboxTransition = errors.New("invalid outbox transition")

// OutboxRecord is a durably recorded event awaiting delivery.
type OutboxRecord struct {
	ID             uuid.UUID
	ShopID         string
	EventType      EventType
	IdempotencyKey string
	Payload        []byte // Encoded event body, signed at delivery time.
	Status         OutboxStatus
	Attempts       int
	NextAttemptAt  time.Time
	LastError      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeliveredAt    *time.Time
}

// IsTerminal reports whether the record will never be attempted again.
func (r *OutboxRecord) IsTerminal() bool {
	return r.Status == OutboxDelivered || r.Status == OutboxDeadLettered
}

// MarkDelivered records a successful attempt.
func (r *OutboxRecord) MarkDelivered(now time.Time) error {
	if r.IsTerminal() {
		return errors.Wrapf(ErrInvalidOutboxTransition, "%s -> %s", r.Status, OutboxDelivered)
	}
	r.Attempts++
	r.Status = OutboxDelivered
	r.LastError = ""
	r.DeliveredAt = &now
	r.UpdatedAt = now

	return nil
}

// MarkFailed records a failed attempt. A pending record always moves to
// retrying; a retrying record is dead-lettered once Attempts reaches ceiling.
// Otherwise the next attempt is scheduled after delay.
//
// Because the first failure never dead-letters, a record is attempted at
// least twice: a ceiling of 1 still dead-letters only on the second failure.
func (r *OutboxRecord) MarkFailed(now time.Time, cause error, ceiling int, delay time.Duration) error {
	if r.IsTerminal() {
		return errors.Wrapf(ErrInvalidOutboxTransition, "%s -> failed", r.Status)
	}
	r.Attempts++
	if cause != nil {
		r.LastError = cause.Error()
	}
	r.UpdatedAt = now

	if r.Status == OutboxRetrying && r.Attempts >= ceiling {
		r.Status = OutboxDeadLettered

		return nil
	}
	r.Status = OutboxRetrying
	r.NextAttemptAt = now.Add(delay)

	return nil
}
