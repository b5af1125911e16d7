package service

import (
	"context"

	"slotwise/internal/domain/entity"

	"github.com/google/uuid"
)

// CapacityLedger is the only writer of slot booked counts. Implementations
// serialize operations per slot and never hold a lock across slots except
// inside Transfer, which locks in ascending id order.
type CapacityLedger interface {
	// Reserve books one unit. A full slot yields CapacityExceededError.
	Reserve(ctx context.Context, slotID uuid.UUID) error

	// Release returns one unit. Releasing an empty slot yields
	// ErrNothingToRelease and leaves the count at zero.
	Release(ctx context.Context, slotID uuid.UUID) error

	// Transfer releases oldID and reserves newID as one atomic step. When
	// newID is full nothing changes.
	Transfer(ctx context.Context, oldID, newID uuid.UUID) error

	// Remaining reports free units and capacity without changing anything.
	Remaining(ctx context.Context, slotID uuid.UUID) (remaining, capacity int, err error)

	// Register makes slots known to the ledger. Existing counters keep their
	// booked count and take the new capacity, clamped to at least that count.
	Register(ctx context.Context, slots ...*entity.Slot) error
}
