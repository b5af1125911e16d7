// Package ledger contains the capacity ledger backends.
package ledger

import (
	"bytes"
	"context"
	"sync"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/service"
	"slotwise/internal/infra/metrics"

	"github.com/google/uuid"
)

// Operation labels.
const (
	opReserve  = "reserve"
	opRelease  = "release"
	opTransfer = "transfer"
)

type counter struct {
	mu       sync.Mutex
	capacity int
	booked   int
	version  int64
}

// MemoryLedger keeps counters in process memory. Each slot has its own
// mutex; there is no lock spanning unrelated slots.
type MemoryLedger struct {
	slots   sync.Map // uuid.UUID -> *counter
	metrics *metrics.Metrics
}

var _ service.CapacityLedger = (*MemoryLedger)(nil)

// NewMemoryLedger creates an empty ledger.
func NewMemoryLedger(m *metrics.Metrics) *MemoryLedger {
	return &MemoryLedger{metrics: m}
}

func (l *MemoryLedger) counter(id uuid.UUID) (*counter, error) {
	v, ok := l.slots.Load(id)
	if !ok {
		return nil, domainerrors.ErrSlotNotFound.WrapMessage(id.String())
	}

	return v.(*counter), nil
}

// Register seeds counters from the slots' stored booked counts. A slot that
// is already known keeps its live booked count and takes the new capacity,
// never below what is already booked.
//
// Counters live only in this process: booked counts are not written back, so
// a restart re-seeds them from the stored slots.
func (l *MemoryLedger) Register(_ context.Context, slots ...*entity.Slot) error {
	for _, s := range slots {
		if s.Capacity < 1 {
			return domainerrors.NewConfigurationError("slot.capacity", "must be at least 1")
		}
		v, loaded := l.slots.LoadOrStore(s.ID, &counter{capacity: s.Capacity, booked: min(s.BookedCount, s.Capacity), version: s.Version})
		if !loaded {
			continue
		}

		c := v.(*counter)
		c.mu.Lock()
		c.capacity = max(s.Capacity, c.booked)
		c.mu.Unlock()
	}

	return nil
}

// Reserve implements service.CapacityLedger.
func (l *MemoryLedger) Reserve(_ context.Context, slotID uuid.UUID) error {
	c, err := l.counter(slotID)
	if err != nil {
		l.metrics.LedgerOperation(opReserve, metrics.OutcomeError)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.booked >= c.capacity {
		l.metrics.LedgerOperation(opReserve, metrics.OutcomeRejected)

		return domainerrors.NewCapacityExceededError(slotID)
	}
	c.booked++
	c.version++
	l.metrics.LedgerOperation(opReserve, metrics.OutcomeOK)

	return nil
}

// Release implements service.CapacityLedger.
func (l *MemoryLedger) Release(_ context.Context, slotID uuid.UUID) error {
	c, err := l.counter(slotID)
	if err != nil {
		l.metrics.LedgerOperation(opRelease, metrics.OutcomeError)

		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.booked == 0 {
		l.metrics.LedgerOperation(opRelease, metrics.OutcomeRejected)

		return domainerrors.ErrNothingToRelease
	}
	c.booked--
	c.version++
	l.metrics.LedgerOperation(opRelease, metrics.OutcomeOK)

	return nil
}

// Transfer implements service.CapacityLedger. Both counters are locked in
// ascending id order so crossing transfers cannot deadlock.
func (l *MemoryLedger) Transfer(_ context.Context, oldID, newID uuid.UUID) error {
	if oldID == newID {
		return nil
	}

	from, err := l.counter(oldID)
	if err != nil {
		l.metrics.LedgerOperation(opTransfer, metrics.OutcomeError)

		return err
	}
	to, err := l.counter(newID)
	if err != nil {
		l.metrics.LedgerOperation(opTransfer, metrics.OutcomeError)

		return err
	}

	first, second := from, to
	if bytes.Compare(newID[:], oldID[:]) < 0 {
		first, second = to, from
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.booked == 0 {
		l.metrics.LedgerOperation(opTransfer, metrics.OutcomeRejected)

		return domainerrors.ErrNothingToRelease
	}
	if to.booked >= to.capacity {
		l.metrics.LedgerOperation(opTransfer, metrics.OutcomeRejected)

		return domainerrors.NewCapacityExceededError(newID)
	}
	from.booked--
	from.version++
	to.booked++
	to.version++
	l.metrics.LedgerOperation(opTransfer, metrics.OutcomeOK)

	return nil
}

// Remaining implements service.CapacityLedger.
func (l *MemoryLedger) Remaining(_ context.Context, slotID uuid.UUID) (int, int, error) {
	c, err := l.counter(slotID)
	if err != nil {
		return 0, 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.capacity - c.booked, c.capacity, nil
}
