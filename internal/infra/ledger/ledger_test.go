package ledger

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"
	"slotwise/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger(t *testing.T) {
	runLedgerSuite(t, func(t *testing.T) service.CapacityLedger {
		return NewMemoryLedger(metrics.New())
	})
}

func TestRedisLedger(t *testing.T) {
	addr := os.Getenv("SLOTWISE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping redis ledger test: SLOTWISE_TEST_REDIS_ADDR env var not set")
	}

	runLedgerSuite(t, func(t *testing.T) service.CapacityLedger {
		client := redis.NewClient(&redis.Options{Addr: addr})
		t.Cleanup(func() { _ = client.Close() })

		return NewRedisLedger(client, nil)
	})
}

func newSlot(capacity, booked int) *entity.Slot {
	return &entity.Slot{ID: uuid.New(), Capacity: capacity, BookedCount: booked}
}

func register(t *testing.T, l service.CapacityLedger, slots ...*entity.Slot) {
	t.Helper()
	require.NoError(t, l.Register(context.Background(), slots...))
}

func remaining(t *testing.T, l service.CapacityLedger, id uuid.UUID) int {
	t.Helper()
	rem, _, err := l.Remaining(context.Background(), id)
	require.NoError(t, err)

	return rem
}

func isCapacityExceeded(err error) bool {
	var capErr *domainerrors.CapacityExceededError

	return errors.As(err, &capErr)
}

func runLedgerSuite(t *testing.T, newLedger func(t *testing.T) service.CapacityLedger) {
	ctx := context.Background()

	t.Run("concurrent reserves never overbook", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(2, 0)
		register(t, l, slot)

		const n = 3
		var (
			wg        sync.WaitGroup
			succeeded atomic.Int32
			rejected  atomic.Int32
		)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := l.Reserve(ctx, slot.ID)
				switch {
				case err == nil:
					succeeded.Add(1)
				case isCapacityExceeded(err):
					rejected.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(2), succeeded.Load())
		assert.Equal(t, int32(1), rejected.Load())
		assert.Zero(t, remaining(t, l, slot.ID))
	})

	t.Run("many goroutines on a large slot", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(25, 0)
		register(t, l, slot)

		var (
			wg        sync.WaitGroup
			succeeded atomic.Int32
		)
		for range 200 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if l.Reserve(ctx, slot.ID) == nil {
					succeeded.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(25), succeeded.Load())
		assert.Zero(t, remaining(t, l, slot.ID))
	})

	t.Run("release then reserve round trip", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(3, 2)
		register(t, l, slot)

		require.NoError(t, l.Release(ctx, slot.ID))
		require.NoError(t, l.Reserve(ctx, slot.ID))
		assert.Equal(t, 1, remaining(t, l, slot.ID))
	})

	t.Run("release at zero is reported", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(3, 0)
		register(t, l, slot)

		err := l.Release(ctx, slot.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNothingToRelease)

		rem, capacity, err := l.Remaining(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, rem)
		assert.Equal(t, 3, capacity)
	})

	t.Run("register keeps existing counters", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(3, 0)
		register(t, l, slot)
		require.NoError(t, l.Reserve(ctx, slot.ID))

		register(t, l, slot)
		assert.Equal(t, 2, remaining(t, l, slot.ID))
	})

	t.Run("register applies a lowered capacity", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(5, 0)
		register(t, l, slot)

		lowered := *slot
		lowered.Capacity = 2
		register(t, l, &lowered)

		reserved := 0
		for range 5 {
			if l.Reserve(ctx, slot.ID) == nil {
				reserved++
			}
		}
		assert.Equal(t, 2, reserved)

		rem, capacity, err := l.Remaining(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, rem)
		assert.Equal(t, 2, capacity)
	})

	t.Run("register applies a raised capacity", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(1, 1)
		register(t, l, slot)

		raised := *slot
		raised.Capacity = 3
		register(t, l, &raised)

		require.NoError(t, l.Reserve(ctx, slot.ID))
		assert.Equal(t, 1, remaining(t, l, slot.ID))
	})

	t.Run("register never lowers capacity below bookings", func(t *testing.T) {
		l := newLedger(t)
		slot := newSlot(4, 0)
		register(t, l, slot)
		for range 3 {
			require.NoError(t, l.Reserve(ctx, slot.ID))
		}

		lowered := *slot
		lowered.Capacity = 1
		register(t, l, &lowered)

		rem, capacity, err := l.Remaining(ctx, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, rem)
		assert.Equal(t, 3, capacity)
		assert.True(t, isCapacityExceeded(l.Reserve(ctx, slot.ID)))
	})

	t.Run("unknown slot", func(t *testing.T) {
		l := newLedger(t)

		err := l.Reserve(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrSlotNotFound)
	})

	t.Run("transfer moves one unit", func(t *testing.T) {
		l := newLedger(t)
		a, b := newSlot(2, 1), newSlot(2, 0)
		register(t, l, a, b)

		require.NoError(t, l.Transfer(ctx, a.ID, b.ID))
		assert.Equal(t, 2, remaining(t, l, a.ID))
		assert.Equal(t, 1, remaining(t, l, b.ID))
	})

	t.Run("transfer to a full slot changes nothing", func(t *testing.T) {
		l := newLedger(t)
		a, b := newSlot(2, 1), newSlot(1, 1)
		register(t, l, a, b)

		err := l.Transfer(ctx, a.ID, b.ID)
		assert.True(t, isCapacityExceeded(err))
		assert.Equal(t, 1, remaining(t, l, a.ID))
		assert.Equal(t, 0, remaining(t, l, b.ID))
	})

	t.Run("transfer to the same slot is a no-op", func(t *testing.T) {
		l := newLedger(t)
		a := newSlot(2, 1)
		register(t, l, a)

		require.NoError(t, l.Transfer(ctx, a.ID, a.ID))
		assert.Equal(t, 1, remaining(t, l, a.ID))
	})

	t.Run("crossing transfers stay consistent", func(t *testing.T) {
		l := newLedger(t)
		a, b := newSlot(10, 5), newSlot(10, 5)
		register(t, l, a, b)

		var wg sync.WaitGroup
		for i := range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if i%2 == 0 {
					_ = l.Transfer(ctx, a.ID, b.ID)
				} else {
					_ = l.Transfer(ctx, b.ID, a.ID)
				}
			}()
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(10 * time.Second):
			t.Fatal("crossing transfers deadlocked")
		}

		remA, remB := remaining(t, l, a.ID), remaining(t, l, b.ID)
		assert.GreaterOrEqual(t, remA, 0)
		assert.LessOrEqual(t, remA, 10)
		assert.GreaterOrEqual(t, remB, 0)
		assert.LessOrEqual(t, remB, 10)
		assert.Equal(t, 10, remA+remB, "transfers conserve the total booked count")
	})

	t.Run("transfer competing with reserves", func(t *testing.T) {
		l := newLedger(t)
		a, b := newSlot(5, 5), newSlot(5, 0)
		register(t, l, a, b)

		var (
			wg          sync.WaitGroup
			transferred atomic.Int32
			reserved    atomic.Int32
		)
		for i := range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if i%2 == 0 {
					if l.Transfer(ctx, a.ID, b.ID) == nil {
						transferred.Add(1)
					}

					return
				}
				if l.Reserve(ctx, b.ID) == nil {
					reserved.Add(1)
				}
			}()
		}
		wg.Wait()

		bookedA := 5 - remaining(t, l, a.ID)
		bookedB := 5 - remaining(t, l, b.ID)
		assert.Equal(t, 5-int(transferred.Load()), bookedA)
		assert.Equal(t, int(transferred.Load()+reserved.Load()), bookedB)
		assert.LessOrEqual(t, bookedB, 5)
	})
}
