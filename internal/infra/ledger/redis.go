package ledger

import (
	"context"
	"strconv"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"
	"slotwise/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Script status codes. Non-negative results are the new booked count.
const (
	statusFull     = -1
	statusNotFound = -2
	statusEmpty    = -3
)

// Every key shares the {slots} hash tag so transfer scripts touching two
// slots stay on one cluster node.
const keyPrefix = "slotwise:{slots}:"

var reserveScript = redis.NewScript(`
local cap = redis.call('HGET', KEYS[1], 'capacity')
if not cap then return -2 end
local booked = tonumber(redis.call('HGET', KEYS[1], 'booked') or '0')
if booked >= tonumber(cap) then return -1 end
redis.call('HINCRBY', KEYS[1], 'version', 1)
return redis.call('HINCRBY', KEYS[1], 'booked', 1)
`)

var releaseScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then return -2 end
local booked = tonumber(redis.call('HGET', KEYS[1], 'booked') or '0')
if booked <= 0 then return -3 end
redis.call('HINCRBY', KEYS[1], 'version', 1)
return redis.call('HINCRBY', KEYS[1], 'booked', -1)
`)

var transferScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 or redis.call('EXISTS', KEYS[2]) == 0 then return -2 end
local from = tonumber(redis.call('HGET', KEYS[1], 'booked') or '0')
if from <= 0 then return -3 end
local to = tonumber(redis.call('HGET', KEYS[2], 'booked') or '0')
if to >= tonumber(redis.call('HGET', KEYS[2], 'capacity')) then return -1 end
redis.call('HINCRBY', KEYS[1], 'booked', -1)
redis.call('HINCRBY', KEYS[1], 'version', 1)
redis.call('HINCRBY', KEYS[2], 'version', 1)
return redis.call('HINCRBY', KEYS[2], 'booked', 1)
`)

// registerScript creates a counter, or updates the capacity of an existing
// one without dropping below its live booked count.
var registerScript = redis.NewScript(`
local cap = tonumber(ARGV[1])
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('HSET', KEYS[1], 'capacity', cap, 'booked', ARGV[2], 'version', ARGV[3])
  return cap
end
local booked = tonumber(redis.call('HGET', KEYS[1], 'booked') or '0')
if booked > cap then cap = booked end
redis.call('HSET', KEYS[1], 'capacity', cap)
return cap
`)

// RedisLedger keeps counters in Redis hashes and mutates them with Lua
// scripts, so every operation is atomic on the server.
type RedisLedger struct {
	client  redis.UniversalClient
	metrics *metrics.Metrics
}

var _ service.CapacityLedger = (*RedisLedger)(nil)

// NewRedisLedger creates a ledger on client.
func NewRedisLedger(client redis.UniversalClient, m *metrics.Metrics) *RedisLedger {
	return &RedisLedger{client: client, metrics: m}
}

func slotKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Register implements service.CapacityLedger.
func (l *RedisLedger) Register(ctx context.Context, slots ...*entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	for _, s := range slots {
		if s.Capacity < 1 {
			return domainerrors.NewConfigurationError("slot.capacity", "must be at least 1")
		}
	}

	_, err := l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, s := range slots {
			registerScript.Eval(ctx, pipe, []string{slotKey(s.ID)}, s.Capacity, min(s.BookedCount, s.Capacity), s.Version)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to register slots")
	}

	return nil
}

// Reserve implements service.CapacityLedger.
func (l *RedisLedger) Reserve(ctx context.Context, slotID uuid.UUID) error {
	res, err := reserveScript.Run(ctx, l.client, []string{slotKey(slotID)}).Int()

	return l.outcome(opReserve, slotID, res, err)
}

// Release implements service.CapacityLedger.
func (l *RedisLedger) Release(ctx context.Context, slotID uuid.UUID) error {
	res, err := releaseScript.Run(ctx, l.client, []string{slotKey(slotID)}).Int()

	return l.outcome(opRelease, slotID, res, err)
}

// Transfer implements service.CapacityLedger.
func (l *RedisLedger) Transfer(ctx context.Context, oldID, newID uuid.UUID) error {
	if oldID == newID {
		return nil
	}
	res, err := transferScript.Run(ctx, l.client, []string{slotKey(oldID), slotKey(newID)}).Int()

	return l.outcome(opTransfer, newID, res, err)
}

// Remaining implements service.CapacityLedger.
func (l *RedisLedger) Remaining(ctx context.Context, slotID uuid.UUID) (int, int, error) {
	vals, err := l.client.HMGet(ctx, slotKey(slotID), "capacity", "booked").Result()
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to read slot counter")
	}
	if vals[0] == nil {
		return 0, 0, domainerrors.ErrSlotNotFound.WrapMessage(slotID.String())
	}

	capacity, err := toInt(vals[0])
	if err != nil {
		return 0, 0, err
	}
	booked, err := toInt(vals[1])
	if err != nil {
		return 0, 0, err
	}

	return capacity - booked, capacity, nil
}

func (l *RedisLedger) outcome(op string, slotID uuid.UUID, res int, err error) error {
	if err != nil {
		l.metrics.LedgerOperation(op, metrics.OutcomeError)

		return errors.Wrapf(err, "ledger %s failed", op)
	}

	switch res {
	case statusFull:
		l.metrics.LedgerOperation(op, metrics.OutcomeRejected)

		return domainerrors.NewCapacityExceededError(slotID)
	case statusEmpty:
		l.metrics.LedgerOperation(op, metrics.OutcomeRejected)

		return domainerrors.ErrNothingToRelease
	case statusNotFound:
		l.metrics.LedgerOperation(op, metrics.OutcomeError)

		return domainerrors.ErrSlotNotFound.WrapMessage(slotID.String())
	}
	l.metrics.LedgerOperation(op, metrics.OutcomeOK)

	return nil
}

func toInt(v any) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid counter value %q", val)
		}

		return n, nil
	default:
		return 0, errors.Errorf("unexpected counter type %T", v)
	}
}
