package repository

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"

	"github.com/google/uuid"
)

// SlotQuery selects stored slots. Zero-valued fields do not filter.
type SlotQuery struct {
	ShopID          string
	LocationIDs     []uuid.UUID
	FulfillmentType entity.FulfillmentType
	From            time.Time // First date, inclusive.
	To              time.Time // Last date, inclusive.
}

// SlotRepository persists generated slots.
type SlotRepository interface {
	// FindSlotByID returns ErrSlotNotFound for unknown ids.
	FindSlotByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error)
	FindSlots(ctx context.Context, query SlotQuery) ([]*entity.Slot, error)

	// UpsertSlots inserts new slots and refreshes the capacity of existing
	// ones without touching their booked count or version.
	UpsertSlots(ctx context.Context, slots []*entity.Slot) error

	// DeleteUnbookedSlots removes the given slots that have no bookings and
	// returns how many were removed.
	DeleteUnbookedSlots(ctx context.Context, ids []uuid.UUID) (int64, error)

	// FindScheduledDeliveries returns active delivery bookings with known
	// coordinates between two dates, inclusive.
	FindScheduledDeliveries(ctx context.Context, shopID string, from, to time.Time) ([]entity.ScheduledDelivery, error)
}
