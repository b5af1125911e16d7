package usecase

import (
	"context"
	"time"
)

// SlotSyncResult summarizes one regeneration run.
type SlotSyncResult struct {
	Generated int
	Removed   int64
}

// SlotUsecase keeps stored slots in line with templates and rules
type SlotUsecase interface {
	// Sync regenerates the shop's slot horizon starting at from. Stored
	// slots keep their booked count; stale slots without bookings are removed.
	Sync(ctx context.Context, shopID string, from time.Time) (*SlotSyncResult, error)
}
