package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// slotNamespace seeds deterministic slot ids.
var slotNamespace = uuid.MustParse("7b0c5a52-3c1e-4d8b-9f57-2f1a6f0d9e41")

// SlotTemplate is a recurring weekly availability window for a location.
type SlotTemplate struct {
	ID              uuid.UUID
	ShopID          string
	LocationID      uuid.UUID
	FulfillmentType FulfillmentType
	Weekday         time.Weekday
	Start           TimeOfDay
	End             TimeOfDay
	Duration        time.Duration // Sub-slot length; zero means the whole window is one slot.
	DefaultCapacity int
}

// Slot is a concrete bookable time window on a calendar date.
type Slot struct {
	ID              uuid.UUID
	ShopID          string
	LocationID      uuid.UUID
	FulfillmentType FulfillmentType
	Date            time.Time // Calendar date at midnight UTC.
	Start           TimeOfDay
	End             TimeOfDay
	Capacity        int
	BookedCount     int   // Only mutated through the capacity ledger.
	Version         int64 // Bumped on every ledger mutation.

	// RecommendationScore is computed per request and never persisted.
	RecommendationScore float64
}

// Remaining returns how many bookings the slot still accepts.
func (s *Slot) Remaining() int {
	return max(s.Capacity-s.BookedCount, 0)
}

// Utilization returns BookedCount/Capacity.
func (s *Slot) Utilization() float64 {
	if s.Capacity <= 0 {
		return 1
	}

	return float64(s.BookedCount) / float64(s.Capacity)
}

// Window returns the slot's time-of-day window.
func (s *Slot) Window() TimeWindow {
	return TimeWindow{Start: s.Start, End: s.End}
}

// StartAt returns the absolute start instant in loc.
func (s *Slot) StartAt(loc *time.Location) time.Time {
	return s.Start.On(s.Date, loc)
}

// SlotID derives the stable id of a slot from its natural key, so
// regenerating a horizon never changes the identity of a booked slot.
func SlotID(locationID uuid.UUID, date time.Time, start, end TimeOfDay, ft FulfillmentType) uuid.UUID {
	key := fmt.Sprintf("%s|%s|%s|%s|%s", locationID, date.Format(DateLayout), start, end, ft)

	return uuid.NewSHA1(slotNamespace, []byte(key))
}
