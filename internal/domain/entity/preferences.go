package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CustomerPreferences captures what a returning customer tends to pick.
type CustomerPreferences struct {
	CustomerID                string
	PreferredDays             []time.Weekday
	PreferredTimeWindows      []TimeWindow
	PreferredLocationIDs      []uuid.UUID
	PreviouslyUsedLocationIDs []uuid.UUID
}

// PrefersDay reports whether d is one of the preferred weekdays.
func (p *CustomerPreferences) PrefersDay(d time.Weekday) bool {
	return p != nil && slices.Contains(p.PreferredDays, d)
}

// PrefersWindow reports whether w intersects any preferred time window.
func (p *CustomerPreferences) PrefersWindow(w TimeWindow) bool {
	if p == nil {
		return false
	}

	return slices.ContainsFunc(p.PreferredTimeWindows, w.Overlaps)
}

// HasUsedLocation reports whether the customer picked up at id before.
func (p *CustomerPreferences) HasUsedLocation(id uuid.UUID) bool {
	return p != nil && slices.Contains(p.PreviouslyUsedLocationIDs, id)
}

// PrefersLocation reports whether id is one of the preferred locations.
func (p *CustomerPreferences) PrefersLocation(id uuid.UUID) bool {
	return p != nil && slices.Contains(p.PreferredLocationIDs, id)
}
