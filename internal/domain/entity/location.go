package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical store or warehouse that fulfils orders.
type Location struct {
	ID         uuid.UUID   // Unique identifier.
	ShopID     string      // Owning shop.
	Name       string      // Display name, e.g., "Downtown store".
	Address    string      // Human-readable street address.
	Coordinate *Coordinate // Geocoded position; nil when unknown.
	Timezone   string      // IANA timezone name, e.g., "Europe/London".
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TimeLocation resolves the location's timezone, falling back to UTC for an
// empty or unknown name.
func (l *Location) TimeLocation() *time.Location {
	if l == nil || l.Timezone == "" {
		return time.UTC
	}

	tz, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}

	return tz
}
