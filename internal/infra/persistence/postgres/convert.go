package postgres

import (
	"time"

	"slotwise/internal/domain/entity"
)

func secondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

// weekday maps a stored value, Sunday being 0. Out of range values wrap.
func weekday(v int) time.Weekday {
	return time.Weekday(((v % 7) + 7) % 7)
}

func coordinateParts(c *entity.Coordinate) (lat, lng *float64) {
	if c == nil {
		return nil, nil
	}
	latV, lngV := c.Lat, c.Lng

	return &latV, &lngV
}

func coordinateOf(lat, lng *float64) *entity.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}

	return &entity.Coordinate{Lat: *lat, Lng: *lng}
}

func dateParam(t time.Time) string {
	return entity.DateOf(t).Format(entity.DateLayout)
}
