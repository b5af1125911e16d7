package usecase

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"

	"github.com/google/uuid"
)

// AvailabilityInput asks which dates can be served for an address.
type AvailabilityInput struct {
	ShopID          string
	Postcode        string
	Coordinate      *entity.Coordinate
	FulfillmentType entity.FulfillmentType
	From            time.Time // Defaults to today.
	Days            int       // Defaults to the shop's horizon.
}

// DateAvailability is the verdict for one date.
type DateAvailability struct {
	Date       time.Time
	Eligible   bool
	Reason     string
	LocationID uuid.UUID
}

// AvailabilityUsecase defines the eligible-date lookup
type AvailabilityUsecase interface {
	Availability(ctx context.Context, input *AvailabilityInput) ([]DateAvailability, error)
}
