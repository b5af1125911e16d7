package usecase

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"

	"github.com/google/uuid"
)

// SlotRecommendationInput asks for ranked slots for one address.
type SlotRecommendationInput struct {
	ShopID          string
	SessionID       string
	CustomerID      string
	Postcode        string
	Coordinate      *entity.Coordinate
	FulfillmentType entity.FulfillmentType
	CartItems       []string
	// Date restricts the result to one calendar date. Without it the shop's
	// horizon starting today is used.
	Date *time.Time
}

// RecommendedSlot is one ranked slot.
type RecommendedSlot struct {
	Slot              *entity.Slot
	Score             float64
	Recommended       bool
	Reason            string
	CapacityRemaining int
	DistanceKm        *float64
}

// SlotRecommendationOutput lists slots in ranked order, or chronologically
// when Fallback is set.
type SlotRecommendationOutput struct {
	Slots    []RecommendedSlot
	Fallback bool
}

// LocationRecommendationInput asks for ranked pickup locations.
type LocationRecommendationInput struct {
	ShopID          string
	SessionID       string
	CustomerID      string
	Postcode        string
	Coordinate      *entity.Coordinate
	FulfillmentType entity.FulfillmentType // Defaults to pickup.
}

// RecommendedLocation is one ranked location.
type RecommendedLocation struct {
	Location    *entity.Location
	DistanceKm  *float64
	Score       float64
	Recommended bool
	Reason      string
}

// LocationRecommendationOutput lists locations in ranked order.
type LocationRecommendationOutput struct {
	Locations []RecommendedLocation
}

// SelectionInput records the candidate a customer picked.
type SelectionInput struct {
	ShopID          string
	SessionID       string
	CustomerID      string
	Kind            entity.RecommendationKind
	SelectedID      uuid.UUID
	CandidatesShown []entity.ShownCandidate
}

// RecommendationUsecase defines the slot and location recommendation use cases
type RecommendationUsecase interface {
	// RecommendSlots returns eligible, non-full slots ranked by score. If
	// scoring misses its deadline the slots come back in chronological order.
	RecommendSlots(ctx context.Context, input *SlotRecommendationInput) (*SlotRecommendationOutput, error)

	// RecommendLocations ranks the locations serving the address.
	RecommendLocations(ctx context.Context, input *LocationRecommendationInput) (*LocationRecommendationOutput, error)

	// RecordSelection appends a recommendation log and emits recommendation.selected.
	RecordSelection(ctx context.Context, input *SelectionInput) (*entity.RecommendationLog, error)
}
