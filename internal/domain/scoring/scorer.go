package scoring

import (
	"bytes"
	"fmt"
	"slices"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/geo"

	"github.com/google/uuid"
)

// Context is the optional customer context. Every field may be empty; a
// missing piece only removes the factors that need it.
type Context struct {
	CustomerCoordinate  *entity.Coordinate
	Preferences         *entity.CustomerPreferences
	ScheduledDeliveries []entity.ScheduledDelivery
	// Locations resolves slot locations for the distance factor.
	Locations map[uuid.UUID]*entity.Location
}

// Options carries the per-shop tuning for one call.
type Options struct {
	TopK          int
	MaxDistanceKm float64
}

// ScoredSlot is a ranked slot.
type ScoredSlot struct {
	Slot        *entity.Slot
	Score       float64
	Recommended bool
	Reason      string
	DistanceKm  *float64
	Breakdown   Breakdown
}

// ScoredLocation is a ranked pickup location.
type ScoredLocation struct {
	Location    *entity.Location
	Score       float64
	Recommended bool
	Reason      string
	DistanceKm  *float64
	Breakdown   Breakdown
}

// ScoreSlots scores and ranks candidate slots. The input slice is not
// modified; the returned slots carry RecommendationScore.
func ScoreSlots(slots []*entity.Slot, sc Context, w entity.Weights, opts Options) ([]ScoredSlot, error) {
	if err := validateWeights(w); err != nil {
		return nil, err
	}
	if err := validateSlots(slots); err != nil {
		return nil, err
	}

	out := make([]ScoredSlot, 0, len(slots))
	for _, s := range slots {
		scored := scoreSlot(s, sc, w, opts)
		out = append(out, scored)
	}

	slices.SortFunc(out, func(a, b ScoredSlot) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}

			return 1
		}
		if c := a.Slot.Date.Compare(b.Slot.Date); c != 0 {
			return c
		}
		if a.Slot.Start != b.Slot.Start {
			if a.Slot.Start < b.Slot.Start {
				return -1
			}

			return 1
		}

		return bytes.Compare(a.Slot.ID[:], b.Slot.ID[:])
	})

	topK := opts.TopK
	if topK <= 0 {
		topK = entity.DefaultSlotTopK
	}
	for i := range out {
		if i >= topK {
			break
		}
		out[i].Recommended = true
		if f, ok := out[i].Breakdown.Dominant(); ok {
			out[i].Reason = f.Reason()
		}
	}

	return out, nil
}

func scoreSlot(s *entity.Slot, sc Context, w entity.Weights, opts Options) ScoredSlot {
	var (
		b        Breakdown
		distance *float64
	)
	b = b.add(FactorCapacity, CapacityScore(s.BookedCount, s.Capacity), w)

	if s.FulfillmentType == entity.FulfillmentDelivery && sc.CustomerCoordinate != nil {
		if loc := sc.Locations[s.LocationID]; loc != nil && loc.Coordinate != nil {
			d := geo.RoundedDistanceKm(*sc.CustomerCoordinate, *loc.Coordinate)
			distance = &d
			b = b.add(FactorDistance, DistanceScore(d, opts.MaxDistanceKm), w)
		}
		b = b.add(FactorRouteEfficiency, RouteEfficiencyScore(s, *sc.CustomerCoordinate, sc.ScheduledDeliveries, opts.MaxDistanceKm), w)
	}

	if sc.Preferences != nil {
		b = b.add(FactorPersonalization, SlotPersonalization(s, sc.Preferences), w)
	}

	slot := *s
	slot.RecommendationScore = b.Combine()

	return ScoredSlot{Slot: &slot, Score: slot.RecommendationScore, DistanceKm: distance, Breakdown: b}
}

// ScoreLocations scores and ranks pickup locations.
func ScoreLocations(locations []*entity.Location, sc Context, w entity.Weights, opts Options) ([]ScoredLocation, error) {
	if err := validateWeights(w); err != nil {
		return nil, err
	}
	for i, l := range locations {
		if l == nil || l.ID == uuid.Nil {
			return nil, domainerrors.Invalid(fmt.Sprintf("locations[%d].id", i), "required")
		}
	}

	out := make([]ScoredLocation, 0, len(locations))
	for _, l := range locations {
		var (
			b        Breakdown
			distance *float64
		)
		if sc.CustomerCoordinate != nil && l.Coordinate != nil {
			d := geo.RoundedDistanceKm(*sc.CustomerCoordinate, *l.Coordinate)
			distance = &d
			b = b.add(FactorDistance, DistanceScore(d, opts.MaxDistanceKm), w)
		}
		if sc.Preferences != nil {
			b = b.add(FactorPersonalization, LocationPersonalization(l, sc.Preferences), w)
		}
		out = append(out, ScoredLocation{Location: l, Score: b.Combine(), DistanceKm: distance, Breakdown: b})
	}

	slices.SortFunc(out, func(a, b ScoredLocation) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}

			return 1
		}

		return bytes.Compare(a.Location.ID[:], b.Location.ID[:])
	})

	topK := opts.TopK
	if topK <= 0 {
		topK = entity.DefaultLocationTopK
	}
	for i := range out {
		if i >= topK {
			break
		}
		out[i].Recommended = true
		if f, ok := out[i].Breakdown.Dominant(); ok {
			out[i].Reason = f.Reason()
		}
	}

	return out, nil
}

// Chronological orders slots by start without scoring them. It is the
// fallback when scoring is disabled or runs out of time.
func Chronological(slots []*entity.Slot) []ScoredSlot {
	sorted := slices.Clone(slots)
	slices.SortFunc(sorted, func(a, b *entity.Slot) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if a.Start != b.Start {
			if a.Start < b.Start {
				return -1
			}

			return 1
		}

		return bytes.Compare(a.ID[:], b.ID[:])
	})

	out := make([]ScoredSlot, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, ScoredSlot{Slot: s})
	}

	return out
}

func validateWeights(w entity.Weights) error {
	if w.Negative() {
		return domainerrors.NewConfigurationError("weights", "must not be negative")
	}

	return nil
}

func validateSlots(slots []*entity.Slot) error {
	var issues []domainerrors.FieldIssue
	for i, s := range slots {
		field := fmt.Sprintf("slots[%d]", i)
		switch {
		case s == nil || s.ID == uuid.Nil:
			issues = append(issues, domainerrors.FieldIssue{Field: field + ".id", Issue: "required"})
		case s.Date.IsZero():
			issues = append(issues, domainerrors.FieldIssue{Field: field + ".date", Issue: "required"})
		case s.Capacity < 1:
			issues = append(issues, domainerrors.FieldIssue{Field: field + ".capacity", Issue: "must be at least 1"})
		}
	}
	if len(issues) > 0 {
		return domainerrors.NewValidationError(issues...)
	}

	return nil
}
