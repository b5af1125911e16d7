// Package slotgen expands weekly slot templates into concrete slots.
package slotgen

import (
	"bytes"
	"cmp"
	"slices"
	"time"

	"slotwise/internal/domain/eligibility"
	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"

	"github.com/google/uuid"
)

// MaxHorizonDays bounds how far ahead slots are generated.
const MaxHorizonDays = 90

// Generate expands templates for one location over days dates starting at
// from. Blackout dates, today's slots after the cutoff, and slots starting
// within the lead time of now are left out. The output is sorted and
// identical inputs always produce identical slots.
func Generate(templates []*entity.SlotTemplate, rule *entity.Rule, location *entity.Location, from time.Time, days int, now time.Time) ([]*entity.Slot, error) {
	if location == nil {
		return nil, domainerrors.Invalid("locationId", "required")
	}
	if days <= 0 || days > MaxHorizonDays {
		return nil, domainerrors.Invalid("days", "must be between 1 and 90")
	}
	if rule == nil {
		rule = &entity.Rule{}
	}
	for _, t := range templates {
		if err := validateTemplate(t); err != nil {
			return nil, err
		}
	}

	tz := location.TimeLocation()
	localNow := now.In(tz)
	start := entity.DateOf(from)
	seen := make(map[uuid.UUID]struct{})

	var slots []*entity.Slot
	for i := range days {
		date := start.AddDate(0, 0, i)
		if rule.IsBlackout(date) || eligibility.PastCutoff(rule, date, localNow) {
			continue
		}

		for _, t := range templates {
			if t.Weekday != date.Weekday() || t.LocationID != location.ID {
				continue
			}
			for _, s := range split(t, rule) {
				if s.Start.On(date, tz).Sub(now) < rule.LeadTime {
					continue
				}
				id := entity.SlotID(location.ID, date, s.Start, s.End, t.FulfillmentType)
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}

				slots = append(slots, &entity.Slot{
					ID:              id,
					ShopID:          location.ShopID,
					LocationID:      location.ID,
					FulfillmentType: t.FulfillmentType,
					Date:            date,
					Start:           s.Start,
					End:             s.End,
					Capacity:        capacity(t, rule),
				})
			}
		}
	}

	Sort(slots)

	return slots, nil
}

// Sort orders slots by date, start, location id, then id.
func Sort(slots []*entity.Slot) {
	slices.SortFunc(slots, func(a, b *entity.Slot) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := bytes.Compare(a.LocationID[:], b.LocationID[:]); c != 0 {
			return c
		}

		return bytes.Compare(a.ID[:], b.ID[:])
	})
}

func validateTemplate(t *entity.SlotTemplate) error {
	if t.End <= t.Start {
		return domainerrors.NewConfigurationError("template.end", "must be after start")
	}
	if t.Duration < 0 {
		return domainerrors.NewConfigurationError("template.duration", "must not be negative")
	}
	if !t.FulfillmentType.Valid() {
		return domainerrors.NewConfigurationError("template.fulfillmentType", "must be delivery or pickup")
	}

	return nil
}

// split cuts a template window into back-to-back sub-slots. A trailing
// remainder shorter than the slot duration is dropped.
func split(t *entity.SlotTemplate, rule *entity.Rule) []entity.TimeWindow {
	duration := t.Duration
	if duration == 0 {
		duration = rule.DefaultSlotDuration
	}
	step := entity.TimeOfDay(duration / time.Minute)
	if step <= 0 || step >= t.End-t.Start {
		return []entity.TimeWindow{{Start: t.Start, End: t.End}}
	}

	var out []entity.TimeWindow
	for s := t.Start; s+step <= t.End; s += step {
		out = append(out, entity.TimeWindow{Start: s, End: s + step})
	}

	return out
}

func capacity(t *entity.SlotTemplate, rule *entity.Rule) int {
	switch {
	case t.DefaultCapacity > 0:
		return t.DefaultCapacity
	case rule.DefaultCapacity > 0:
		return rule.DefaultCapacity
	default:
		return 1
	}
}
