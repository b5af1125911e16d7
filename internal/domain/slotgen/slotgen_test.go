package slotgen

import (
	"testing"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	locID    = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	location = &entity.Location{ID: locID, ShopID: "acme", Timezone: "Europe/London"}
	// 2025-06-09 is a Monday; 08:00 in London.
	mondayMorning = time.Date(2025, 6, 9, 7, 0, 0, 0, time.UTC)
	monday        = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
)

func template(day time.Weekday, startH, endH int, duration time.Duration, capacity int) *entity.SlotTemplate {
	return &entity.SlotTemplate{
		LocationID:      locID,
		FulfillmentType: entity.FulfillmentDelivery,
		Weekday:         day,
		Start:           entity.NewTimeOfDay(startH, 0),
		End:             entity.NewTimeOfDay(endH, 0),
		Duration:        duration,
		DefaultCapacity: capacity,
	}
}

func TestGenerate_SplitsWindows(t *testing.T) {
	templates := []*entity.SlotTemplate{template(time.Tuesday, 9, 12, time.Hour, 4)}

	slots, err := Generate(templates, nil, location, monday, 7, mondayMorning)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	for i, s := range slots {
		assert.Equal(t, time.Tuesday, s.Date.Weekday())
		assert.Equal(t, entity.NewTimeOfDay(9+i, 0), s.Start)
		assert.Equal(t, entity.NewTimeOfDay(10+i, 0), s.End)
		assert.Equal(t, 4, s.Capacity)
		assert.Equal(t, "acme", s.ShopID)
		assert.Zero(t, s.BookedCount)
	}
}

func TestGenerate_DropsTrailingRemainder(t *testing.T) {
	templates := []*entity.SlotTemplate{template(time.Tuesday, 9, 12, 90*time.Minute, 1)}
	templates[0].End = entity.NewTimeOfDay(12, 30)

	slots, err := Generate(templates, nil, location, monday, 2, mondayMorning)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, entity.NewTimeOfDay(12, 0), slots[1].End)
}

func TestGenerate_CapacityFallback(t *testing.T) {
	rule := &entity.Rule{DefaultCapacity: 6, DefaultSlotDuration: 2 * time.Hour}

	slots, err := Generate([]*entity.SlotTemplate{template(time.Tuesday, 8, 12, 0, 0)}, rule, location, monday, 2, mondayMorning)
	require.NoError(t, err)
	require.Len(t, slots, 2, "rule slot duration applies when the template has none")
	assert.Equal(t, 6, slots[0].Capacity)

	slots, err = Generate([]*entity.SlotTemplate{template(time.Tuesday, 8, 12, 0, 0)}, nil, location, monday, 2, mondayMorning)
	require.NoError(t, err)
	require.Len(t, slots, 1, "whole window without any duration")
	assert.Equal(t, 1, slots[0].Capacity)
}

func TestGenerate_Exclusions(t *testing.T) {
	cutoff := entity.NewTimeOfDay(7, 30)
	rule := &entity.Rule{
		CutoffTime:    &cutoff,
		BlackoutDates: []time.Time{monday.AddDate(0, 0, 1)},
	}
	templates := []*entity.SlotTemplate{
		template(time.Monday, 9, 10, 0, 1),
		template(time.Tuesday, 9, 10, 0, 1),
		template(time.Wednesday, 9, 10, 0, 1),
	}

	slots, err := Generate(templates, rule, location, monday, 3, mondayMorning)
	require.NoError(t, err)
	require.Len(t, slots, 1, "monday is past cutoff and tuesday is blacked out")
	assert.Equal(t, time.Wednesday, slots[0].Date.Weekday())
}

func TestGenerate_LeadTime(t *testing.T) {
	rule := &entity.Rule{LeadTime: 3 * time.Hour}
	templates := []*entity.SlotTemplate{template(time.Monday, 9, 13, time.Hour, 1)}

	slots, err := Generate(templates, rule, location, monday, 1, mondayMorning)
	require.NoError(t, err)
	require.Len(t, slots, 2, "09:00 and 10:00 start within three hours of 08:00")
	assert.Equal(t, entity.NewTimeOfDay(11, 0), slots[0].Start)
}

func TestGenerate_DeterministicAndSorted(t *testing.T) {
	templates := []*entity.SlotTemplate{
		template(time.Wednesday, 14, 16, time.Hour, 2),
		template(time.Tuesday, 9, 11, time.Hour, 2),
		template(time.Tuesday, 9, 11, time.Hour, 2),
	}

	first, err := Generate(templates, nil, location, monday, 7, mondayMorning)
	require.NoError(t, err)
	second, err := Generate(templates, nil, location, monday, 7, mondayMorning)
	require.NoError(t, err)

	require.Len(t, first, 4, "duplicate templates collapse to one slot")
	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		assert.True(t, prev.Date.Before(cur.Date) || prev.Date.Equal(cur.Date) && prev.Start < cur.Start)
	}
	assert.Equal(t, entity.SlotID(locID, first[0].Date, first[0].Start, first[0].End, entity.FulfillmentDelivery), first[0].ID)
}

func TestGenerate_Validation(t *testing.T) {
	_, err := Generate(nil, nil, nil, monday, 7, mondayMorning)
	var validationErr *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	_, err = Generate(nil, nil, location, monday, 0, mondayMorning)
	assert.True(t, errors.As(err, &validationErr))

	bad := template(time.Monday, 12, 9, 0, 1)
	_, err = Generate([]*entity.SlotTemplate{bad}, nil, location, monday, 7, mondayMorning)
	var configErr *domainerrors.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}
