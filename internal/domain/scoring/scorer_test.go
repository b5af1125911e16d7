package scoring

import (
	"math/rand/v2"
	"testing"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/geo"
	"slotwise/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	customer = entity.Coordinate{Lat: 51.5007, Lng: -0.1246}
	tuesday  = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
)

func id(n byte) uuid.UUID {
	var u uuid.UUID
	u[15] = n

	return u
}

func pickupSlot(n byte, date time.Time, startH int, booked, capacity int) *entity.Slot {
	return &entity.Slot{
		ID:              id(n),
		LocationID:      id(200),
		FulfillmentType: entity.FulfillmentPickup,
		Date:            date,
		Start:           entity.NewTimeOfDay(startH, 0),
		End:             entity.NewTimeOfDay(startH+1, 0),
		Capacity:        capacity,
		BookedCount:     booked,
	}
}

func TestCapacityScore(t *testing.T) {
	tests := []struct {
		booked, capacity int
		expected         float64
	}{
		{booked: 0, capacity: 10, expected: 1.0},
		{booked: 4, capacity: 10, expected: 1.0},
		{booked: 5, capacity: 10, expected: 0.8},
		{booked: 7, capacity: 10, expected: 0.5},
		{booked: 9, capacity: 10, expected: 0.2},
		{booked: 19, capacity: 20, expected: 0.2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CapacityScore(tt.booked, tt.capacity), "%d/%d", tt.booked, tt.capacity)
	}
}

func TestDistanceScore(t *testing.T) {
	assert.InDelta(t, 0.96, DistanceScore(2, 50), 1e-9)
	assert.Equal(t, 0.0, DistanceScore(75, 50))
	assert.InDelta(t, 0.8, DistanceScore(10, 0), 1e-9, "zero max falls back to the default")
}

func TestScoreSlots_LowerUtilizationScoresHigher(t *testing.T) {
	busy := pickupSlot(1, tuesday, 9, 19, 20)
	quiet := pickupSlot(2, tuesday, 10, 8, 20)

	ranked, err := ScoreSlots([]*entity.Slot{busy, quiet}, Context{}, entity.DefaultWeights(), Options{})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, quiet.ID, ranked[0].Slot.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, 1.0, ranked[0].Breakdown[0].Score)
	assert.Equal(t, 0.2, ranked[1].Breakdown[0].Score)
	assert.Equal(t, "Plenty of availability", ranked[0].Reason)
}

func TestScoreSlots_PreferredWeekday(t *testing.T) {
	sat := pickupSlot(1, saturday, 9, 0, 10)
	tue := pickupSlot(2, tuesday, 9, 0, 10)
	prefs := &entity.CustomerPreferences{PreferredDays: []time.Weekday{time.Saturday}}

	ranked, err := ScoreSlots([]*entity.Slot{tue, sat}, Context{Preferences: prefs}, entity.DefaultWeights(), Options{})
	require.NoError(t, err)

	assert.Equal(t, sat.ID, ranked[0].Slot.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.InDelta(t, 0.86, ranked[0].Score, 1e-9)
	assert.InDelta(t, 0.8, ranked[1].Score, 1e-9)
}

func TestScoreSlots_PreferredWindow(t *testing.T) {
	slot := pickupSlot(1, tuesday, 9, 0, 10)
	prefs := &entity.CustomerPreferences{
		PreferredDays:        []time.Weekday{time.Tuesday},
		PreferredTimeWindows: []entity.TimeWindow{{Start: entity.NewTimeOfDay(9, 30), End: entity.NewTimeOfDay(11, 0)}},
	}

	assert.InDelta(t, 0.5, SlotPersonalization(slot, prefs), 1e-9)
	assert.Zero(t, SlotPersonalization(slot, &entity.CustomerPreferences{}))
}

func TestScoreSlots_DeliveryFactors(t *testing.T) {
	store := geo.Offset(customer, 0, 5)
	location := &entity.Location{ID: id(200), Coordinate: &store}
	slot := pickupSlot(1, tuesday, 12, 0, 10)
	slot.FulfillmentType = entity.FulfillmentDelivery

	sc := Context{
		CustomerCoordinate: &customer,
		Locations:          map[uuid.UUID]*entity.Location{location.ID: location},
		ScheduledDeliveries: []entity.ScheduledDelivery{
			{Date: tuesday, Start: entity.NewTimeOfDay(13, 0), Coordinate: geo.Offset(customer, 90, 10)},
			{Date: tuesday, Start: entity.NewTimeOfDay(11, 0), Coordinate: geo.Offset(customer, 270, 20)},
			{Date: tuesday, Start: entity.NewTimeOfDay(16, 0), Coordinate: geo.Offset(customer, 90, 1)},
			{Date: saturday, Start: entity.NewTimeOfDay(12, 0), Coordinate: customer},
		},
	}

	ranked, err := ScoreSlots([]*entity.Slot{slot}, sc, entity.DefaultWeights(), Options{MaxDistanceKm: 50})
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	got := ranked[0]
	require.NotNil(t, got.DistanceKm)
	assert.Equal(t, 5.0, *got.DistanceKm)
	require.Len(t, got.Breakdown, 3, "personalization is omitted without preferences")
	assert.Equal(t, FactorDistance, got.Breakdown[1].Factor)
	assert.InDelta(t, 0.9, got.Breakdown[1].Score, 1e-9)
	assert.Equal(t, FactorRouteEfficiency, got.Breakdown[2].Factor)
	// mean of 10 km and 20 km neighbours within two hours
	assert.InDelta(t, 0.7, got.Breakdown[2].Score, 1e-9)
	assert.InDelta(t, (0.4*1.0+0.3*0.9+0.2*0.7)/0.9, got.Score, 1e-9)
}

func TestRouteEfficiencyScore_FirstDelivery(t *testing.T) {
	slot := pickupSlot(1, tuesday, 12, 0, 10)

	assert.Equal(t, 1.0, RouteEfficiencyScore(slot, customer, nil, 50))
}

func TestScoreLocations_NearestRecommended(t *testing.T) {
	l1 := &entity.Location{ID: id(2), Name: "L1"}
	l2 := &entity.Location{ID: id(1), Name: "L2"}
	near := geo.Offset(customer, 0, 2)
	far := geo.Offset(customer, 90, 10)
	l1.Coordinate, l2.Coordinate = &near, &far

	ranked, err := ScoreLocations([]*entity.Location{l2, l1}, Context{CustomerCoordinate: &customer}, entity.DefaultWeights(), Options{})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "L1", ranked[0].Location.Name)
	assert.True(t, ranked[0].Recommended)
	assert.Equal(t, "Closest to you", ranked[0].Reason)
	assert.Equal(t, 2.0, *ranked[0].DistanceKm)
	assert.False(t, ranked[1].Recommended)
	assert.Empty(t, ranked[1].Reason)
	assert.InDelta(t, 0.96, ranked[0].Score, 1e-9)
	assert.InDelta(t, 0.8, ranked[1].Score, 1e-9)
}

func TestScoreLocations_PreviouslyUsed(t *testing.T) {
	used := &entity.Location{ID: id(9)}
	other := &entity.Location{ID: id(1)}
	prefs := &entity.CustomerPreferences{PreviouslyUsedLocationIDs: []uuid.UUID{used.ID}}

	ranked, err := ScoreLocations([]*entity.Location{other, used}, Context{Preferences: prefs}, entity.DefaultWeights(), Options{})
	require.NoError(t, err)

	assert.Equal(t, used.ID, ranked[0].Location.ID)
	assert.Equal(t, 1.0, ranked[0].Score)
	assert.InDelta(t, 0.3, ranked[1].Score, 1e-9)
	assert.Equal(t, "Matches your preferences", ranked[0].Reason)
}

func TestScoreSlots_TieBreaksAndTopK(t *testing.T) {
	slots := []*entity.Slot{
		pickupSlot(5, saturday, 9, 0, 10),
		pickupSlot(4, tuesday, 11, 0, 10),
		pickupSlot(3, tuesday, 9, 0, 10),
		pickupSlot(2, tuesday, 9, 0, 10),
	}

	ranked, err := ScoreSlots(slots, Context{}, entity.DefaultWeights(), Options{TopK: 2})
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Slot.ID)
	}
	assert.Equal(t, []uuid.UUID{id(2), id(3), id(4), id(5)}, ids)
	assert.True(t, ranked[1].Recommended)
	assert.False(t, ranked[2].Recommended)
	assert.Zero(t, slots[0].RecommendationScore, "input slots are not mutated")
}

func TestBreakdown_ZeroWeightsUsePlainMean(t *testing.T) {
	var b Breakdown
	b = b.add(FactorCapacity, 0.2, entity.Weights{})
	b = b.add(FactorPersonalization, 0.6, entity.Weights{})

	assert.InDelta(t, 0.4, b.Combine(), 1e-9)
	f, ok := b.Dominant()
	require.True(t, ok)
	assert.Equal(t, FactorPersonalization, f)

	assert.Zero(t, Breakdown(nil).Combine())
}

func TestBreakdown_DominantTieUsesFactorOrder(t *testing.T) {
	w := entity.Weights{Capacity: 0.5, Distance: 0.5}
	var b Breakdown
	b = b.add(FactorDistance, 0.8, w)
	b = b.add(FactorCapacity, 0.8, w)

	f, _ := b.Dominant()
	assert.Equal(t, FactorCapacity, f)
}

func TestScoreSlots_DeterministicAndBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	store := geo.Offset(customer, 45, 3)
	location := &entity.Location{ID: id(200), Coordinate: &store}

	var slots []*entity.Slot
	var scheduled []entity.ScheduledDelivery
	for i := range 40 {
		capacity := 1 + rng.IntN(20)
		s := pickupSlot(byte(i+1), tuesday.AddDate(0, 0, rng.IntN(7)), 8+rng.IntN(10), rng.IntN(capacity), capacity)
		if i%2 == 0 {
			s.FulfillmentType = entity.FulfillmentDelivery
		}
		slots = append(slots, s)
		scheduled = append(scheduled, entity.ScheduledDelivery{
			Date:       s.Date,
			Start:      s.Start,
			Coordinate: geo.Offset(customer, rng.Float64()*360, rng.Float64()*80),
		})
	}
	sc := Context{
		CustomerCoordinate:  &customer,
		ScheduledDeliveries: scheduled,
		Locations:           map[uuid.UUID]*entity.Location{location.ID: location},
		Preferences:         &entity.CustomerPreferences{PreferredDays: []time.Weekday{time.Friday}},
	}
	w := entity.Weights{Capacity: rng.Float64(), Distance: rng.Float64(), RouteEfficiency: rng.Float64(), Personalization: rng.Float64()}

	first, err := ScoreSlots(slots, sc, w, Options{})
	require.NoError(t, err)
	second, err := ScoreSlots(slots, sc, w, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, r := range first {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestScoreSlots_Validation(t *testing.T) {
	_, err := ScoreSlots([]*entity.Slot{pickupSlot(1, tuesday, 9, 0, 10)}, Context{}, entity.Weights{Capacity: -1}, Options{})
	var configErr *domainerrors.ConfigurationError
	assert.True(t, errors.As(err, &configErr))

	bad := pickupSlot(1, time.Time{}, 9, 0, 0)
	_, err = ScoreSlots([]*entity.Slot{bad}, Context{}, entity.DefaultWeights(), Options{})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "slots[0].date", validationErr.Details()[0].Field)

	_, err = ScoreLocations([]*entity.Location{{}}, Context{}, entity.DefaultWeights(), Options{})
	assert.True(t, errors.As(err, &validationErr))
}

func TestChronological(t *testing.T) {
	late := pickupSlot(1, saturday, 9, 0, 10)
	early := pickupSlot(2, tuesday, 15, 0, 10)
	earliest := pickupSlot(3, tuesday, 8, 0, 10)

	ordered := Chronological([]*entity.Slot{late, early, earliest})
	require.Len(t, ordered, 3)
	assert.Equal(t, earliest.ID, ordered[0].Slot.ID)
	assert.Equal(t, early.ID, ordered[1].Slot.ID)
	assert.Equal(t, late.ID, ordered[2].Slot.ID)
	assert.False(t, ordered[0].Recommended)
}
