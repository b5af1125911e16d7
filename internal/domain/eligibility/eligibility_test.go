package eligibility

import (
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
	locA   = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	locB   = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	zone1  = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	zone2  = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	center = entity.Coordinate{Lat: 40.7128, Lng: -74.0060}
)

func cutoff(h, m int) *entity.TimeOfDay {
	t := entity.NewTimeOfDay(h, m)

	return &t
}

func date(s string) time.Time {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

func newCatalog() *entity.Catalog {
	east := geo.Offset(center, 90, 20)

	return &entity.Catalog{
		Locations: []*entity.Location{
			{ID: locA, Name: "Downtown", Coordinate: &center, Timezone: "America/New_York"},
			{ID: locB, Name: "East", Coordinate: &east, Timezone: "America/New_York"},
		},
		Zones: []*entity.Zone{
			{
				ID:               zone1,
				Name:             "Manhattan",
				Priority:         1,
				FulfillmentTypes: []entity.FulfillmentType{entity.FulfillmentDelivery, entity.FulfillmentPickup},
				LocationIDs:      []uuid.UUID{locB, locA},
				Coverage: entity.Coverage{
					Kind:              entity.CoveragePostcodeRange,
					RangeFrom:         "10001",
					RangeTo:           "10099",
					ExcludedPostcodes: []string{"10013"},
				},
				CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Rules: []*entity.Rule{
			{Scope: entity.RuleScopeZone, ScopeID: zone1, CutoffTime: cutoff(14, 0)},
		},
	}
}

// 10:00 in New York on 2025-06-10, a Tuesday.
var morning = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func deliveryRequest(postcode, day string) Request {
	return Request{Postcode: postcode, FulfillmentType: entity.FulfillmentDelivery, Date: date(day)}
}

func TestEvaluate_Eligible(t *testing.T) {
	res, err := Evaluate(deliveryRequest("10002", "2025-06-11"), newCatalog(), morning)
	require.NoError(t, err)

	assert.True(t, res.Eligible)
	assert.Equal(t, zone1, res.Zone.ID)
	// lowest id when no coordinates are supplied
	assert.Equal(t, locA, res.Location.ID)
	require.NotNil(t, res.Rule)
	assert.NoError(t, res.Err())
}

func TestEvaluate_CoverageReasons(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		mutate func(c *entity.Catalog)
		reason Reason
	}{
		{
			name:   "outside every zone",
			req:    deliveryRequest("94105", "2025-06-11"),
			reason: ReasonNoMatchingZone,
		},
		{
			name:   "excluded postcode",
			req:    deliveryRequest("10013", "2025-06-11"),
			reason: ReasonExcludedPostcode,
		},
		{
			name: "fulfillment type not offered",
			req:  deliveryRequest("10002", "2025-06-11"),
			mutate: func(c *entity.Catalog) {
				c.Zones[0].FulfillmentTypes = []entity.FulfillmentType{entity.FulfillmentPickup}
			},
			reason: ReasonFulfillmentType,
		},
		{
			name: "radius zone without customer coordinates",
			req:  deliveryRequest("10002", "2025-06-11"),
			mutate: func(c *entity.Catalog) {
				c.Zones[0].Coverage = entity.Coverage{Kind: entity.CoverageRadius, RadiusLocationID: locA, RadiusKm: 10}
			},
			reason: ReasonNoMatchingZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newCatalog()
			if tt.mutate != nil {
				tt.mutate(catalog)
			}

			res, err := Evaluate(tt.req, catalog, morning)
			require.NoError(t, err)
			assert.False(t, res.Eligible)
			assert.Equal(t, tt.reason, res.Reason)

			var ineligibleErr *domainerrors.IneligibleError
			require.True(t, errors.As(res.Err(), &ineligibleErr))
			assert.Equal(t, string(tt.reason), ineligibleErr.Reason)
		})
	}
}

func TestEvaluate_ExclusionFallsThroughToOtherZone(t *testing.T) {
	catalog := newCatalog()
	catalog.Zones = append(catalog.Zones, &entity.Zone{
		ID:               zone2,
		FulfillmentTypes: []entity.FulfillmentType{entity.FulfillmentDelivery},
		LocationIDs:      []uuid.UUID{locB},
		Coverage:         entity.Coverage{Kind: entity.CoveragePostcodeSet, Postcodes: []string{"10013"}},
	})

	res, err := Evaluate(deliveryRequest("10013", "2025-06-11"), catalog, morning)
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Equal(t, zone2, res.Zone.ID)
}

func TestEvaluate_ZoneTieBreak(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	overlap := func(id uuid.UUID, priority int, createdAt time.Time) *entity.Zone {
		return &entity.Zone{
			ID:               id,
			Priority:         priority,
			FulfillmentTypes: []entity.FulfillmentType{entity.FulfillmentDelivery},
			LocationIDs:      []uuid.UUID{locA},
			Coverage:         entity.Coverage{Kind: entity.CoveragePostcodeSet, Postcodes: []string{"10002"}},
			CreatedAt:        createdAt,
		}
	}

	tests := []struct {
		name   string
		zones  []*entity.Zone
		winner uuid.UUID
	}{
		{
			name:   "higher priority wins",
			zones:  []*entity.Zone{overlap(zone1, 5, created), overlap(zone2, 1, created.Add(time.Hour))},
			winner: zone1,
		},
		{
			name:   "newer zone wins on equal priority",
			zones:  []*entity.Zone{overlap(zone1, 1, created), overlap(zone2, 1, created.Add(time.Hour))},
			winner: zone2,
		},
		{
			name:   "higher id wins on equal priority and age",
			zones:  []*entity.Zone{overlap(zone2, 1, created), overlap(zone1, 1, created)},
			winner: zone2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newCatalog()
			catalog.Zones = tt.zones

			res, err := Evaluate(deliveryRequest("10002", "2025-06-11"), catalog, morning)
			require.NoError(t, err)
			require.True(t, res.Eligible)
			assert.Equal(t, tt.winner, res.Zone.ID)
		})
	}
}

func TestEvaluate_PostcodeRangeComparison(t *testing.T) {
	catalog := newCatalog()
	catalog.Zones[0].Coverage = entity.Coverage{Kind: entity.CoveragePostcodeRange, RangeFrom: "900", RangeTo: "1000"}

	res, err := Evaluate(deliveryRequest("950", "2025-06-11"), catalog, morning)
	require.NoError(t, err)
	assert.True(t, res.Eligible, "numeric comparison")

	catalog.Zones[0].Coverage = entity.Coverage{Kind: entity.CoveragePostcodeRange, RangeFrom: "SW1A", RangeTo: "SW1Z"}

	res, err = Evaluate(deliveryRequest("sw1b", "2025-06-11"), catalog, morning)
	require.NoError(t, err)
	assert.True(t, res.Eligible, "lexicographic comparison")
}

func TestEvaluate_NearestLocationForDelivery(t *testing.T) {
	customer := geo.Offset(center, 90, 18)
	req := deliveryRequest("10002", "2025-06-11")
	req.Coordinate = &customer

	res, err := Evaluate(req, newCatalog(), morning)
	require.NoError(t, err)
	require.True(t, res.Eligible)
	assert.Equal(t, locB, res.Location.ID)

	req.FulfillmentType = entity.FulfillmentPickup
	res, err = Evaluate(req, newCatalog(), morning)
	require.NoError(t, err)
	assert.Equal(t, locA, res.Location.ID, "pickup ignores distance")

	req.LocationID = locB
	res, err = Evaluate(req, newCatalog(), morning)
	require.NoError(t, err)
	assert.Equal(t, locB, res.Location.ID, "pinned location")
}

func TestEvaluate_RadiusCoverage(t *testing.T) {
	catalog := newCatalog()
	catalog.Zones[0].Coverage = entity.Coverage{Kind: entity.CoverageRadius, RadiusLocationID: locA, RadiusKm: 5}

	inside := geo.Offset(center, 180, 3)
	req := deliveryRequest("10002", "2025-06-11")
	req.Coordinate = &inside

	res, err := Evaluate(req, catalog, morning)
	require.NoError(t, err)
	assert.True(t, res.Eligible)

	outside := geo.Offset(center, 180, 8)
	req.Coordinate = &outside

	res, err = Evaluate(req, catalog, morning)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoMatchingZone, res.Reason)
}

func TestEvaluate_Calendar(t *testing.T) {
	afternoon := time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC) // 15:30 in New York

	tests := []struct {
		name   string
		day    string
		now    time.Time
		rule   entity.Rule
		reason Reason
	}{
		{
			name:   "today before cutoff",
			day:    "2025-06-10",
			now:    morning,
			rule:   entity.Rule{CutoffTime: cutoff(14, 0)},
			reason: "",
		},
		{
			name:   "today past cutoff",
			day:    "2025-06-10",
			now:    afternoon,
			rule:   entity.Rule{CutoffTime: cutoff(14, 0)},
			reason: ReasonPastCutoff,
		},
		{
			name:   "cutoff only applies to today",
			day:    "2025-06-11",
			now:    afternoon,
			rule:   entity.Rule{CutoffTime: cutoff(14, 0)},
			reason: "",
		},
		{
			name:   "blackout checked before cutoff",
			day:    "2025-06-10",
			now:    afternoon,
			rule:   entity.Rule{CutoffTime: cutoff(14, 0), BlackoutDates: []time.Time{date("2025-06-10")}},
			reason: ReasonBlackoutDate,
		},
		{
			name:   "within lead time",
			day:    "2025-06-11",
			now:    morning,
			rule:   entity.Rule{LeadTime: 48 * time.Hour},
			reason: ReasonBeforeLeadTime,
		},
		{
			name:   "lead time reaches into the date",
			day:    "2025-06-12",
			now:    morning,
			rule:   entity.Rule{LeadTime: 48 * time.Hour},
			reason: "",
		},
		{
			name:   "beyond lead time",
			day:    "2025-06-13",
			now:    morning,
			rule:   entity.Rule{LeadTime: 48 * time.Hour},
			reason: "",
		},
		{
			name:   "date in the past",
			day:    "2025-06-09",
			now:    morning,
			rule:   entity.Rule{},
			reason: ReasonBeforeLeadTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newCatalog()
			rule := tt.rule
			rule.Scope = entity.RuleScopeZone
			rule.ScopeID = zone1
			catalog.Rules = []*entity.Rule{&rule}

			res, err := Evaluate(deliveryRequest("10002", tt.day), catalog, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, tt.reason == "", res.Eligible)
		})
	}
}

func TestEvaluate_LocationRuleOverridesZoneRule(t *testing.T) {
	catalog := newCatalog()
	catalog.Rules = append(catalog.Rules, &entity.Rule{
		Scope:      entity.RuleScopeLocation,
		ScopeID:    locA,
		CutoffTime: cutoff(16, 0),
	})
	afternoon := time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC)

	res, err := Evaluate(deliveryRequest("10002", "2025-06-10"), catalog, afternoon)
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Equal(t, entity.NewTimeOfDay(16, 0), *res.Rule.CutoffTime)
}

func TestEvaluate_EarliestStartLeadTime(t *testing.T) {
	catalog := newCatalog()
	catalog.Rules = []*entity.Rule{{Scope: entity.RuleScopeZone, ScopeID: zone1, LeadTime: 2 * time.Hour}}

	req := deliveryRequest("10002", "2025-06-10")
	req.EarliestStart = cutoff(11, 0)

	res, err := Evaluate(req, catalog, morning)
	require.NoError(t, err)
	assert.Equal(t, ReasonBeforeLeadTime, res.Reason)

	req.EarliestStart = cutoff(12, 30)
	res, err = Evaluate(req, catalog, morning)
	require.NoError(t, err)
	assert.True(t, res.Eligible)
}

func TestEvaluate_Validation(t *testing.T) {
	_, err := Evaluate(Request{FulfillmentType: "drone"}, newCatalog(), morning)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := make([]string, 0, len(validationErr.Details()))
	for _, d := range validationErr.Details() {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"postcode", "date", "fulfillmentType"}, fields)
}

func TestEvaluate_ZoneWithoutLocations(t *testing.T) {
	catalog := newCatalog()
	catalog.Zones[0].LocationIDs = []uuid.UUID{uuid.New()}

	_, err := Evaluate(deliveryRequest("10002", "2025-06-11"), catalog, morning)

	var configErr *domainerrors.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestEvaluateRange(t *testing.T) {
	catalog := newCatalog()
	catalog.Rules = []*entity.Rule{{
		Scope:         entity.RuleScopeZone,
		ScopeID:       zone1,
		CutoffTime:    cutoff(9, 0),
		BlackoutDates: []time.Time{date("2025-06-12")},
	}}

	results, err := EvaluateRange(deliveryRequest("10002", "2025-06-10"), catalog, date("2025-06-10"), 4, morning)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, ReasonPastCutoff, results[0].Result.Reason)
	assert.True(t, results[1].Result.Eligible)
	assert.Equal(t, ReasonBlackoutDate, results[2].Result.Reason)
	assert.True(t, results[3].Result.Eligible)
	assert.Equal(t, date("2025-06-13"), results[3].Date)

	_, err = EvaluateRange(deliveryRequest("10002", "2025-06-10"), catalog, date("2025-06-10"), 0, morning)
	assert.Error(t, err)

	results, err = EvaluateRange(deliveryRequest("94105", "2025-06-10"), catalog, date("2025-06-10"), 2, morning)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, ReasonNoMatchingZone, r.Result.Reason)
	}
}

func TestServingZones(t *testing.T) {
	catalog := newCatalog()
	catalog.Zones = append(catalog.Zones, &entity.Zone{
		ID:               zone2,
		Priority:         5,
		FulfillmentTypes: []entity.FulfillmentType{entity.FulfillmentPickup},
		LocationIDs:      []uuid.UUID{locA},
		Coverage:         entity.Coverage{Kind: entity.CoveragePostcodeSet, Postcodes: []string{"10001"}},
	})

	pickup := Request{Postcode: "10001", FulfillmentType: entity.FulfillmentPickup}
	zones, reason := ServingZones(pickup, catalog)
	require.Len(t, zones, 2)
	assert.Empty(t, reason)
	assert.Equal(t, zone2, zones[0].ID, "higher priority first")
	assert.Equal(t, zone1, zones[1].ID)

	zones, reason = ServingZones(Request{Postcode: "10013", FulfillmentType: entity.FulfillmentPickup}, catalog)
	assert.Empty(t, zones)
	assert.Equal(t, ReasonExcludedPostcode, reason)
}

func TestRuleForLocation(t *testing.T) {
	catalog := newCatalog()
	catalog.Rules = append(catalog.Rules, &entity.Rule{
		Scope:           entity.RuleScopeLocation,
		ScopeID:         locA,
		DefaultCapacity: 7,
	})

	rule := RuleForLocation(catalog, locA, entity.FulfillmentDelivery)
	require.NotNil(t, rule.CutoffTime)
	assert.Equal(t, entity.NewTimeOfDay(14, 0), *rule.CutoffTime)
	assert.Equal(t, 7, rule.DefaultCapacity)

	orphan := RuleForLocation(catalog, uuid.New(), entity.FulfillmentDelivery)
	assert.Nil(t, orphan.CutoffTime)
	assert.Zero(t, orphan.DefaultCapacity)
}
