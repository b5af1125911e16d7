// Package eligibility decides whether an address and date can be served
// under a shop's zones and rules. Everything here is pure and safe for
// concurrent use.
package eligibility

import (
	"bytes"
	"cmp"
	"slices"
	"strconv"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/geo"

	"github.com/google/uuid"
)

// Reason explains why a request is ineligible.
type Reason string

const (
	ReasonNoMatchingZone   Reason = "no_matching_zone"
	ReasonExcludedPostcode Reason = "excluded_postcode"
	ReasonFulfillmentType  Reason = "fulfillment_type_unsupported"
	ReasonPastCutoff       Reason = "past_cutoff"
	ReasonBeforeLeadTime   Reason = "before_lead_time"
	ReasonBlackoutDate     Reason = "blackout_date"
)

const maxRangeDays = 366

// Request is a single eligibility question.
type Request struct {
	Postcode        string
	Coordinate      *entity.Coordinate // Optional customer position.
	FulfillmentType entity.FulfillmentType
	Date            time.Time // Candidate calendar date.

	// EarliestStart narrows the lead-time check to a specific slot start.
	// Without it a date passes if any part of it is still far enough away.
	EarliestStart *entity.TimeOfDay

	// LocationID pins the location, e.g. a pickup point the customer chose.
	LocationID uuid.UUID
}

// Result is either eligible with the winning zone, location and effective
// rule, or ineligible with a reason.
type Result struct {
	Eligible bool
	Reason   Reason
	Zone     *entity.Zone
	Location *entity.Location
	Rule     *entity.Rule
}

// Err converts an ineligible result to an IneligibleError.
func (r Result) Err() error {
	if r.Eligible {
		return nil
	}

	return domainerrors.NewIneligibleError(string(r.Reason))
}

// DateResult is the verdict for one date of a range.
type DateResult struct {
	Date   time.Time
	Result Result
}

func ineligible(reason Reason) Result {
	return Result{Reason: reason}
}

// Evaluate answers req against catalog at instant now. Malformed requests
// return a ValidationError rather than an ineligible result.
func Evaluate(req Request, catalog *entity.Catalog, now time.Time) (Result, error) {
	if err := validate(req); err != nil {
		return Result{}, err
	}

	zone, location, res, err := resolve(req, catalog)
	if err != nil || !res.Eligible {
		return res, err
	}

	return checkCalendar(req, zone, location, catalog, now), nil
}

// EvaluateRange evaluates req for each of days consecutive dates starting
// at from. Zone resolution happens once; only calendar checks vary.
func EvaluateRange(req Request, catalog *entity.Catalog, from time.Time, days int, now time.Time) ([]DateResult, error) {
	req.Date = from
	if err := validate(req); err != nil {
		return nil, err
	}
	if days <= 0 || days > maxRangeDays {
		return nil, domainerrors.Invalid("days", "must be between 1 and 366")
	}

	zone, location, res, err := resolve(req, catalog)
	if err != nil {
		return nil, err
	}

	start := entity.DateOf(from)
	out := make([]DateResult, 0, days)
	for i := range days {
		date := start.AddDate(0, 0, i)
		dayResult := res
		if res.Eligible {
			dayReq := req
			dayReq.Date = date
			dayResult = checkCalendar(dayReq, zone, location, catalog, now)
		}
		out = append(out, DateResult{Date: date, Result: dayResult})
	}

	return out, nil
}

func validate(req Request) error {
	var issues []domainerrors.FieldIssue
	if entity.NormalizePostcode(req.Postcode) == "" {
		issues = append(issues, domainerrors.FieldIssue{Field: "postcode", Issue: "required"})
	}
	if req.Date.IsZero() {
		issues = append(issues, domainerrors.FieldIssue{Field: "date", Issue: "required"})
	}
	if !req.FulfillmentType.Valid() {
		issues = append(issues, domainerrors.FieldIssue{Field: "fulfillmentType", Issue: "must be delivery or pickup"})
	}
	if len(issues) > 0 {
		return domainerrors.NewValidationError(issues...)
	}

	return nil
}

// ServingZones returns the zones that cover the address, do not exclude
// it and offer the fulfillment type, winning zone first. When none remain
// the reason names the step that eliminated the last candidates.
func ServingZones(req Request, catalog *entity.Catalog) ([]*entity.Zone, Reason) {
	var covering []*entity.Zone
	for _, z := range catalog.Zones {
		if covers(z, req, catalog) {
			covering = append(covering, z)
		}
	}
	if len(covering) == 0 {
		return nil, ReasonNoMatchingZone
	}

	included := slices.DeleteFunc(slices.Clone(covering), func(z *entity.Zone) bool {
		return z.Coverage.Excludes(req.Postcode)
	})
	if len(included) == 0 {
		return nil, ReasonExcludedPostcode
	}

	serving := slices.DeleteFunc(included, func(z *entity.Zone) bool {
		return !z.Serves(req.FulfillmentType)
	})
	if len(serving) == 0 {
		return nil, ReasonFulfillmentType
	}
	slices.SortStableFunc(serving, compareZones)

	return serving, ""
}

// RuleForLocation resolves the effective rule for slots of a location: the
// rule of the winning zone serving it for ft, overridden by the location's
// own rule.
func RuleForLocation(catalog *entity.Catalog, locationID uuid.UUID, ft entity.FulfillmentType) *entity.Rule {
	var zoneRule *entity.Rule
	if zones := catalog.ZonesServing(locationID, ft); len(zones) > 0 {
		zoneRule = catalog.RuleFor(entity.RuleScopeZone, slices.MinFunc(zones, compareZones).ID)
	}

	return entity.EffectiveRule(zoneRule, catalog.RuleFor(entity.RuleScopeLocation, locationID))
}

// resolve runs the date-independent steps: coverage, exclusion, fulfillment
// type, zone choice and location choice. A non-empty Reason in the returned
// result means the request is ineligible.
func resolve(req Request, catalog *entity.Catalog) (*entity.Zone, *entity.Location, Result, error) {
	serving, reason := ServingZones(req, catalog)
	if len(serving) == 0 {
		return nil, nil, ineligible(reason), nil
	}
	zone := serving[0]

	location := pickLocation(zone, req, catalog)
	if location == nil {
		return nil, nil, Result{}, domainerrors.NewConfigurationError("zone.locationIds", "zone "+zone.ID.String()+" has no known location")
	}

	return zone, location, Result{Eligible: true, Zone: zone, Location: location}, nil
}

// compareZones orders the winning zone first: priority desc, then most
// recently created, then id desc.
func compareZones(a, b *entity.Zone) int {
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return bytes.Compare(b.ID[:], a.ID[:])
}

func pickLocation(zone *entity.Zone, req Request, catalog *entity.Catalog) *entity.Location {
	var candidates []*entity.Location
	for _, id := range zone.LocationIDs {
		if l := catalog.Location(id); l != nil {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	slices.SortFunc(candidates, func(a, b *entity.Location) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	if req.LocationID != uuid.Nil {
		for _, l := range candidates {
			if l.ID == req.LocationID {
				return l
			}
		}
	}

	if req.FulfillmentType != entity.FulfillmentDelivery || req.Coordinate == nil {
		return candidates[0]
	}

	var (
		nearest *entity.Location
		best    float64
	)
	for _, l := range candidates {
		if l.Coordinate == nil {
			continue
		}
		d := geo.DistanceKm(*req.Coordinate, *l.Coordinate)
		// candidates are in id order, so strict less keeps the lower id on ties
		if nearest == nil || d < best {
			nearest, best = l, d
		}
	}
	if nearest == nil {
		return candidates[0]
	}

	return nearest
}

func covers(z *entity.Zone, req Request, catalog *entity.Catalog) bool {
	c := z.Coverage
	postcode := entity.NormalizePostcode(req.Postcode)

	switch c.Kind {
	case entity.CoveragePostcodeSet:
		return slices.ContainsFunc(c.Postcodes, func(p string) bool {
			return entity.NormalizePostcode(p) == postcode
		})
	case entity.CoveragePostcodeRange:
		return inRange(postcode, entity.NormalizePostcode(c.RangeFrom), entity.NormalizePostcode(c.RangeTo))
	case entity.CoverageRadius:
		if req.Coordinate == nil {
			return false
		}
		center := catalog.Location(c.RadiusLocationID)
		if center == nil || center.Coordinate == nil {
			return false
		}

		return geo.Within(*center.Coordinate, *req.Coordinate, c.RadiusKm)
	default:
		return false
	}
}

// inRange compares numerically when the postcode and both bounds are
// integers, lexicographically otherwise. Both bounds are inclusive.
func inRange(postcode, from, to string) bool {
	p, errP := strconv.ParseInt(postcode, 10, 64)
	f, errF := strconv.ParseInt(from, 10, 64)
	t, errT := strconv.ParseInt(to, 10, 64)
	if errP == nil && errF == nil && errT == nil {
		return f <= p && p <= t
	}

	return from <= postcode && postcode <= to
}

// checkCalendar applies blackout, cutoff and lead time, in that order, in
// the location's timezone.
func checkCalendar(req Request, zone *entity.Zone, location *entity.Location, catalog *entity.Catalog, now time.Time) Result {
	rule := entity.EffectiveRule(
		catalog.RuleFor(entity.RuleScopeZone, zone.ID),
		catalog.RuleFor(entity.RuleScopeLocation, location.ID),
	)
	tz := location.TimeLocation()
	localNow := now.In(tz)
	date := entity.DateOf(req.Date)

	if rule.IsBlackout(date) {
		return ineligible(ReasonBlackoutDate)
	}

	if PastCutoff(rule, date, localNow) {
		return ineligible(ReasonPastCutoff)
	}

	// Without a slot start the date counts as reachable if any part of it
	// lies beyond the lead time, so the reference is the next local midnight.
	var reference time.Time
	if req.EarliestStart != nil {
		reference = req.EarliestStart.On(date, tz)
	} else {
		reference = time.Date(date.Year(), date.Month(), date.Day()+1, 0, 0, 0, 0, tz)
	}
	if reference.Sub(now) < rule.LeadTime {
		return ineligible(ReasonBeforeLeadTime)
	}

	return Result{Eligible: true, Zone: zone, Location: location, Rule: rule}
}

// PastCutoff reports whether date is today in localNow's timezone and the
// rule's same-day cutoff has passed.
func PastCutoff(rule *entity.Rule, date, localNow time.Time) bool {
	if rule == nil || rule.CutoffTime == nil {
		return false
	}
	if !entity.DateOf(localNow).Equal(entity.DateOf(date)) {
		return false
	}

	return entity.NewTimeOfDay(localNow.Hour(), localNow.Minute()) >= *rule.CutoffTime
}
