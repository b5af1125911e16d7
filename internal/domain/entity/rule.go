package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RuleScope tells whether a rule is attached to a zone or a location.
type RuleScope string

const (
	RuleScopeZone     RuleScope = "zone"
	RuleScopeLocation RuleScope = "location"
)

// Rule holds the merchant's booking constraints.
type Rule struct {
	ID                  uuid.UUID
	ShopID              string
	Scope               RuleScope
	ScopeID             uuid.UUID     // Zone or location id, depending on Scope.
	CutoffTime          *TimeOfDay    // Same-day orders close at this local time; nil means no cutoff.
	LeadTime            time.Duration // Minimum delay between ordering and the slot start.
	BlackoutDates       []time.Time   // Calendar dates with no service.
	DefaultSlotDuration time.Duration
	DefaultCapacity     int
}

// IsBlackout reports whether date is a blackout date.
func (r *Rule) IsBlackout(date time.Time) bool {
	if r == nil {
		return false
	}
	day := DateOf(date)

	return slices.ContainsFunc(r.BlackoutDates, func(b time.Time) bool {
		return DateOf(b).Equal(day)
	})
}

// EffectiveRule merges a zone rule with a location rule. Fields the location
// rule sets replace the zone's; blackout dates from both apply. Either
// argument may be nil.
func EffectiveRule(zoneRule, locationRule *Rule) *Rule {
	switch {
	case zoneRule == nil && locationRule == nil:
		return &Rule{}
	case locationRule == nil:
		merged := *zoneRule

		return &merged
	case zoneRule == nil:
		merged := *locationRule

		return &merged
	}

	merged := *zoneRule
	merged.ID = locationRule.ID
	merged.Scope = RuleScopeLocation
	merged.ScopeID = locationRule.ScopeID
	if locationRule.CutoffTime != nil {
		merged.CutoffTime = locationRule.CutoffTime
	}
	if locationRule.LeadTime > 0 {
		merged.LeadTime = locationRule.LeadTime
	}
	if locationRule.DefaultSlotDuration > 0 {
		merged.DefaultSlotDuration = locationRule.DefaultSlotDuration
	}
	if locationRule.DefaultCapacity > 0 {
		merged.DefaultCapacity = locationRule.DefaultCapacity
	}
	merged.BlackoutDates = append(slices.Clone(zoneRule.BlackoutDates), locationRule.BlackoutDates...)

	return &merged
}
