package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CoverageKind selects how a zone decides whether it covers an address.
type CoverageKind string

const (
	CoveragePostcodeRange CoverageKind = "postcode_range"
	CoveragePostcodeSet   CoverageKind = "postcode_set"
	CoverageRadius        CoverageKind = "radius"
)

// Coverage describes the addresses a zone reaches.
type Coverage struct {
	Kind CoverageKind

	// postcode_range, inclusive on both ends
	RangeFrom string
	RangeTo   string

	// postcode_set
	Postcodes []string

	// radius
	RadiusLocationID uuid.UUID
	RadiusKm         float64

	// ExcludedPostcodes always wins over inclusion.
	ExcludedPostcodes []string
}

// Excludes reports whether postcode is on the exclusion list.
func (c Coverage) Excludes(postcode string) bool {
	postcode = NormalizePostcode(postcode)

	return slices.ContainsFunc(c.ExcludedPostcodes, func(p string) bool {
		return NormalizePostcode(p) == postcode
	})
}

// Zone maps a coverage area to the locations that serve it.
type Zone struct {
	ID               uuid.UUID
	ShopID           string
	Name             string
	Priority         int // Higher wins when several zones match.
	FulfillmentTypes []FulfillmentType
	LocationIDs      []uuid.UUID
	Coverage         Coverage
	CreatedAt        time.Time
}

// Serves reports whether the zone offers the fulfillment type.
func (z *Zone) Serves(ft FulfillmentType) bool {
	return slices.Contains(z.FulfillmentTypes, ft)
}

// NormalizePostcode upper-cases and strips whitespace so "sw1a 1aa" and
// "SW1A1AA" compare equal.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.Join(strings.Fields(postcode), ""))
}
