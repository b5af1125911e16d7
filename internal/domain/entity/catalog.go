package entity

import "github.com/google/uuid"

// Catalog is a read-only snapshot of a shop's zones, locations, rules and
// templates. Core evaluators receive it by value and never mutate it.
type Catalog struct {
	Zones     []*Zone
	Locations []*Location
	Rules     []*Rule
	Templates []*SlotTemplate
}

// Location looks up a location by id.
func (c *Catalog) Location(id uuid.UUID) *Location {
	for _, l := range c.Locations {
		if l.ID == id {
			return l
		}
	}

	return nil
}

// RuleFor returns the rule attached to the given scope, or nil.
func (c *Catalog) RuleFor(scope RuleScope, id uuid.UUID) *Rule {
	for _, r := range c.Rules {
		if r.Scope == scope && r.ScopeID == id {
			return r
		}
	}

	return nil
}

// TemplatesFor returns the templates of a location for one fulfillment type.
func (c *Catalog) TemplatesFor(locationID uuid.UUID, ft FulfillmentType) []*SlotTemplate {
	var out []*SlotTemplate
	for _, t := range c.Templates {
		if t.LocationID == locationID && t.FulfillmentType == ft {
			out = append(out, t)
		}
	}

	return out
}

// ZonesServing returns zones offering ft that include the location.
func (c *Catalog) ZonesServing(locationID uuid.UUID, ft FulfillmentType) []*Zone {
	var out []*Zone
	for _, z := range c.Zones {
		if !z.Serves(ft) {
			continue
		}
		for _, id := range z.LocationIDs {
			if id == locationID {
				out = append(out, z)

				break
			}
		}
	}

	return out
}
