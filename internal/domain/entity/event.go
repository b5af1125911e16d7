package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventSchemaVersion is bumped whenever an event payload changes shape.
const EventSchemaVersion = 1

// EventType names an outbound event.
type EventType string

const (
	EventOrderScheduled         EventType = "order.scheduled"
	EventOrderScheduleUpdated   EventType = "order.schedule_updated"
	EventOrderScheduleCanceled  EventType = "order.schedule_canceled"
	EventRecommendationViewed   EventType = "recommendation.viewed"
	EventRecommendationSelected EventType = "recommendation.selected"
)

// Event is the closed set of outbound events. Only types in this package
// implement it.
type Event interface {
	Type() EventType
	Shop() string
	// Subject is the order id for booking events and the session id for
	// recommendation events.
	Subject() string
	// SlotRef is the slot component of the idempotency key.
	SlotRef() string
	OccurredAt() time.Time

	isEvent()
}

// BookingEventData is shared by the three order events.
type BookingEventData struct {
	ShopID          string
	OrderID         string
	SlotID          uuid.UUID
	LocationID      uuid.UUID
	FulfillmentType FulfillmentType
	DeliveryAddress *DeliveryAddress
	ScheduledAt     time.Time // Slot start in the location's timezone.
	BookingVersion  int64
	At              time.Time
}

func (d BookingEventData) Shop() string          { return d.ShopID }
func (d BookingEventData) Subject() string       { return d.OrderID }
func (d BookingEventData) SlotRef() string       { return d.SlotID.String() }
func (d BookingEventData) OccurredAt() time.Time { return d.At }

// OrderScheduled is emitted after a booking reserves capacity.
type OrderScheduled struct {
	BookingEventData
}

// OrderScheduleUpdated is emitted after a booking moves to another slot.
type OrderScheduleUpdated struct {
	BookingEventData
	PreviousSlotID uuid.UUID
}

// OrderScheduleCanceled is emitted after a booking releases its slot.
type OrderScheduleCanceled struct {
	BookingEventData
}

func (OrderScheduled) Type() EventType        { return EventOrderScheduled }
func (OrderScheduleUpdated) Type() EventType  { return EventOrderScheduleUpdated }
func (OrderScheduleCanceled) Type() EventType { return EventOrderScheduleCanceled }

func (OrderScheduled) isEvent()        {}
func (OrderScheduleUpdated) isEvent()  {}
func (OrderScheduleCanceled) isEvent() {}

// RecommendationKind tells slot lists from location lists.
type RecommendationKind string

const (
	RecommendationKindSlots     RecommendationKind = "slots"
	RecommendationKindLocations RecommendationKind = "locations"
)

// RecommendationViewed records that a ranked list was shown.
type RecommendationViewed struct {
	ShopID     string
	SessionID  string
	CustomerID string
	Kind       RecommendationKind
	Candidates []ShownCandidate
	At         time.Time
}

func (e RecommendationViewed) Type() EventType       { return EventRecommendationViewed }
func (e RecommendationViewed) Shop() string          { return e.ShopID }
func (e RecommendationViewed) Subject() string       { return e.SessionID }
func (e RecommendationViewed) SlotRef() string       { return string(e.Kind) }
func (e RecommendationViewed) OccurredAt() time.Time { return e.At }
func (RecommendationViewed) isEvent()                {}

// RecommendationSelected records which candidate the customer picked.
type RecommendationSelected struct {
	ShopID            string
	SessionID         string
	CustomerID        string
	Kind              RecommendationKind
	SelectedID        uuid.UUID
	WasRecommended    bool
	AlternativesShown []ShownCandidate // The list the selection was made from.
	At                time.Time
}

func (e RecommendationSelected) Type() EventType       { return EventRecommendationSelected }
func (e RecommendationSelected) Shop() string          { return e.ShopID }
func (e RecommendationSelected) Subject() string       { return e.SessionID }
func (e RecommendationSelected) SlotRef() string       { return e.SelectedID.String() }
func (e RecommendationSelected) OccurredAt() time.Time { return e.At }
func (RecommendationSelected) isEvent()                {}

// IdempotencyKey is hex(sha256("type|subject|slot|schemaVersion")). Retried
// deliveries of the same event always carry the same key. The key repeats
// when the same change happens again later, so it only deduplicates against
// events that are still undelivered.
func IdempotencyKey(e Event) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s|%d", e.Type(), e.Subject(), e.SlotRef(), EventSchemaVersion))

	return hex.EncodeToString(sum[:])
}
