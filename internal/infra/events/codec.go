// Package events encodes, signs and records outbound domain events.
package events

import (
	"encoding/json"
	"time"

	"slotwise/internal/domain/entity"
	"slotwise/internal/errors"

	"github.com/google/uuid"
)

// Meta is attached to every payload.
type Meta struct {
	EventType      entity.EventType `json:"eventType"`
	SchemaVersion  int              `json:"schemaVersion"`
	IdempotencyKey string           `json:"idempotencyKey"`
	OccurredAt     time.Time        `json:"occurredAt"`
	BookingVersion int64            `json:"bookingVersion,omitempty"`
	PreviousSlotID *uuid.UUID       `json:"previousSlotId,omitempty"`
}

// BookingPayload is the body of the order.* events.
type BookingPayload struct {
	ShopID          string                  `json:"shopId"`
	OrderID         string                  `json:"orderId"`
	FulfillmentType entity.FulfillmentType  `json:"fulfillmentType"`
	LocationID      uuid.UUID               `json:"locationId"`
	DeliveryAddress *entity.DeliveryAddress `json:"deliveryAddress,omitempty"`
	ScheduledAt     string                  `json:"scheduledAt"`
	SlotID          uuid.UUID               `json:"slotId"`
	Meta            Meta                    `json:"meta"`
}

// ViewedPayload is the body of recommendation.viewed.
type ViewedPayload struct {
	ShopID     string                    `json:"shopId"`
	SessionID  string                    `json:"sessionId"`
	CustomerID string                    `json:"customerId,omitempty"`
	Kind       entity.RecommendationKind `json:"kind"`
	Candidates []entity.ShownCandidate   `json:"candidates"`
	Meta       Meta                      `json:"meta"`
}

// SelectedPayload is the body of recommendation.selected.
type SelectedPayload struct {
	ShopID            string                    `json:"shopId"`
	SessionID         string                    `json:"sessionId"`
	CustomerID        string                    `json:"customerId,omitempty"`
	Kind              entity.RecommendationKind `json:"kind"`
	SelectedID        uuid.UUID                 `json:"selectedId"`
	WasRecommended    bool                      `json:"wasRecommended"`
	AlternativesShown []entity.ShownCandidate   `json:"alternativesShown"`
	Meta              Meta                      `json:"meta"`
}

// ErrUnknownEvent is returned for an event type the codec does not know.
var ErrUnknownEvent = errors.New("unknown event type")

// EncodeEvent renders the JSON body of an event.
func EncodeEvent(e entity.Event) ([]byte, error) {
	meta := Meta{
		EventType:      e.Type(),
		SchemaVersion:  entity.EventSchemaVersion,
		IdempotencyKey: entity.IdempotencyKey(e),
		OccurredAt:     e.OccurredAt().UTC(),
	}

	var payload any
	switch ev := e.(type) {
	case entity.OrderScheduled:
		payload = bookingPayload(ev.BookingEventData, meta)
	case entity.OrderScheduleUpdated:
		prev := ev.PreviousSlotID
		meta.PreviousSlotID = &prev
		payload = bookingPayload(ev.BookingEventData, meta)
	case entity.OrderScheduleCanceled:
		payload = bookingPayload(ev.BookingEventData, meta)
	case entity.RecommendationViewed:
		payload = ViewedPayload{
			ShopID:     ev.ShopID,
			SessionID:  ev.SessionID,
			CustomerID: ev.CustomerID,
			Kind:       ev.Kind,
			Candidates: nonNil(ev.Candidates),
			Meta:       meta,
		}
	case entity.RecommendationSelected:
		payload = SelectedPayload{
			ShopID:            ev.ShopID,
			SessionID:         ev.SessionID,
			CustomerID:        ev.CustomerID,
			Kind:              ev.Kind,
			SelectedID:        ev.SelectedID,
			WasRecommended:    ev.WasRecommended,
			AlternativesShown: nonNil(ev.AlternativesShown),
			Meta:              meta,
		}
	case *entity.OrderScheduled:
		return EncodeEvent(*ev)
	case *entity.OrderScheduleUpdated:
		return EncodeEvent(*ev)
	case *entity.OrderScheduleCanceled:
		return EncodeEvent(*ev)
	case *entity.RecommendationViewed:
		return EncodeEvent(*ev)
	case *entity.RecommendationSelected:
		return EncodeEvent(*ev)
	default:
		return nil, errors.Wrapf(ErrUnknownEvent, "%T", e)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", e.Type())
	}

	return body, nil
}

func bookingPayload(d entity.BookingEventData, meta Meta) BookingPayload {
	meta.BookingVersion = d.BookingVersion

	return BookingPayload{
		ShopID:          d.ShopID,
		OrderID:         d.OrderID,
		FulfillmentType: d.FulfillmentType,
		LocationID:      d.LocationID,
		DeliveryAddress: d.DeliveryAddress,
		ScheduledAt:     d.ScheduledAt.Format(time.RFC3339),
		SlotID:          d.SlotID,
		Meta:            meta,
	}
}

func nonNil(c []entity.ShownCandidate) []entity.ShownCandidate {
	if c == nil {
		return []entity.ShownCandidate{}
	}

	return c
}
