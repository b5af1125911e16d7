package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingActive   BookingStatus = "active"
	BookingCanceled BookingStatus = "canceled"
)

// DeliveryAddress is where a delivery booking is dropped off.
type DeliveryAddress struct {
	Line       string      `json:"line,omitempty"`
	Postcode   string      `json:"postcode"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// Booking binds an order to a slot.
type Booking struct {
	ID              uuid.UUID
	ShopID          string
	OrderID         string
	SlotID          uuid.UUID
	LocationID      uuid.UUID
	FulfillmentType FulfillmentType
	CustomerID      string
	DeliveryAddress *DeliveryAddress
	Status          BookingStatus
	Version         int64 // Incremented on every reschedule or cancel.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the booking still holds capacity.
func (b *Booking) IsActive() bool {
	return b.Status == BookingActive
}

// ScheduledDelivery is an already-booked delivery used for route efficiency.
type ScheduledDelivery struct {
	SlotID     uuid.UUID
	Date       time.Time
	Start      TimeOfDay
	Coordinate Coordinate
}
