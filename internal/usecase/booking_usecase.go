package usecase

import (
	"context"

	"slotwise/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput books a slot for an order.
type CreateBookingInput struct {
	ShopID          string
	OrderID         string
	SlotID          uuid.UUID
	FulfillmentType entity.FulfillmentType
	CustomerID      string
	Postcode        string
	DeliveryAddress *entity.DeliveryAddress
}

// RescheduleBookingInput moves an order to another slot. Version must match
// the booking's current version.
type RescheduleBookingInput struct {
	ShopID  string
	OrderID string
	SlotID  uuid.UUID
	Version int64
}

// BookingUsecase defines the booking lifecycle use cases
type BookingUsecase interface {
	// CreateBooking reserves capacity and records order.scheduled.
	CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error)

	// RescheduleBooking transfers the reservation and records order.schedule_updated.
	RescheduleBooking(ctx context.Context, input *RescheduleBookingInput) (*entity.Booking, error)

	// CancelBooking releases the reservation and records order.schedule_canceled.
	CancelBooking(ctx context.Context, shopID, orderID string) (*entity.Booking, error)

	// GetBooking returns the current booking of an order.
	GetBooking(ctx context.Context, shopID, orderID string) (*entity.Booking, error)
}
