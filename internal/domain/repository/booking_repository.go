package repository

import (
	"context"

	"slotwise/internal/domain/entity"
)

// BookingRepository persists bookings.
type BookingRepository interface {
	// CreateBooking stores a new booking. An order that already holds an
	// active booking yields ErrBookingAlreadyExists.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// FindBookingByOrder returns the latest booking of an order, or
	// ErrBookingNotFound.
	FindBookingByOrder(ctx context.Context, shopID, orderID string) (*entity.Booking, error)

	// UpdateBooking saves booking if the stored version still equals
	// expectedVersion, otherwise it returns a ConcurrencyConflictError.
	UpdateBooking(ctx context.Context, booking *entity.Booking, expectedVersion int64) error
}
