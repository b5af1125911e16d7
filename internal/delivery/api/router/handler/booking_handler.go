package handler

import (
	"log/slog"
	"net/http"
	"time"

	"slotwise/internal/delivery/api/response"
	"slotwise/internal/domain/entity"
	"slotwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for booking-related handlers
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// AddressRequest is a delivery address as sent by the storefront
type AddressRequest struct {
	Line      string   `json:"line"`
	Postcode  string   `json:"postcode" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// CreateBookingRequest represents the request body for booking a slot
type CreateBookingRequest struct {
	OrderID         string          `json:"orderId" validate:"required,max=255"`
	SlotID          uuid.UUID       `json:"slotId" validate:"required"`
	FulfillmentType string          `json:"fulfillmentType" validate:"required,oneof=delivery pickup"`
	CustomerID      string          `json:"customerId"`
	Postcode        string          `json:"postcode"`
	DeliveryAddress *AddressRequest `json:"deliveryAddress"`
}

// RescheduleBookingRequest represents the request body for moving a booking
type RescheduleBookingRequest struct {
	SlotID  uuid.UUID `json:"slotId" validate:"required"`
	Version int64     `json:"version" validate:"required,min=1"`
}

// BookingView is a booking on the wire
type BookingView struct {
	ID              uuid.UUID               `json:"id"`
	OrderID         string                  `json:"orderId"`
	SlotID          uuid.UUID               `json:"slotId"`
	LocationID      uuid.UUID               `json:"locationId"`
	FulfillmentType entity.FulfillmentType  `json:"fulfillmentType"`
	CustomerID      string                  `json:"customerId,omitempty"`
	DeliveryAddress *entity.DeliveryAddress `json:"deliveryAddress,omitempty"`
	Status          entity.BookingStatus    `json:"status"`
	Version         int64                   `json:"version"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func toBookingView(b *entity.Booking) BookingView {
	return BookingView{
		ID:              b.ID,
		OrderID:         b.OrderID,
		SlotID:          b.SlotID,
		LocationID:      b.LocationID,
		FulfillmentType: b.FulfillmentType,
		CustomerID:      b.CustomerID,
		DeliveryAddress: b.DeliveryAddress,
		Status:          b.Status,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateBookingInput{
		ShopID:          shopID,
		OrderID:         req.OrderID,
		SlotID:          req.SlotID,
		FulfillmentType: entity.FulfillmentType(req.FulfillmentType),
		CustomerID:      req.CustomerID,
		Postcode:        req.Postcode,
	}
	if a := req.DeliveryAddress; a != nil {
		input.DeliveryAddress = &entity.DeliveryAddress{
			Line:       a.Line,
			Postcode:   a.Postcode,
			Coordinate: coordinate(a.Latitude, a.Longitude),
		}
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookingView(booking))
}

// GetBooking handles GET /bookings/:orderId
func (h *BookingHandler) GetBooking(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), shopID, c.Param("orderId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingView(booking))
}

// RescheduleBooking handles PUT /bookings/:orderId
func (h *BookingHandler) RescheduleBooking(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RescheduleBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.RescheduleBooking(c.Request().Context(), &usecase.RescheduleBookingInput{
		ShopID:  shopID,
		OrderID: c.Param("orderId"),
		SlotID:  req.SlotID,
		Version: req.Version,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingView(booking))
}

// CancelBooking handles DELETE /bookings/:orderId
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), shopID, c.Param("orderId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookingView(booking))
}
