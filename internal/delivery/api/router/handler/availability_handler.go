package handler

import (
	"log/slog"
	"net/http"

	"slotwise/internal/delivery/api/response"
	"slotwise/internal/domain/entity"
	"slotwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AvailabilityHandlerParams holds dependencies for AvailabilityHandler, injected by Fx.
type AvailabilityHandlerParams struct {
	fx.In

	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// AvailabilityHandler answers which dates can be served
type AvailabilityHandler struct {
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewAvailabilityHandler is the constructor for AvailabilityHandler
func NewAvailabilityHandler(params AvailabilityHandlerParams) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// AvailabilityRequest holds the query parameters of GET /availability
type AvailabilityRequest struct {
	Postcode        string   `query:"postcode" json:"postcode" validate:"required"`
	FulfillmentType string   `query:"fulfillmentType" json:"fulfillmentType" validate:"required,oneof=delivery pickup"`
	From            string   `query:"from" json:"from"`
	Days            int      `query:"days" json:"days" validate:"omitempty,min=1,max=90"`
	Latitude        *float64 `query:"latitude" json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `query:"longitude" json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// DateView is the verdict for one date
type DateView struct {
	Date       string     `json:"date"`
	Eligible   bool       `json:"eligible"`
	Reason     string     `json:"reason,omitempty"`
	LocationID *uuid.UUID `json:"locationId,omitempty"`
}

// AvailabilityResponse lists one verdict per requested date
type AvailabilityResponse struct {
	Dates []DateView `json:"dates"`
}

// Availability handles GET /availability
func (h *AvailabilityHandler) Availability(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	from, err := optionalDate("from", req.From)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input := &usecase.AvailabilityInput{
		ShopID:          shopID,
		Postcode:        req.Postcode,
		Coordinate:      coordinate(req.Latitude, req.Longitude),
		FulfillmentType: entity.FulfillmentType(req.FulfillmentType),
		Days:            req.Days,
	}
	if from != nil {
		input.From = *from
	}

	dates, err := h.availabilityUC.Availability(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := AvailabilityResponse{Dates: make([]DateView, 0, len(dates))}
	for _, d := range dates {
		view := DateView{
			Date:     d.Date.Format(entity.DateLayout),
			Eligible: d.Eligible,
			Reason:   d.Reason,
		}
		if d.LocationID != uuid.Nil {
			view.LocationID = &d.LocationID
		}
		resp.Dates = append(resp.Dates, view)
	}

	return response.Success(c, http.StatusOK, resp)
}
