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

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

// RecommendationHandler serves slot and location recommendations
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler
func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUC: params.RecommendationUC,
		logger:           params.Logger,
	}
}

// SlotRecommendationRequest represents the request body for slot recommendations
type SlotRecommendationRequest struct {
	Postcode        string   `json:"postcode" validate:"required"`
	CartItems       []string `json:"cartItems"`
	CustomerID      string   `json:"customerId"`
	SessionID       string   `json:"sessionId"`
	FulfillmentType string   `json:"fulfillmentType" validate:"required,oneof=delivery pickup"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Date            string   `json:"date"`
}

// SlotView is one recommended slot on the wire
type SlotView struct {
	SlotID              uuid.UUID `json:"slotId"`
	Date                string    `json:"date"`
	TimeStart           string    `json:"timeStart"`
	TimeEnd             string    `json:"timeEnd"`
	RecommendationScore float64   `json:"recommendationScore"`
	Recommended         bool      `json:"recommended"`
	Reason              string    `json:"reason,omitempty"`
	CapacityRemaining   int       `json:"capacityRemaining"`
	LocationID          uuid.UUID `json:"locationId"`
	DistanceKm          *float64  `json:"distanceKm,omitempty"`
}

// SlotRecommendationResponse lists ranked slots
type SlotRecommendationResponse struct {
	Slots    []SlotView `json:"slots"`
	Fallback bool       `json:"fallback"`
}

// LocationRecommendationRequest represents the request body for location recommendations
type LocationRecommendationRequest struct {
	Postcode        string   `json:"postcode" validate:"required"`
	CustomerID      string   `json:"customerId"`
	SessionID       string   `json:"sessionId"`
	FulfillmentType string   `json:"fulfillmentType" validate:"omitempty,oneof=delivery pickup"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// LocationView is one recommended location on the wire
type LocationView struct {
	LocationID          uuid.UUID `json:"locationId"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	DistanceKm          *float64  `json:"distanceKm"`
	RecommendationScore float64   `json:"recommendationScore"`
	Recommended         bool      `json:"recommended"`
	Reason              string    `json:"reason,omitempty"`
}

// LocationRecommendationResponse lists ranked locations
type LocationRecommendationResponse struct {
	Locations []LocationView `json:"locations"`
}

// SelectionRequest records which candidate the customer picked
type SelectionRequest struct {
	SessionID       string               `json:"sessionId" validate:"required"`
	CustomerID      string               `json:"customerId"`
	Kind            string               `json:"kind" validate:"required,oneof=slots locations"`
	SelectedID      uuid.UUID            `json:"selectedId" validate:"required"`
	CandidatesShown []ShownCandidateView `json:"candidatesShown" validate:"dive"`
}

// ShownCandidateView is one candidate as it was displayed
type ShownCandidateView struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Score       float64   `json:"score"`
	Recommended bool      `json:"recommended"`
}

// SelectionResponse echoes the stored recommendation log
type SelectionResponse struct {
	ID             uuid.UUID `json:"id"`
	SelectedID     uuid.UUID `json:"selectedId"`
	WasRecommended bool      `json:"wasRecommended"`
	Timestamp      time.Time `json:"timestamp"`
}

// RecommendSlots handles POST /recommendations/slots
func (h *RecommendationHandler) RecommendSlots(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SlotRecommendationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	date, err := optionalDate("date", req.Date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.recommendationUC.RecommendSlots(c.Request().Context(), &usecase.SlotRecommendationInput{
		ShopID:          shopID,
		SessionID:       req.SessionID,
		CustomerID:      req.CustomerID,
		Postcode:        req.Postcode,
		Coordinate:      coordinate(req.Latitude, req.Longitude),
		FulfillmentType: entity.FulfillmentType(req.FulfillmentType),
		CartItems:       req.CartItems,
		Date:            date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := SlotRecommendationResponse{
		Slots:    make([]SlotView, 0, len(out.Slots)),
		Fallback: out.Fallback,
	}
	for _, rs := range out.Slots {
		resp.Slots = append(resp.Slots, SlotView{
			SlotID:              rs.Slot.ID,
			Date:                rs.Slot.Date.Format(entity.DateLayout),
			TimeStart:           rs.Slot.Start.String(),
			TimeEnd:             rs.Slot.End.String(),
			RecommendationScore: rs.Score,
			Recommended:         rs.Recommended,
			Reason:              rs.Reason,
			CapacityRemaining:   rs.CapacityRemaining,
			LocationID:          rs.Slot.LocationID,
			DistanceKm:          rs.DistanceKm,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// RecommendLocations handles POST /recommendations/locations
func (h *RecommendationHandler) RecommendLocations(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req LocationRecommendationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.recommendationUC.RecommendLocations(c.Request().Context(), &usecase.LocationRecommendationInput{
		ShopID:          shopID,
		SessionID:       req.SessionID,
		CustomerID:      req.CustomerID,
		Postcode:        req.Postcode,
		Coordinate:      coordinate(req.Latitude, req.Longitude),
		FulfillmentType: entity.FulfillmentType(req.FulfillmentType),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := LocationRecommendationResponse{Locations: make([]LocationView, 0, len(out.Locations))}
	for _, rl := range out.Locations {
		resp.Locations = append(resp.Locations, LocationView{
			LocationID:          rl.Location.ID,
			Name:                rl.Location.Name,
			Address:             rl.Location.Address,
			DistanceKm:          rl.DistanceKm,
			RecommendationScore: rl.Score,
			Recommended:         rl.Recommended,
			Reason:              rl.Reason,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// RecordSelection handles POST /recommendations/selections
func (h *RecommendationHandler) RecordSelection(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SelectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	shown := make([]entity.ShownCandidate, 0, len(req.CandidatesShown))
	for _, sc := range req.CandidatesShown {
		shown = append(shown, entity.ShownCandidate{ID: sc.ID, Score: sc.Score, Recommended: sc.Recommended})
	}

	log, err := h.recommendationUC.RecordSelection(c.Request().Context(), &usecase.SelectionInput{
		ShopID:          shopID,
		SessionID:       req.SessionID,
		CustomerID:      req.CustomerID,
		Kind:            entity.RecommendationKind(req.Kind),
		SelectedID:      req.SelectedID,
		CandidatesShown: shown,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SelectionResponse{
		ID:             log.ID,
		SelectedID:     log.SelectedID,
		WasRecommended: log.WasRecommended,
		Timestamp:      log.Timestamp,
	})
}
