package handler

import (
	"log/slog"
	"net/http"
	"time"

	"slotwise/internal/delivery/api/response"
	"slotwise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SlotHandlerParams holds dependencies for SlotHandler, injected by Fx.
type SlotHandlerParams struct {
	fx.In

	SlotUC usecase.SlotUsecase
	Logger *slog.Logger
}

// SlotHandler regenerates stored slots
type SlotHandler struct {
	slotUC usecase.SlotUsecase
	logger *slog.Logger
}

// NewSlotHandler is the constructor for SlotHandler
func NewSlotHandler(params SlotHandlerParams) *SlotHandler {
	return &SlotHandler{
		slotUC: params.SlotUC,
		logger: params.Logger,
	}
}

// SyncSlotsRequest represents the request body for slot regeneration
type SyncSlotsRequest struct {
	From string `json:"from"`
}

// SyncSlotsResponse summarizes a regeneration run
type SyncSlotsResponse struct {
	Generated int   `json:"generated"`
	Removed   int64 `json:"removed"`
}

// Sync handles POST /slots/sync
func (h *SlotHandler) Sync(c echo.Context) error {
	shopID, err := shopOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SyncSlotsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	var from time.Time
	if d, err := optionalDate("from", req.From); err != nil {
		return response.HandleAppError(c, err)
	} else if d != nil {
		from = *d
	}

	result, err := h.slotUC.Sync(c.Request().Context(), shopID, from)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SyncSlotsResponse{
		Generated: result.Generated,
		Removed:   result.Removed,
	})
}
