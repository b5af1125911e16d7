package handler

import (
	"net/http"
	"testing"
	"time"

	"slotwise/internal/domain/entity"
	"slotwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityHandler_Availability(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	locationID := uuid.New()
	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	api.availability.EXPECT().
		Availability(mock.Anything, &usecase.AvailabilityInput{
			ShopID:          testShopID,
			Postcode:        "10001",
			FulfillmentType: entity.FulfillmentDelivery,
			From:            from,
			Days:            2,
		}).
		Return([]usecase.DateAvailability{
			{Date: from, Eligible: false, Reason: "past_cutoff"},
			{Date: from.AddDate(0, 0, 1), Eligible: true, LocationID: locationID},
		}, nil)

	rec := api.do(http.MethodGet, "/api/v1/availability?postcode=10001&fulfillmentType=delivery&from=2025-03-14&days=2", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decodeData[AvailabilityResponse](t, rec)
	require.Len(t, out.Dates, 2)
	assert.Equal(t, DateView{Date: "2025-03-14", Reason: "past_cutoff"}, out.Dates[0])
	assert.Equal(t, "2025-03-15", out.Dates[1].Date)
	assert.True(t, out.Dates[1].Eligible)
	require.NotNil(t, out.Dates[1].LocationID)
	assert.Equal(t, locationID, *out.Dates[1].LocationID)
}

func TestAvailabilityHandler_Availability_Validation(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	rec := api.do(http.MethodGet, "/api/v1/availability?fulfillmentType=pickup&days=500", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	require.Len(t, env.Details, 2)
	assert.Equal(t, "postcode", env.Details[0].Field)
	assert.Equal(t, "days", env.Details[1].Field)
}

func TestSlotHandler_Sync(t *testing.T) {
	t.Run("requires scope", func(t *testing.T) {
		api := newTestAPI(t)
		api.authorize()

		rec := api.do(http.MethodPost, "/api/v1/slots/sync", "")

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Code)
	})

	t.Run("regenerates from the given date", func(t *testing.T) {
		api := newTestAPI(t)
		api.authorize("slots:sync")

		from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		api.slot.EXPECT().Sync(mock.Anything, testShopID, from).
			Return(&usecase.SlotSyncResult{Generated: 42, Removed: 3}, nil)

		rec := api.do(http.MethodPost, "/api/v1/slots/sync", `{"from": "2025-03-14"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, SyncSlotsResponse{Generated: 42, Removed: 3}, decodeData[SyncSlotsResponse](t, rec))
	})

	t.Run("defaults to today", func(t *testing.T) {
		api := newTestAPI(t)
		api.authorize("slots:sync")

		api.slot.EXPECT().Sync(mock.Anything, testShopID, time.Time{}).
			Return(&usecase.SlotSyncResult{}, nil)

		rec := api.do(http.MethodPost, "/api/v1/slots/sync", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}
