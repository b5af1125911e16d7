package handler

import (
	"net/http"
	"testing"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/errors"
	"slotwise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleBooking(status entity.BookingStatus, version int64) *entity.Booking {
	at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	return &entity.Booking{
		ID:              uuid.New(),
		ShopID:          testShopID,
		OrderID:         "order-1",
		SlotID:          uuid.New(),
		LocationID:      uuid.New(),
		FulfillmentType: entity.FulfillmentDelivery,
		DeliveryAddress: &entity.DeliveryAddress{Postcode: "10001"},
		Status:          status,
		Version:         version,
		CreatedAt:       at,
		UpdatedAt:       at,
	}
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	slotID := uuid.New()
	booking := sampleBooking(entity.BookingActive, 1)
	api.booking.EXPECT().
		CreateBooking(mock.Anything, &usecase.CreateBookingInput{
			ShopID:          testShopID,
			OrderID:         "order-1",
			SlotID:          slotID,
			FulfillmentType: entity.FulfillmentDelivery,
			CustomerID:      "cust-7",
			Postcode:        "10001",
			DeliveryAddress: &entity.DeliveryAddress{
				Line:       "5 Elm St",
				Postcode:   "10001",
				Coordinate: &entity.Coordinate{Lat: 40.71, Lng: -74.01},
			},
		}).
		Return(booking, nil)

	rec := api.do(http.MethodPost, "/api/v1/bookings", `{
		"orderId": "order-1",
		"slotId": "`+slotID.String()+`",
		"fulfillmentType": "delivery",
		"customerId": "cust-7",
		"postcode": "10001",
		"deliveryAddress": {"line": "5 Elm St", "postcode": "10001", "latitude": 40.71, "longitude": -74.01}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decodeData[BookingView](t, rec)
	assert.Equal(t, booking.ID, out.ID)
	assert.Equal(t, entity.BookingActive, out.Status)
	assert.Equal(t, int64(1), out.Version)
}

func TestBookingHandler_CreateBooking_Errors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "slot full",
			err:          domainerrors.NewCapacityExceededError(uuid.New()),
			expectedCode: http.StatusConflict,
			expectedBody: "CAPACITY_EXCEEDED",
		},
		{
			name:         "order already booked",
			err:          domainerrors.ErrBookingAlreadyExists,
			expectedCode: http.StatusConflict,
			expectedBody: "BOOKING_ALREADY_EXISTS",
		},
		{
			name:         "past cutoff",
			err:          domainerrors.NewIneligibleError("past_cutoff"),
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: "INELIGIBLE",
		},
		{
			name:         "unknown slot",
			err:          domainerrors.ErrSlotNotFound.WrapMessage("load slot"),
			expectedCode: http.StatusNotFound,
			expectedBody: "SLOT_NOT_FOUND",
		},
		{
			name:         "unexpected failure",
			err:          errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.authorize()
			api.booking.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := api.do(http.MethodPost, "/api/v1/bookings",
				`{"orderId": "order-1", "slotId": "`+uuid.NewString()+`", "fulfillmentType": "pickup"}`)

			require.Equal(t, tt.expectedCode, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.expectedBody, env.Code)
			if tt.expectedCode >= http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "connection reset")
			}
		})
	}
}

func TestBookingHandler_CreateBooking_Malformed(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	rec := api.do(http.MethodPost, "/api/v1/bookings", `{"orderId": 42`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Code)
}

func TestBookingHandler_RescheduleBooking(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	slotID := uuid.New()
	moved := sampleBooking(entity.BookingActive, 3)
	moved.SlotID = slotID
	api.booking.EXPECT().
		RescheduleBooking(mock.Anything, &usecase.RescheduleBookingInput{
			ShopID:  testShopID,
			OrderID: "order-1",
			SlotID:  slotID,
			Version: 2,
		}).
		Return(moved, nil)

	rec := api.do(http.MethodPut, "/api/v1/bookings/order-1", `{"slotId": "`+slotID.String()+`", "version": 2}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decodeData[BookingView](t, rec)
	assert.Equal(t, slotID, out.SlotID)
	assert.Equal(t, int64(3), out.Version)
}

func TestBookingHandler_RescheduleBooking_VersionConflict(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	api.booking.EXPECT().RescheduleBooking(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewConcurrencyConflictError("booking", 1, 2))

	rec := api.do(http.MethodPut, "/api/v1/bookings/order-1", `{"slotId": "`+uuid.NewString()+`", "version": 1}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONCURRENCY_CONFLICT", decode(t, rec).Code)
}

func TestBookingHandler_RescheduleBooking_RequiresVersion(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	rec := api.do(http.MethodPut, "/api/v1/bookings/order-1", `{"slotId": "`+uuid.NewString()+`"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []domainerrors.FieldIssue{{Field: "version", Issue: "required"}}, decode(t, rec).Details)
}

func TestBookingHandler_CancelBooking(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	canceled := sampleBooking(entity.BookingCanceled, 2)
	api.booking.EXPECT().CancelBooking(mock.Anything, testShopID, "order-1").Return(canceled, nil)

	rec := api.do(http.MethodDelete, "/api/v1/bookings/order-1", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decodeData[BookingView](t, rec)
	assert.Equal(t, entity.BookingCanceled, out.Status)
	assert.Equal(t, int64(2), out.Version)
}

func TestBookingHandler_GetBooking_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	api.booking.EXPECT().GetBooking(mock.Anything, testShopID, "missing").
		Return(nil, domainerrors.ErrBookingNotFound)

	rec := api.do(http.MethodGet, "/api/v1/bookings/missing", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BOOKING_NOT_FOUND", decode(t, rec).Code)
}

func TestBookingHandler_Authentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		api := newTestAPI(t)

		req := newRequestWithoutAuth(http.MethodGet, "/api/v1/bookings/order-1")
		rec := serve(api, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		api := newTestAPI(t)
		api.tokens.EXPECT().ValidateToken(testToken).Return(nil, errors.New("token is expired"))

		rec := api.do(http.MethodGet, "/api/v1/bookings/order-1", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_TOKEN", env.Code)
		assert.Empty(t, env.Details)
	})
}
