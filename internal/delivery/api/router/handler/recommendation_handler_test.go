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

func TestRecommendationHandler_RecommendSlots(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	slotID := uuid.New()
	locationID := uuid.New()
	distance := 2.4
	api.recommendation.EXPECT().
		RecommendSlots(mock.Anything, mock.MatchedBy(func(in *usecase.SlotRecommendationInput) bool {
			return in.ShopID == testShopID &&
				in.Postcode == "10001" &&
				in.FulfillmentType == entity.FulfillmentDelivery &&
				in.Coordinate != nil && in.Coordinate.Lat == 40.7 && in.Coordinate.Lng == -74.0 &&
				in.Date != nil && in.Date.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)) &&
				assert.ObjectsAreEqual([]string{"sku-1"}, in.CartItems)
		})).
		Return(&usecase.SlotRecommendationOutput{
			Slots: []usecase.RecommendedSlot{{
				Slot: &entity.Slot{
					ID:         slotID,
					LocationID: locationID,
					Date:       time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
					Start:      entity.NewTimeOfDay(9, 0),
					End:        entity.NewTimeOfDay(11, 0),
				},
				Score:             0.82,
				Recommended:       true,
				Reason:            "Closest to you",
				CapacityRemaining: 4,
				DistanceKm:        &distance,
			}},
		}, nil)

	rec := api.do(http.MethodPost, "/api/v1/recommendations/slots", `{
		"postcode": "10001",
		"cartItems": ["sku-1"],
		"fulfillmentType": "delivery",
		"latitude": 40.7,
		"longitude": -74.0,
		"date": "2025-03-14"
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decodeData[SlotRecommendationResponse](t, rec)
	require.Len(t, out.Slots, 1)
	assert.False(t, out.Fallback)
	assert.Equal(t, SlotView{
		SlotID:              slotID,
		Date:                "2025-03-14",
		TimeStart:           "09:00",
		TimeEnd:             "11:00",
		RecommendationScore: 0.82,
		Recommended:         true,
		Reason:              "Closest to you",
		CapacityRemaining:   4,
		LocationID:          locationID,
		DistanceKm:          &distance,
	}, out.Slots[0])
}

func TestRecommendationHandler_RecommendSlots_Validation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []domainerrors.FieldIssue
	}{
		{
			name:     "missing postcode and fulfillment type",
			body:     `{"cartItems": []}`,
			expected: []domainerrors.FieldIssue{{Field: "postcode", Issue: "required"}, {Field: "fulfillmentType", Issue: "required"}},
		},
		{
			name:     "unknown fulfillment type",
			body:     `{"postcode": "10001", "fulfillmentType": "drone"}`,
			expected: []domainerrors.FieldIssue{{Field: "fulfillmentType", Issue: "must be one of delivery, pickup"}},
		},
		{
			name:     "malformed date",
			body:     `{"postcode": "10001", "fulfillmentType": "pickup", "date": "14/03/2025"}`,
			expected: []domainerrors.FieldIssue{{Field: "date", Issue: "must be a date in 2006-01-02 format"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.authorize()

			rec := api.do(http.MethodPost, "/api/v1/recommendations/slots", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", env.Code)
			assert.Equal(t, tt.expected, env.Details)
			require.NotNil(t, env.Meta)
			assert.NotEmpty(t, env.Meta.RequestID)
		})
	}
}

func TestRecommendationHandler_RecommendSlots_Ineligible(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	api.recommendation.EXPECT().RecommendSlots(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.NewIneligibleError("no_matching_zone"), "recommend slots"))

	rec := api.do(http.MethodPost, "/api/v1/recommendations/slots", `{"postcode": "99999", "fulfillmentType": "delivery"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INELIGIBLE", env.Code)
	assert.Equal(t, "no_matching_zone", env.Message)
}

func TestRecommendationHandler_RecommendLocations(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	l1 := &entity.Location{ID: uuid.New(), Name: "Downtown", Address: "1 Main St"}
	l2 := &entity.Location{ID: uuid.New(), Name: "Harbor", Address: "9 Pier Rd"}
	near, far := 1.2, 8.9
	api.recommendation.EXPECT().
		RecommendLocations(mock.Anything, &usecase.LocationRecommendationInput{
			ShopID:     testShopID,
			CustomerID: "cust-7",
			Postcode:   "10001",
		}).
		Return(&usecase.LocationRecommendationOutput{
			Locations: []usecase.RecommendedLocation{
				{Location: l1, DistanceKm: &near, Score: 0.9, Recommended: true, Reason: "Closest to you"},
				{Location: l2, DistanceKm: &far, Score: 0.4},
			},
		}, nil)

	rec := api.do(http.MethodPost, "/api/v1/recommendations/locations", `{"postcode": "10001", "customerId": "cust-7"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decodeData[LocationRecommendationResponse](t, rec)
	require.Len(t, out.Locations, 2)
	assert.Equal(t, l1.ID, out.Locations[0].LocationID)
	assert.Equal(t, "Downtown", out.Locations[0].Name)
	assert.True(t, out.Locations[0].Recommended)
	assert.Equal(t, l2.ID, out.Locations[1].LocationID)
	assert.False(t, out.Locations[1].Recommended)
	assert.Empty(t, out.Locations[1].Reason)
}

func TestRecommendationHandler_RecordSelection(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	selected := uuid.New()
	other := uuid.New()
	logID := uuid.New()
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	api.recommendation.EXPECT().
		RecordSelection(mock.Anything, &usecase.SelectionInput{
			ShopID:     testShopID,
			SessionID:  "sess-1",
			Kind:       entity.RecommendationKindSlots,
			SelectedID: selected,
			CandidatesShown: []entity.ShownCandidate{
				{ID: selected, Score: 0.9, Recommended: true},
				{ID: other, Score: 0.3},
			},
		}).
		Return(&entity.RecommendationLog{ID: logID, SelectedID: selected, WasRecommended: true, Timestamp: at}, nil)

	rec := api.do(http.MethodPost, "/api/v1/recommendations/selections", `{
		"sessionId": "sess-1",
		"kind": "slots",
		"selectedId": "`+selected.String()+`",
		"candidatesShown": [
			{"id": "`+selected.String()+`", "score": 0.9, "recommended": true},
			{"id": "`+other.String()+`", "score": 0.3}
		]
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decodeData[SelectionResponse](t, rec)
	assert.Equal(t, logID, out.ID)
	assert.True(t, out.WasRecommended)
	assert.True(t, at.Equal(out.Timestamp))
}

func TestRecommendationHandler_RecordSelection_RequiresSelectedID(t *testing.T) {
	api := newTestAPI(t)
	api.authorize()

	rec := api.do(http.MethodPost, "/api/v1/recommendations/selections", `{"sessionId": "sess-1", "kind": "slots"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []domainerrors.FieldIssue{{Field: "selectedId", Issue: "required"}}, decode(t, rec).Details)
}
