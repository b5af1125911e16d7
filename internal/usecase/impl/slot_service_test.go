package impl

import (
	"testing"
	"time"

	"slotwise/internal/domain/entity"
	mockRepo "slotwise/internal/mocks/repository"
	mockSvc "slotwise/internal/mocks/service"
	mockUsecase "slotwise/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSlotService_Sync(t *testing.T) {
	fixture := newCatalogFixture()
	fixture.catalog.Templates = []*entity.SlotTemplate{{
		ID:              uuid.New(),
		ShopID:          testShopID,
		LocationID:      fixture.location.ID,
		FulfillmentType: entity.FulfillmentDelivery,
		Weekday:         time.Tuesday,
		Start:           entity.NewTimeOfDay(10, 0),
		End:             entity.NewTimeOfDay(14, 0),
		Duration:        2 * time.Hour,
		DefaultCapacity: 4,
	}}

	today := entity.DateOf(recommendationNow)
	wednesday := today.AddDate(0, 0, 2)
	kept := fixture.slot(entity.FulfillmentDelivery, today.AddDate(0, 0, 1), 10, 4, 1)
	staleFree := fixture.slot(entity.FulfillmentDelivery, wednesday, 10, 4, 0)
	staleBooked := fixture.slot(entity.FulfillmentDelivery, wednesday, 12, 4, 2)

	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	slotRepo := mockRepo.NewMockSlotRepository(t)
	ledger := mockSvc.NewMockCapacityLedger(t)

	catalogRepo.EXPECT().FindShopSettings(mock.Anything, testShopID).Return(nil, nil)
	catalogRepo.EXPECT().LoadCatalog(mock.Anything, testShopID).Return(fixture.catalog, nil)
	slotRepo.EXPECT().
		FindSlots(mock.Anything, mock.Anything).
		Return([]*entity.Slot{kept, staleFree, staleBooked}, nil)
	slotRepo.EXPECT().
		UpsertSlots(mock.Anything, mock.MatchedBy(func(slots []*entity.Slot) bool {
			// Two Tuesdays in the horizon, two sub-slots each.
			return len(slots) == 4 && slots[0].ID == kept.ID && slots[0].Capacity == 4 && slots[0].BookedCount == 1
		})).
		Return(nil)
	slotRepo.EXPECT().DeleteUnbookedSlots(mock.Anything, []uuid.UUID{staleFree.ID}).Return(int64(1), nil)
	ledger.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewSlotService(SlotServiceParams{
		CatalogRepo: catalogRepo,
		SlotRepo:    slotRepo,
		Ledger:      ledger,
		Settings:    NewSettingsService(catalogRepo, newTestConfig()),
		Logger:      newDiscardLogger(),
	}).(*slotService)
	svc.now = fixedClock(recommendationNow)

	result, err := svc.Sync(t.Context(), testShopID, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Generated)
	assert.Equal(t, int64(1), result.Removed)
}

func TestSlotService_Sync_NoTemplates(t *testing.T) {
	fixture := newCatalogFixture()
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	slotRepo := mockRepo.NewMockSlotRepository(t)

	catalogRepo.EXPECT().FindShopSettings(mock.Anything, testShopID).Return(nil, nil)
	catalogRepo.EXPECT().LoadCatalog(mock.Anything, testShopID).Return(fixture.catalog, nil)
	slotRepo.EXPECT().FindSlots(mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewSlotService(SlotServiceParams{
		CatalogRepo: catalogRepo,
		SlotRepo:    slotRepo,
		Ledger:      mockSvc.NewMockCapacityLedger(t),
		Settings:    NewSettingsService(catalogRepo, newTestConfig()),
		Logger:      newDiscardLogger(),
	})

	result, err := svc.Sync(t.Context(), testShopID, recommendationNow)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
}

func TestSlotService_Sync_SettingsUnavailable(t *testing.T) {
	settings := mockUsecase.NewMockSettingsUsecase(t)
	settings.EXPECT().Resolve(mock.Anything, testShopID).Return(entity.ShopSettings{}, assert.AnError)

	svc := NewSlotService(SlotServiceParams{
		CatalogRepo: mockRepo.NewMockCatalogRepository(t),
		SlotRepo:    mockRepo.NewMockSlotRepository(t),
		Ledger:      mockSvc.NewMockCapacityLedger(t),
		Settings:    settings,
		Logger:      newDiscardLogger(),
	})

	result, err := svc.Sync(t.Context(), testShopID, recommendationNow)
	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, result)
}
