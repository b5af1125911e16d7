package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"slotwise/config"
	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
	mockRepo "slotwise/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const testShopID = "shop-1.myshopify.com"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Scheduling: &config.SchedulingConfig{
			Weights:        entity.DefaultWeights(),
			SlotTopK:       3,
			LocationTopK:   1,
			MaxDistanceKm:  50,
			HorizonDays:    14,
			ScoringTimeout: time.Second,
		},
		Events: &config.EventsConfig{
			MaxAttempts:    5,
			InitialBackoff: time.Second,
			MaxBackoff:     5 * time.Minute,
			LeaseDuration:  30 * time.Second,
			BatchSize:      10,
			Workers:        2,
		},
	}
}

// catalogFixture is one shop with a single zone around postcode 10115
// served by one location in UTC. Same-day orders close at 10:00 and slots
// need two hours of lead time.
type catalogFixture struct {
	location *entity.Location
	zone     *entity.Zone
	rule     *entity.Rule
	catalog  *entity.Catalog
}

func newCatalogFixture() *catalogFixture {
	cutoff := entity.NewTimeOfDay(10, 0)
	location := &entity.Location{
		ID:         uuid.MustParse("0190a000-0000-7000-8000-000000000001"),
		ShopID:     testShopID,
		Name:       "Mitte",
		Address:    "Invalidenstrasse 1",
		Coordinate: &entity.Coordinate{Lat: 52.5310, Lng: 13.3847},
		Timezone:   "UTC",
	}
	zone := &entity.Zone{
		ID:               uuid.MustParse("0190a000-0000-7000-8000-0000000000a1"),
		ShopID:           testShopID,
		Name:             "Berlin Mitte",
		Priority:         1,
		FulfillmentTypes: []entity.FulfillmentType{entity.FulfillmentDelivery, entity.FulfillmentPickup},
		LocationIDs:      []uuid.UUID{location.ID},
		Coverage: entity.Coverage{
			Kind:      entity.CoveragePostcodeSet,
			Postcodes: []string{"10115", "10117"},
		},
	}
	rule := &entity.Rule{
		ID:              uuid.MustParse("0190a000-0000-7000-8000-0000000000b1"),
		ShopID:          testShopID,
		Scope:           entity.RuleScopeZone,
		ScopeID:         zone.ID,
		CutoffTime:      &cutoff,
		LeadTime:        2 * time.Hour,
		DefaultCapacity: 5,
	}

	return &catalogFixture{
		location: location,
		zone:     zone,
		rule:     rule,
		catalog: &entity.Catalog{
			Zones:     []*entity.Zone{zone},
			Locations: []*entity.Location{location},
			Rules:     []*entity.Rule{rule},
		},
	}
}

// slot builds a stored slot of the fixture location.
func (f *catalogFixture) slot(ft entity.FulfillmentType, date time.Time, startHour, capacity, booked int) *entity.Slot {
	start := entity.NewTimeOfDay(startHour, 0)
	end := entity.NewTimeOfDay(startHour+2, 0)
	date = entity.DateOf(date)

	return &entity.Slot{
		ID:              entity.SlotID(f.location.ID, date, start, end, ft),
		ShopID:          testShopID,
		LocationID:      f.location.ID,
		FulfillmentType: ft,
		Date:            date,
		Start:           start,
		End:             end,
		Capacity:        capacity,
		BookedCount:     booked,
	}
}

// expectTx makes txManager run the callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
