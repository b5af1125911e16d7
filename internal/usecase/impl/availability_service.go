package impl

import (
	"context"
	"time"

	"slotwise/internal/domain/eligibility"
	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
	"slotwise/internal/errors"
	"slotwise/internal/usecase"
)

type availabilityService struct {
	catalogRepo repository.CatalogRepository
	settings    usecase.SettingsUsecase
	now         func() time.Time
}

// NewAvailabilityService creates the eligible-date lookup
func NewAvailabilityService(catalogRepo repository.CatalogRepository, settings usecase.SettingsUsecase) usecase.AvailabilityUsecase {
	return &availabilityService{
		catalogRepo: catalogRepo,
		settings:    settings,
		now:         time.Now,
	}
}

func (s *availabilityService) Availability(ctx context.Context, input *usecase.AvailabilityInput) ([]usecase.DateAvailability, error) {
	now := s.now()

	from, days := input.From, input.Days
	if from.IsZero() {
		from = entity.DateOf(now)
	}
	if days == 0 {
		settings, err := s.settings.Resolve(ctx, input.ShopID)
		if err != nil {
			return nil, err
		}
		days = settings.HorizonDays
	}

	catalog, err := s.catalogRepo.LoadCatalog(ctx, input.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	verdicts, err := eligibility.EvaluateRange(eligibility.Request{
		Postcode:        input.Postcode,
		Coordinate:      input.Coordinate,
		FulfillmentType: input.FulfillmentType,
	}, catalog, from, days, now)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.DateAvailability, 0, len(verdicts))
	for _, v := range verdicts {
		day := usecase.DateAvailability{
			Date:     v.Date,
			Eligible: v.Result.Eligible,
			Reason:   string(v.Result.Reason),
		}
		if v.Result.Location != nil {
			day.LocationID = v.Result.Location.ID
		}
		out = append(out, day)
	}

	return out, nil
}
