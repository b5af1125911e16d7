package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "slotwise/internal/delivery/context"
	"slotwise/internal/domain/eligibility"
	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
	"slotwise/internal/domain/service"
	"slotwise/internal/domain/slotgen"
	"slotwise/internal/errors"
	"slotwise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var fulfillmentTypes = []entity.FulfillmentType{entity.FulfillmentDelivery, entity.FulfillmentPickup}

type slotService struct {
	catalogRepo repository.CatalogRepository
	slotRepo    repository.SlotRepository
	ledger      service.CapacityLedger
	settings    usecase.SettingsUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// SlotServiceParams holds dependencies for SlotService, injected by Fx.
type SlotServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	SlotRepo    repository.SlotRepository
	Ledger      service.CapacityLedger
	Settings    usecase.SettingsUsecase
	Logger      *slog.Logger
}

// NewSlotService creates the slot regeneration use case
func NewSlotService(params SlotServiceParams) usecase.SlotUsecase {
	return &slotService{
		catalogRepo: params.CatalogRepo,
		slotRepo:    params.SlotRepo,
		ledger:      params.Ledger,
		settings:    params.Settings,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *slotService) Sync(ctx context.Context, shopID string, from time.Time) (*usecase.SlotSyncResult, error) {
	now := s.now()
	if from.IsZero() {
		from = now
	}
	from = entity.DateOf(from)

	settings, err := s.settings.Resolve(ctx, shopID)
	if err != nil {
		return nil, err
	}
	days := min(settings.HorizonDays, slotgen.MaxHorizonDays)

	catalog, err := s.catalogRepo.LoadCatalog(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	var generated []*entity.Slot
	for _, location := range catalog.Locations {
		for _, ft := range fulfillmentTypes {
			templates := catalog.TemplatesFor(location.ID, ft)
			if len(templates) == 0 {
				continue
			}
			rule := eligibility.RuleForLocation(catalog, location.ID, ft)
			slots, err := slotgen.Generate(templates, rule, location, from, days, now)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to generate slots for location %s", location.ID)
			}
			generated = append(generated, slots...)
		}
	}
	slotgen.Sort(generated)

	stored, err := s.slotRepo.FindSlots(ctx, repository.SlotQuery{
		ShopID: shopID,
		From:   from,
		To:     from.AddDate(0, 0, days-1),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stored slots")
	}

	existing := make(map[uuid.UUID]*entity.Slot, len(stored))
	for _, slot := range stored {
		existing[slot.ID] = slot
	}
	for _, slot := range generated {
		if prev, ok := existing[slot.ID]; ok {
			// capacity never drops below what is already booked
			slot.BookedCount = prev.BookedCount
			slot.Capacity = max(slot.Capacity, prev.BookedCount)
			slot.Version = prev.Version
		}
	}

	if len(generated) > 0 {
		if err := s.slotRepo.UpsertSlots(ctx, generated); err != nil {
			return nil, errors.Wrap(err, "failed to store slots")
		}
	}

	keep := make(map[uuid.UUID]struct{}, len(generated))
	for _, slot := range generated {
		keep[slot.ID] = struct{}{}
	}
	var stale []uuid.UUID
	for _, slot := range stored {
		if _, ok := keep[slot.ID]; !ok && slot.BookedCount == 0 {
			stale = append(stale, slot.ID)
		}
	}

	var removed int64
	if len(stale) > 0 {
		removed, err = s.slotRepo.DeleteUnbookedSlots(ctx, stale)
		if err != nil {
			return nil, errors.Wrap(err, "failed to remove stale slots")
		}
	}

	if len(generated) > 0 {
		if err := s.ledger.Register(ctx, generated...); err != nil {
			return nil, errors.Wrap(err, "failed to register slots with the ledger")
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Slots synced",
		slog.String("shop_id", shopID),
		slog.Int("generated", len(generated)),
		slog.Int64("removed", removed),
	)

	return &usecase.SlotSyncResult{Generated: len(generated), Removed: removed}, nil
}
