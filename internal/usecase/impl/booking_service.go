package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "slotwise/internal/delivery/context"
	"slotwise/internal/domain/eligibility"
	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/repository"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"
	"slotwise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type bookingService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	slotRepo    repository.SlotRepository
	bookingRepo repository.BookingRepository
	ledger      service.CapacityLedger
	recorder    service.EventRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	SlotRepo    repository.SlotRepository
	BookingRepo repository.BookingRepository
	Ledger      service.CapacityLedger
	Recorder    service.EventRecorder
	Logger      *slog.Logger
}

// NewBookingService creates the booking use case
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		slotRepo:    params.SlotRepo,
		bookingRepo: params.BookingRepo,
		ledger:      params.Ledger,
		recorder:    params.Recorder,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateBooking runs eligibility before touching the ledger, so a rejected
// request never changes any booked count.
func (s *bookingService) CreateBooking(ctx context.Context, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if err := validateCreateBooking(input); err != nil {
		return nil, err
	}
	now := s.now()

	slot, err := s.shopSlot(ctx, input.ShopID, input.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.FulfillmentType != input.FulfillmentType {
		return nil, domainerrors.Invalid("fulfillmentType", "does not match the slot")
	}

	location, err := s.checkEligible(ctx, input.ShopID, bookingPostcode(input), addressCoordinate(input.DeliveryAddress), slot, now)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.FindBookingByOrder(ctx, input.ShopID, input.OrderID)
	switch {
	case err == nil && existing.IsActive():
		return nil, domainerrors.ErrBookingAlreadyExists
	case err != nil && !errors.Is(err, domainerrors.ErrBookingNotFound):
		return nil, errors.Wrap(err, "failed to look up booking")
	}

	if err := s.ledger.Register(ctx, slot); err != nil {
		return nil, errors.Wrap(err, "failed to register slot with the ledger")
	}
	if err := s.ledger.Reserve(ctx, slot.ID); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.compensate(ctx, "reserve", func(ctx context.Context) error { return s.ledger.Release(ctx, slot.ID) })

		return nil, errors.WithStack(err)
	}
	booking := &entity.Booking{
		ID:              id,
		ShopID:          input.ShopID,
		OrderID:         input.OrderID,
		SlotID:          slot.ID,
		LocationID:      slot.LocationID,
		FulfillmentType: slot.FulfillmentType,
		CustomerID:      input.CustomerID,
		DeliveryAddress: input.DeliveryAddress,
		Status:          entity.BookingActive,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewBookingRepository().CreateBooking(ctx, booking); err != nil {
			return err
		}

		return s.recorder.Record(ctx, factory.NewOutboxRepository(), entity.OrderScheduled{
			BookingEventData: eventData(booking, slot, location, now),
		})
	})
	if err != nil {
		s.compensate(ctx, "reserve", func(ctx context.Context) error { return s.ledger.Release(ctx, slot.ID) })

		return nil, err
	}

	s.log(ctx).Info("Booking created",
		slog.String("shop_id", booking.ShopID),
		slog.String("order_id", booking.OrderID),
		slog.String("slot_id", booking.SlotID.String()),
	)

	return booking, nil
}

func (s *bookingService) RescheduleBooking(ctx context.Context, input *usecase.RescheduleBookingInput) (*entity.Booking, error) {
	var issues []domainerrors.FieldIssue
	if input.OrderID == "" {
		issues = append(issues, domainerrors.FieldIssue{Field: "orderId", Issue: "required"})
	}
	if input.SlotID == uuid.Nil {
		issues = append(issues, domainerrors.FieldIssue{Field: "slotId", Issue: "required"})
	}
	if input.Version <= 0 {
		issues = append(issues, domainerrors.FieldIssue{Field: "version", Issue: "must be positive"})
	}
	if len(issues) > 0 {
		return nil, domainerrors.NewValidationError(issues...)
	}
	now := s.now()

	booking, err := s.bookingRepo.FindBookingByOrder(ctx, input.ShopID, input.OrderID)
	if err != nil {
		return nil, err
	}
	if !booking.IsActive() {
		return nil, domainerrors.ErrBookingCanceled
	}
	if booking.Version != input.Version {
		return nil, domainerrors.NewConcurrencyConflictError("booking", input.Version, booking.Version)
	}
	if booking.SlotID == input.SlotID {
		return booking, nil
	}

	slot, err := s.shopSlot(ctx, input.ShopID, input.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.FulfillmentType != booking.FulfillmentType {
		return nil, domainerrors.Invalid("slotId", "fulfillment type differs from the booking")
	}

	var (
		postcode   string
		coordinate *entity.Coordinate
	)
	if booking.DeliveryAddress != nil {
		postcode = booking.DeliveryAddress.Postcode
		coordinate = booking.DeliveryAddress.Coordinate
	}
	location, err := s.checkEligible(ctx, input.ShopID, postcode, coordinate, slot, now)
	if err != nil {
		return nil, err
	}

	oldSlotID := booking.SlotID
	oldSlot, err := s.slotRepo.FindSlotByID(ctx, oldSlotID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current slot")
	}
	if err := s.ledger.Register(ctx, oldSlot, slot); err != nil {
		return nil, errors.Wrap(err, "failed to register slots with the ledger")
	}
	if err := s.ledger.Transfer(ctx, oldSlotID, slot.ID); err != nil {
		return nil, err
	}

	updated := *booking
	updated.SlotID = slot.ID
	updated.LocationID = slot.LocationID
	updated.Version = booking.Version + 1
	updated.UpdatedAt = now

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewBookingRepository().UpdateBooking(ctx, &updated, booking.Version); err != nil {
			return err
		}

		return s.recorder.Record(ctx, factory.NewOutboxRepository(), entity.OrderScheduleUpdated{
			BookingEventData: eventData(&updated, slot, location, now),
			PreviousSlotID:   oldSlotID,
		})
	})
	if err != nil {
		s.compensate(ctx, "transfer", func(ctx context.Context) error { return s.ledger.Transfer(ctx, slot.ID, oldSlotID) })

		return nil, err
	}

	s.log(ctx).Info("Booking rescheduled",
		slog.String("order_id", updated.OrderID),
		slog.String("from_slot_id", oldSlotID.String()),
		slog.String("to_slot_id", updated.SlotID.String()),
		slog.Int64("version", updated.Version),
	)

	return &updated, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, shopID, orderID string) (*entity.Booking, error) {
	if orderID == "" {
		return nil, domainerrors.Invalid("orderId", "required")
	}
	now := s.now()

	booking, err := s.bookingRepo.FindBookingByOrder(ctx, shopID, orderID)
	if err != nil {
		return nil, err
	}
	if !booking.IsActive() {
		return nil, domainerrors.ErrBookingCanceled
	}

	slot, err := s.slotRepo.FindSlotByID(ctx, booking.SlotID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booked slot")
	}
	catalog, err := s.catalogRepo.LoadCatalog(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	location := catalog.Location(slot.LocationID)

	if err := s.ledger.Register(ctx, slot); err != nil {
		return nil, errors.Wrap(err, "failed to register slot with the ledger")
	}
	if err := s.ledger.Release(ctx, slot.ID); err != nil {
		return nil, err
	}

	canceled := *booking
	canceled.Status = entity.BookingCanceled
	canceled.Version = booking.Version + 1
	canceled.UpdatedAt = now

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewBookingRepository().UpdateBooking(ctx, &canceled, booking.Version); err != nil {
			return err
		}

		return s.recorder.Record(ctx, factory.NewOutboxRepository(), entity.OrderScheduleCanceled{
			BookingEventData: eventData(&canceled, slot, location, now),
		})
	})
	if err != nil {
		s.compensate(ctx, "release", func(ctx context.Context) error { return s.ledger.Reserve(ctx, slot.ID) })

		return nil, err
	}

	s.log(ctx).Info("Booking canceled",
		slog.String("order_id", canceled.OrderID),
		slog.String("slot_id", canceled.SlotID.String()),
	)

	return &canceled, nil
}

func (s *bookingService) GetBooking(ctx context.Context, shopID, orderID string) (*entity.Booking, error) {
	if orderID == "" {
		return nil, domainerrors.Invalid("orderId", "required")
	}

	return s.bookingRepo.FindBookingByOrder(ctx, shopID, orderID)
}

// shopSlot loads a slot and hides slots of other shops.
func (s *bookingService) shopSlot(ctx context.Context, shopID string, slotID uuid.UUID) (*entity.Slot, error) {
	slot, err := s.slotRepo.FindSlotByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot.ShopID != shopID {
		return nil, domainerrors.ErrSlotNotFound
	}

	return slot, nil
}

// checkEligible evaluates the slot's date for the address, pinned to the
// slot's location and start time.
func (s *bookingService) checkEligible(ctx context.Context, shopID, postcode string, coordinate *entity.Coordinate, slot *entity.Slot, now time.Time) (*entity.Location, error) {
	catalog, err := s.catalogRepo.LoadCatalog(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	if catalog.Location(slot.LocationID) == nil {
		return nil, domainerrors.NewConfigurationError("slot.locationId", "location "+slot.LocationID.String()+" is unknown")
	}

	start := slot.Start
	res, err := eligibility.Evaluate(eligibility.Request{
		Postcode:        postcode,
		Coordinate:      coordinate,
		FulfillmentType: slot.FulfillmentType,
		Date:            slot.Date,
		EarliestStart:   &start,
		LocationID:      slot.LocationID,
	}, catalog, now)
	if err != nil {
		return nil, err
	}
	if !res.Eligible {
		return nil, res.Err()
	}
	if res.Location.ID != slot.LocationID {
		return nil, domainerrors.NewIneligibleError(string(eligibility.ReasonNoMatchingZone))
	}

	return res.Location, nil
}

// compensate undoes a ledger mutation whose booking write failed. A failed
// compensation is logged; the booked count then needs reconciliation.
func (s *bookingService) compensate(ctx context.Context, op string, undo func(context.Context) error) {
	if err := undo(context.WithoutCancel(ctx)); err != nil {
		s.log(ctx).Error("Failed to compensate ledger operation",
			slog.String("op", op),
			slog.Any("error", err),
		)
	}
}

func validateCreateBooking(input *usecase.CreateBookingInput) error {
	var issues []domainerrors.FieldIssue
	if input.OrderID == "" {
		issues = append(issues, domainerrors.FieldIssue{Field: "orderId", Issue: "required"})
	}
	if input.SlotID == uuid.Nil {
		issues = append(issues, domainerrors.FieldIssue{Field: "slotId", Issue: "required"})
	}
	if !input.FulfillmentType.Valid() {
		issues = append(issues, domainerrors.FieldIssue{Field: "fulfillmentType", Issue: "must be delivery or pickup"})
	}
	if input.FulfillmentType == entity.FulfillmentDelivery && input.DeliveryAddress == nil {
		issues = append(issues, domainerrors.FieldIssue{Field: "deliveryAddress", Issue: "required for delivery"})
	}
	if entity.NormalizePostcode(bookingPostcode(input)) == "" {
		issues = append(issues, domainerrors.FieldIssue{Field: "postcode", Issue: "required"})
	}
	if len(issues) > 0 {
		return domainerrors.NewValidationError(issues...)
	}

	return nil
}

func bookingPostcode(input *usecase.CreateBookingInput) string {
	if input.Postcode != "" {
		return input.Postcode
	}
	if input.DeliveryAddress != nil {
		return input.DeliveryAddress.Postcode
	}

	return ""
}

func addressCoordinate(addr *entity.DeliveryAddress) *entity.Coordinate {
	if addr == nil {
		return nil
	}

	return addr.Coordinate
}

func eventData(b *entity.Booking, slot *entity.Slot, location *entity.Location, at time.Time) entity.BookingEventData {
	tz := time.UTC
	if location != nil {
		tz = location.TimeLocation()
	}

	return entity.BookingEventData{
		ShopID:          b.ShopID,
		OrderID:         b.OrderID,
		SlotID:          b.SlotID,
		LocationID:      b.LocationID,
		FulfillmentType: b.FulfillmentType,
		DeliveryAddress: b.DeliveryAddress,
		ScheduledAt:     slot.StartAt(tz),
		BookingVersion:  b.Version,
		At:              at,
	}
}
