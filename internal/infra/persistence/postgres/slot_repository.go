package postgres

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/repository"
	"slotwise/internal/errors"
	"slotwise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const slotUpsertBatchSize = 200

// slotRepository implements the repository.SlotRepository interface.
type slotRepository struct {
	db *gorm.DB
}

// NewSlotRepository is the constructor for slotRepository.
func NewSlotRepository(db *gorm.DB) repository.SlotRepository {
	return &slotRepository{
		db: db,
	}
}

// FindSlotByID retrieves a slot by its id.
func (repo *slotRepository) FindSlotByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	var slotM model.SlotModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrSlotNotFound
		}

		return nil, errors.Wrap(err, "failed to find slot by ID")
	}

	return toSlotDomain(&slotM), nil
}

// FindSlots retrieves slots matching query ordered by date, start and location.
func (repo *slotRepository) FindSlots(ctx context.Context, query repository.SlotQuery) ([]*entity.Slot, error) {
	tx := repo.db.WithContext(ctx).Model(&model.SlotModel{})
	if query.ShopID != "" {
		tx = tx.Where("shop_id = ?", query.ShopID)
	}
	if len(query.LocationIDs) > 0 {
		tx = tx.Where("location_id IN ?", query.LocationIDs)
	}
	if query.FulfillmentType != "" {
		tx = tx.Where("fulfillment_type = ?", string(query.FulfillmentType))
	}
	if !query.From.IsZero() {
		tx = tx.Where("date >= ?", dateParam(query.From))
	}
	if !query.To.IsZero() {
		tx = tx.Where("date <= ?", dateParam(query.To))
	}

	var slotModels []*model.SlotModel
	if err := tx.Order("date, start_minute, location_id, id").Find(&slotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find slots")
	}

	slots := make([]*entity.Slot, 0, len(slotModels))
	for _, slotM := range slotModels {
		slots = append(slots, toSlotDomain(slotM))
	}

	return slots, nil
}

// UpsertSlots inserts new slots. Existing rows only take the new capacity,
// never below their booked count.
func (repo *slotRepository) UpsertSlots(ctx context.Context, slots []*entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	slotModels := make([]*model.SlotModel, 0, len(slots))
	for _, slot := range slots {
		slotModels = append(slotModels, fromSlotDomain(slot))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"capacity":   gorm.Expr("GREATEST(EXCLUDED.capacity, slots.booked_count)"),
				"updated_at": gorm.Expr("EXCLUDED.updated_at"),
			}),
		}).
		CreateInBatches(slotModels, slotUpsertBatchSize).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.NewConfigurationError("slot.capacity", "must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert slots")
	}

	return nil
}

// DeleteUnbookedSlots removes slots with no booked units and no active booking.
func (repo *slotRepository) DeleteUnbookedSlots(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ? AND booked_count = 0", ids).
		Where("NOT EXISTS (SELECT 1 FROM bookings WHERE bookings.slot_id = slots.id AND bookings.status = ?)", string(entity.BookingActive)).
		Delete(&model.SlotModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete slots")
	}

	return result.RowsAffected, nil
}

type scheduledDeliveryRow struct {
	SlotID      uuid.UUID
	Date        time.Time
	StartMinute int
	Latitude    float64
	Longitude   float64
}

// FindScheduledDeliveries joins active delivery bookings with their slots.
func (repo *slotRepository) FindScheduledDeliveries(ctx context.Context, shopID string, from, to time.Time) ([]entity.ScheduledDelivery, error) {
	var rows []scheduledDeliveryRow

	if err := repo.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.slot_id, slots.date, slots.start_minute, bookings.address_latitude AS latitude, bookings.address_longitude AS longitude").
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where("bookings.shop_id = ? AND bookings.status = ? AND bookings.fulfillment_type = ?",
			shopID, string(entity.BookingActive), string(entity.FulfillmentDelivery)).
		Where("bookings.address_latitude IS NOT NULL AND bookings.address_longitude IS NOT NULL").
		Where("slots.date BETWEEN ? AND ?", dateParam(from), dateParam(to)).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find scheduled deliveries")
	}

	deliveries := make([]entity.ScheduledDelivery, 0, len(rows))
	for _, row := range rows {
		deliveries = append(deliveries, entity.ScheduledDelivery{
			SlotID:     row.SlotID,
			Date:       entity.DateOf(row.Date),
			Start:      entity.TimeOfDay(row.StartMinute),
			Coordinate: entity.Coordinate{Lat: row.Latitude, Lng: row.Longitude},
		})
	}

	return deliveries, nil
}

func toSlotDomain(data *model.SlotModel) *entity.Slot {
	return &entity.Slot{
		ID:              data.ID,
		ShopID:          data.ShopID,
		LocationID:      data.LocationID,
		FulfillmentType: entity.FulfillmentType(data.FulfillmentType),
		Date:            entity.DateOf(data.Date),
		Start:           entity.TimeOfDay(data.StartMinute),
		End:             entity.TimeOfDay(data.EndMinute),
		Capacity:        data.Capacity,
		BookedCount:     data.BookedCount,
		Version:         data.Version,
	}
}

func fromSlotDomain(data *entity.Slot) *model.SlotModel {
	return &model.SlotModel{
		ID:              data.ID,
		ShopID:          data.ShopID,
		LocationID:      data.LocationID,
		FulfillmentType: string(data.FulfillmentType),
		Date:            entity.DateOf(data.Date),
		StartMinute:     int(data.Start),
		EndMinute:       int(data.End),
		Capacity:        data.Capacity,
		BookedCount:     data.BookedCount,
		Version:         data.Version,
	}
}
