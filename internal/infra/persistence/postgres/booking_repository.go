package postgres

import (
	"context"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/repository"
	"slotwise/internal/errors"
	"slotwise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// CreateBooking persists a new booking.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		// idx_bookings_active_order allows one active booking per order
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBookingAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	// Update the entity with generated values
	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// FindBookingByOrder retrieves the most recent booking of an order.
func (repo *bookingRepository) FindBookingByOrder(ctx context.Context, shopID, orderID string) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ? AND order_id = ?", shopID, orderID).
		Order("created_at DESC, id DESC").
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by order")
	}

	return toBookingDomain(&bookingM), nil
}

// UpdateBooking writes booking when its stored version is still expectedVersion.
func (repo *bookingRepository) UpdateBooking(ctx context.Context, booking *entity.Booking, expectedVersion int64) error {
	bookingM := fromBookingDomain(booking)

	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ? AND version = ?", booking.ID, expectedVersion).
		Updates(map[string]any{
			"slot_id":           bookingM.SlotID,
			"location_id":       bookingM.LocationID,
			"fulfillment_type":  bookingM.FulfillmentType,
			"address_line":      bookingM.AddressLine,
			"address_postcode":  bookingM.AddressPostcode,
			"address_latitude":  bookingM.AddressLatitude,
			"address_longitude": bookingM.AddressLongitude,
			"status":            bookingM.Status,
			"version":           bookingM.Version,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBookingAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking")
	}

	if result.RowsAffected == 0 {
		return repo.versionConflict(ctx, booking.ID, expectedVersion)
	}

	return nil
}

func (repo *bookingRepository) versionConflict(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	var current model.BookingModel

	if err := repo.db.WithContext(ctx).
		Select("version").
		Where("id = ?", id).
		First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to read booking version")
	}

	return domainerrors.NewConcurrencyConflictError("booking", expectedVersion, current.Version)
}

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	booking := &entity.Booking{
		ID:              data.ID,
		ShopID:          data.ShopID,
		OrderID:         data.OrderID,
		SlotID:          data.SlotID,
		LocationID:      data.LocationID,
		FulfillmentType: entity.FulfillmentType(data.FulfillmentType),
		CustomerID:      data.CustomerID,
		Status:          entity.BookingStatus(data.Status),
		Version:         data.Version,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.AddressPostcode != "" {
		booking.DeliveryAddress = &entity.DeliveryAddress{
			Line:       data.AddressLine,
			Postcode:   data.AddressPostcode,
			Coordinate: coordinateOf(data.AddressLatitude, data.AddressLongitude),
		}
	}

	return booking
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	bookingM := &model.BookingModel{
		ID:              data.ID,
		ShopID:          data.ShopID,
		OrderID:         data.OrderID,
		SlotID:          data.SlotID,
		LocationID:      data.LocationID,
		FulfillmentType: string(data.FulfillmentType),
		CustomerID:      data.CustomerID,
		Status:          string(data.Status),
		Version:         data.Version,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if addr := data.DeliveryAddress; addr != nil {
		bookingM.AddressLine = addr.Line
		bookingM.AddressPostcode = addr.Postcode
		bookingM.AddressLatitude, bookingM.AddressLongitude = coordinateParts(addr.Coordinate)
	}

	return bookingM
}
