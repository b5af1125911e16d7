package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel is the GORM-specific struct for the 'bookings' table. A partial
// unique index on (shop_id, order_id) WHERE status = 'active' keeps one active
// booking per order.
type BookingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID           string    `gorm:"type:varchar(255);not null;index:idx_bookings_on_order"`
	OrderID          string    `gorm:"type:varchar(255);not null;index:idx_bookings_on_order"`
	SlotID           uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationID       uuid.UUID `gorm:"type:uuid;not null"`
	FulfillmentType  string    `gorm:"type:varchar(16);not null"`
	CustomerID       string    `gorm:"type:varchar(255);not null;default:''"`
	AddressLine      string    `gorm:"type:text"`
	AddressPostcode  string    `gorm:"type:varchar(32)"`
	AddressLatitude  *float64  `gorm:"type:decimal(10,8)"`
	AddressLongitude *float64  `gorm:"type:decimal(11,8)"`
	Status           string    `gorm:"type:varchar(16);not null;default:'active'"`
	Version          int64     `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
