package model

import (
	"time"

	"github.com/google/uuid"
)

// SlotModel is the GORM-specific struct for the 'slots' table. The id is
// derived from the natural key, so it has no database default.
type SlotModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	ShopID          string    `gorm:"type:varchar(255);not null;index:idx_slots_on_shop_date"`
	LocationID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FulfillmentType string    `gorm:"type:varchar(16);not null"`
	Date            time.Time `gorm:"type:date;not null;index:idx_slots_on_shop_date"`
	StartMinute     int       `gorm:"type:smallint;not null"`
	EndMinute       int       `gorm:"type:smallint;not null"`
	Capacity        int       `gorm:"not null;check:capacity >= 1"`
	BookedCount     int       `gorm:"not null;default:0;check:booked_count >= 0 AND booked_count <= capacity"`
	Version         int64     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SlotModel) TableName() string {
	return "slots"
}
