package model

import (
	"time"

	"github.com/google/uuid"
)

// SlotTemplateModel is the GORM-specific struct for the 'slot_templates' table.
type SlotTemplateModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID          string    `gorm:"type:varchar(255);not null;index"`
	LocationID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FulfillmentType string    `gorm:"type:varchar(16);not null"`
	Weekday         int       `gorm:"type:smallint;not null"`
	StartMinute     int       `gorm:"type:smallint;not null"`
	EndMinute       int       `gorm:"type:smallint;not null"`
	DurationSeconds int64     `gorm:"not null;default:0"`
	DefaultCapacity int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SlotTemplateModel) TableName() string {
	return "slot_templates"
}
