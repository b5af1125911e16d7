package model

import (
	"time"

	"github.com/google/uuid"
)

// ZoneModel is the GORM-specific struct for the 'zones' table. Coverage
// fields are only meaningful for the matching coverage kind.
type ZoneModel struct {
	ID                uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID            string      `gorm:"type:varchar(255);not null;index"`
	Name              string      `gorm:"type:varchar(255);not null"`
	Priority          int         `gorm:"not null;default:0"`
	FulfillmentTypes  []string    `gorm:"type:jsonb;serializer:json;not null"`
	LocationIDs       []uuid.UUID `gorm:"column:location_ids;type:jsonb;serializer:json;not null"`
	CoverageKind      string      `gorm:"type:varchar(32);not null"`
	RangeFrom         string      `gorm:"type:varchar(32)"`
	RangeTo           string      `gorm:"type:varchar(32)"`
	Postcodes         []string    `gorm:"type:jsonb;serializer:json"`
	RadiusLocationID  *uuid.UUID  `gorm:"type:uuid"`
	RadiusKm          float64     `gorm:"type:decimal(8,3);not null;default:0"`
	ExcludedPostcodes []string    `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}
