package model

import "time"

// ShopSettingsModel is the GORM-specific struct for the 'shop_settings' table.
type ShopSettingsModel struct {
	ShopID                 string  `gorm:"type:varchar(255);primary_key"`
	RecommendationsEnabled bool    `gorm:"not null;default:true"`
	WeightCapacity         float64 `gorm:"not null;default:0"`
	WeightDistance         float64 `gorm:"not null;default:0"`
	WeightRouteEfficiency  float64 `gorm:"not null;default:0"`
	WeightPersonalization  float64 `gorm:"not null;default:0"`
	SlotTopK               int     `gorm:"not null;default:0"`
	LocationTopK           int     `gorm:"not null;default:0"`
	MaxDistanceKm          float64 `gorm:"type:decimal(8,3);not null;default:0"`
	EventRetryCeiling      int     `gorm:"not null;default:0"`
	WebhookURL             string  `gorm:"type:text;not null;default:''"`
	HorizonDays            int     `gorm:"not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopSettingsModel) TableName() string {
	return "shop_settings"
}
