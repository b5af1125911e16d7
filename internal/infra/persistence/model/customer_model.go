package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerPreferencesModel is the GORM-specific struct for the 'customer_preferences' table.
type CustomerPreferencesModel struct {
	ShopID                    string            `gorm:"type:varchar(255);primary_key"`
	CustomerID                string            `gorm:"type:varchar(255);primary_key"`
	PreferredDays             []int             `gorm:"type:jsonb;serializer:json"`
	PreferredTimeWindows      []TimeWindowValue `gorm:"type:jsonb;serializer:json"`
	PreferredLocationIDs      []uuid.UUID       `gorm:"column:preferred_location_ids;type:jsonb;serializer:json"`
	PreviouslyUsedLocationIDs []uuid.UUID       `gorm:"column:previously_used_location_ids;type:jsonb;serializer:json"`
	UpdatedAt                 time.Time
}

// TimeWindowValue is a window in minutes since midnight.
type TimeWindowValue struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerPreferencesModel) TableName() string {
	return "customer_preferences"
}

// RecommendationLogModel is the GORM-specific struct for the append-only 'recommendation_logs' table.
type RecommendationLogModel struct {
	ID              uuid.UUID             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID          string                `gorm:"type:varchar(255);not null;index"`
	SessionID       string                `gorm:"type:varchar(255);not null;index"`
	CustomerID      string                `gorm:"type:varchar(255);not null;default:''"`
	CandidatesShown []ShownCandidateValue `gorm:"type:jsonb;serializer:json;not null"`
	SelectedID      uuid.UUID             `gorm:"type:uuid;not null"`
	WasRecommended  bool                  `gorm:"not null"`
	Timestamp       time.Time             `gorm:"not null"`
}

// ShownCandidateValue is one entry of CandidatesShown.
type ShownCandidateValue struct {
	ID          uuid.UUID `json:"id"`
	Score       float64   `json:"score"`
	Recommended bool      `json:"recommended"`
}

// TableName explicitly sets the table name for GORM.
func (RecommendationLogModel) TableName() string {
	return "recommendation_logs"
}
