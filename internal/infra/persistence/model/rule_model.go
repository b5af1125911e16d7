package model

import (
	"time"

	"github.com/google/uuid"
)

// RuleModel is the GORM-specific struct for the 'rules' table.
// Times of day are stored as minutes since midnight.
type RuleModel struct {
	ID                         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID                     string    `gorm:"type:varchar(255);not null;index"`
	Scope                      string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_rules_on_scope"`
	ScopeID                    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rules_on_scope"`
	CutoffMinute               *int      `gorm:"type:smallint"`
	LeadTimeSeconds            int64     `gorm:"not null;default:0"`
	BlackoutDates              []string  `gorm:"type:jsonb;serializer:json"`
	DefaultSlotDurationSeconds int64     `gorm:"not null;default:0"`
	DefaultCapacity            int       `gorm:"not null;default:0"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RuleModel) TableName() string {
	return "rules"
}
