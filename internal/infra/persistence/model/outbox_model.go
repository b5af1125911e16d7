package model

import (
	"time"

	"github.com/google/uuid"
)

// OutboxEventModel is the GORM-specific struct for the 'outbox_events' table.
type OutboxEventModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID         string     `gorm:"type:varchar(255);not null;index"`
	EventType      string     `gorm:"type:varchar(64);not null"`
	IdempotencyKey string     `gorm:"type:char(64);not null"`
	Payload        []byte     `gorm:"type:bytea;not null"`
	Status         string     `gorm:"type:varchar(16);not null;index:idx_outbox_events_due"`
	Attempts       int        `gorm:"not null;default:0"`
	NextAttemptAt  time.Time  `gorm:"not null;index:idx_outbox_events_due"`
	LastError      string     `gorm:"type:text;not null;default:''"`
	DeliveredAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutboxEventModel) TableName() string {
	return "outbox_events"
}
