package postgres

import (
	"context"

	"slotwise/internal/errors"
	"slotwise/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&model.LocationModel{},
		&model.ZoneModel{},
		&model.RuleModel{},
		&model.SlotTemplateModel{},
		&model.ShopSettingsModel{},
		&model.SlotModel{},
		&model.BookingModel{},
		&model.OutboxEventModel{},
		&model.CustomerPreferencesModel{},
		&model.RecommendationLogModel{},
	}
}

// outboxLiveStatus matches records still awaiting delivery. The enqueue
// conflict target repeats it verbatim so Postgres can infer the index.
const outboxLiveStatus = `status IN ('pending', 'retrying')`

// statements GORM tags cannot express.
var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_order ON bookings (shop_id, order_id) WHERE status = 'active'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_outbox_events_live_key ON outbox_events (idempotency_key) WHERE ` + outboxLiveStatus,
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec(migrationStatements[0]).Error; err != nil {
		return errors.Wrap(err, "failed to create uuid extension")
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate models")
	}
	for _, stmt := range migrationStatements[1:] {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to run %q", stmt)
		}
	}

	return nil
}
