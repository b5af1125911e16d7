package ledger

import (
	"context"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"
	"slotwise/internal/infra/metrics"
	"slotwise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresLedger mutates the booked_count column of the slots table with
// conditional updates. The row is the counter, so it stays correct across
// any number of API replicas.
type PostgresLedger struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

var _ service.CapacityLedger = (*PostgresLedger)(nil)

// NewPostgresLedger creates a ledger on db.
func NewPostgresLedger(db *gorm.DB, m *metrics.Metrics) *PostgresLedger {
	return &PostgresLedger{db: db, metrics: m}
}

// Register inserts slots that are not stored yet. Stored rows keep their
// counts and take the new capacity, never below what is already booked.
func (l *PostgresLedger) Register(ctx context.Context, slots ...*entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	rows := make([]*model.SlotModel, 0, len(slots))
	for _, s := range slots {
		if s.Capacity < 1 {
			return domainerrors.NewConfigurationError("slot.capacity", "must be at least 1")
		}
		rows = append(rows, &model.SlotModel{
			ID:              s.ID,
			ShopID:          s.ShopID,
			LocationID:      s.LocationID,
			FulfillmentType: string(s.FulfillmentType),
			Date:            entity.DateOf(s.Date),
			StartMinute:     int(s.Start),
			EndMinute:       int(s.End),
			Capacity:        s.Capacity,
			BookedCount:     min(s.BookedCount, s.Capacity),
			Version:         s.Version,
		})
	}

	if err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"capacity": gorm.Expr("GREATEST(EXCLUDED.capacity, slots.booked_count)"),
			}),
		}).
		Create(rows).Error; err != nil {
		return errors.Wrap(err, "failed to register slots")
	}

	return nil
}

// Reserve implements service.CapacityLedger.
func (l *PostgresLedger) Reserve(ctx context.Context, slotID uuid.UUID) error {
	result := l.db.WithContext(ctx).
		Model(&model.SlotModel{}).
		Where("id = ? AND booked_count < capacity", slotID).
		Updates(map[string]any{
			"booked_count": gorm.Expr("booked_count + 1"),
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		l.metrics.LedgerOperation(opReserve, metrics.OutcomeError)

		return errors.Wrap(result.Error, "ledger reserve failed")
	}
	if result.RowsAffected == 0 {
		return l.rejected(ctx, opReserve, slotID, domainerrors.NewCapacityExceededError(slotID))
	}
	l.metrics.LedgerOperation(opReserve, metrics.OutcomeOK)

	return nil
}

// Release implements service.CapacityLedger.
func (l *PostgresLedger) Release(ctx context.Context, slotID uuid.UUID) error {
	result := l.db.WithContext(ctx).
		Model(&model.SlotModel{}).
		Where("id = ? AND booked_count > 0", slotID).
		Updates(map[string]any{
			"booked_count": gorm.Expr("booked_count - 1"),
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		l.metrics.LedgerOperation(opRelease, metrics.OutcomeError)

		return errors.Wrap(result.Error, "ledger release failed")
	}
	if result.RowsAffected == 0 {
		return l.rejected(ctx, opRelease, slotID, domainerrors.ErrNothingToRelease)
	}
	l.metrics.LedgerOperation(opRelease, metrics.OutcomeOK)

	return nil
}

// Transfer implements service.CapacityLedger. Both rows are locked FOR UPDATE
// in ascending id order inside one transaction.
func (l *PostgresLedger) Transfer(ctx context.Context, oldID, newID uuid.UUID) error {
	if oldID == newID {
		return nil
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []*model.SlotModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "capacity", "booked_count", "version").
			Where("id IN ?", []uuid.UUID{oldID, newID}).
			Order("id").
			Find(&rows).Error; err != nil {
			return errors.Wrap(err, "failed to lock slots")
		}

		var from, to *model.SlotModel
		for _, row := range rows {
			switch row.ID {
			case oldID:
				from = row
			case newID:
				to = row
			}
		}
		switch {
		case from == nil:
			return domainerrors.ErrSlotNotFound.WrapMessage(oldID.String())
		case to == nil:
			return domainerrors.ErrSlotNotFound.WrapMessage(newID.String())
		case from.BookedCount == 0:
			return domainerrors.ErrNothingToRelease
		case to.BookedCount >= to.Capacity:
			return domainerrors.NewCapacityExceededError(newID)
		}

		if err := bump(tx, from, -1); err != nil {
			return err
		}

		return bump(tx, to, 1)
	})
	if err != nil {
		l.metrics.LedgerOperation(opTransfer, outcomeOf(err))

		return err
	}
	l.metrics.LedgerOperation(opTransfer, metrics.OutcomeOK)

	return nil
}

// bump applies delta to a locked row. The version predicate can only fail if
// the row was changed outside the lock.
func bump(tx *gorm.DB, row *model.SlotModel, delta int) error {
	result := tx.Model(&model.SlotModel{}).
		Where("id = ? AND version = ?", row.ID, row.Version).
		Updates(map[string]any{
			"booked_count": gorm.Expr("booked_count + ?", delta),
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update slot counter")
	}
	if result.RowsAffected == 0 {
		return domainerrors.NewConcurrencyConflictError("slot", row.Version, row.Version+1)
	}

	return nil
}

// Remaining implements service.CapacityLedger.
func (l *PostgresLedger) Remaining(ctx context.Context, slotID uuid.UUID) (int, int, error) {
	var row model.SlotModel

	if err := l.db.WithContext(ctx).
		Select("capacity", "booked_count").
		Where("id = ?", slotID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, domainerrors.ErrSlotNotFound.WrapMessage(slotID.String())
		}

		return 0, 0, errors.Wrap(err, "failed to read slot counter")
	}

	return row.Capacity - row.BookedCount, row.Capacity, nil
}

// rejected tells a missing slot from a counter that refused the update.
func (l *PostgresLedger) rejected(ctx context.Context, op string, slotID uuid.UUID, refusal error) error {
	var count int64
	if err := l.db.WithContext(ctx).Model(&model.SlotModel{}).Where("id = ?", slotID).Count(&count).Error; err != nil {
		l.metrics.LedgerOperation(op, metrics.OutcomeError)

		return errors.Wrapf(err, "ledger %s failed", op)
	}
	if count == 0 {
		l.metrics.LedgerOperation(op, metrics.OutcomeError)

		return domainerrors.ErrSlotNotFound.WrapMessage(slotID.String())
	}
	l.metrics.LedgerOperation(op, metrics.OutcomeRejected)

	return refusal
}

func outcomeOf(err error) string {
	var full *domainerrors.CapacityExceededError
	if errors.As(err, &full) || errors.Is(err, domainerrors.ErrNothingToRelease) {
		return metrics.OutcomeRejected
	}

	return metrics.OutcomeError
}
