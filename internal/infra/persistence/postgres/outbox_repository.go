package postgres

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/repository"
	"slotwise/internal/errors"
	"slotwise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Enqueue inserts record unless a record with the same idempotency key is
// still pending or retrying. Delivered and dead-lettered records do not block
// a later event with the same key, such as a rebooking of the same slot.
func (repo *outboxRepository) Enqueue(ctx context.Context, record *entity.OutboxRecord) (bool, error) {
	eventM := fromOutboxDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "idempotency_key"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: outboxLiveStatus}}},
			DoNothing:   true,
		}).
		Create(eventM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to enqueue event")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}
	record.ID = eventM.ID

	return true, nil
}

// LeaseDue selects due records with FOR UPDATE SKIP LOCKED and pushes their
// next attempt past the lease, so concurrent dispatchers never share a record.
func (repo *outboxRepository) LeaseDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*entity.OutboxRecord, error) {
	var eventModels []*model.OutboxEventModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status IN ? AND next_attempt_at <= ?",
				[]string{string(entity.OutboxPending), string(entity.OutboxRetrying)}, now).
			Order("next_attempt_at, id").
			Limit(limit).
			Find(&eventModels).Error; err != nil {
			return errors.Wrap(err, "failed to select due events")
		}
		if len(eventModels) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(eventModels))
		for _, eventM := range eventModels {
			ids = append(ids, eventM.ID)
		}

		return errors.Wrap(tx.Model(&model.OutboxEventModel{}).
			Where("id IN ?", ids).
			Update("next_attempt_at", now.Add(lease)).Error, "failed to lease events")
	})
	if err != nil {
		return nil, err
	}

	records := make([]*entity.OutboxRecord, 0, len(eventModels))
	for _, eventM := range eventModels {
		records = append(records, toOutboxDomain(eventM))
	}

	return records, nil
}

// Save writes back the delivery state of a record.
func (repo *outboxRepository) Save(ctx context.Context, record *entity.OutboxRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"status":          string(record.Status),
			"attempts":        record.Attempts,
			"next_attempt_at": record.NextAttemptAt,
			"last_error":      record.LastError,
			"delivered_at":    record.DeliveredAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save event")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("outbox event " + record.ID.String())
	}

	return nil
}

func toOutboxDomain(data *model.OutboxEventModel) *entity.OutboxRecord {
	return &entity.OutboxRecord{
		ID:             data.ID,
		ShopID:         data.ShopID,
		EventType:      entity.EventType(data.EventType),
		IdempotencyKey: data.IdempotencyKey,
		Payload:        data.Payload,
		Status:         entity.OutboxStatus(data.Status),
		Attempts:       data.Attempts,
		NextAttemptAt:  data.NextAttemptAt,
		LastError:      data.LastError,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		DeliveredAt:    data.DeliveredAt,
	}
}

func fromOutboxDomain(data *entity.OutboxRecord) *model.OutboxEventModel {
	return &model.OutboxEventModel{
		ID:             data.ID,
		ShopID:         data.ShopID,
		EventType:      string(data.EventType),
		IdempotencyKey: data.IdempotencyKey,
		Payload:        data.Payload,
		Status:         string(data.Status),
		Attempts:       data.Attempts,
		NextAttemptAt:  data.NextAttemptAt,
		LastError:      data.LastError,
		DeliveredAt:    data.DeliveredAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
