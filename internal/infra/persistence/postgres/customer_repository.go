package postgres

import (
	"context"
	"time"

	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"
	"slotwise/internal/domain/repository"
	"slotwise/internal/errors"
	"slotwise/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindPreferences returns nil without error for customers with no history.
func (repo *customerRepository) FindPreferences(ctx context.Context, shopID, customerID string) (*entity.CustomerPreferences, error) {
	var prefsM model.CustomerPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ? AND customer_id = ?", shopID, customerID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find customer preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// AppendRecommendationLog inserts a log row. Rows are never updated.
func (repo *customerRepository) AppendRecommendationLog(ctx context.Context, log *entity.RecommendationLog) error {
	logM := fromRecommendationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append recommendation log")
	}
	log.ID = logM.ID

	return nil
}

func toPreferencesDomain(data *model.CustomerPreferencesModel) *entity.CustomerPreferences {
	prefs := &entity.CustomerPreferences{
		CustomerID:                data.CustomerID,
		PreferredDays:             make([]time.Weekday, 0, len(data.PreferredDays)),
		PreferredTimeWindows:      make([]entity.TimeWindow, 0, len(data.PreferredTimeWindows)),
		PreferredLocationIDs:      data.PreferredLocationIDs,
		PreviouslyUsedLocationIDs: data.PreviouslyUsedLocationIDs,
	}
	for _, day := range data.PreferredDays {
		prefs.PreferredDays = append(prefs.PreferredDays, weekday(day))
	}
	for _, w := range data.PreferredTimeWindows {
		prefs.PreferredTimeWindows = append(prefs.PreferredTimeWindows, entity.TimeWindow{
			Start: entity.TimeOfDay(w.Start),
			End:   entity.TimeOfDay(w.End),
		})
	}

	return prefs
}

func fromRecommendationLogDomain(data *entity.RecommendationLog) *model.RecommendationLogModel {
	shown := make([]model.ShownCandidateValue, 0, len(data.CandidatesShown))
	for _, c := range data.CandidatesShown {
		shown = append(shown, model.ShownCandidateValue{
			ID:          c.ID,
			Score:       c.Score,
			Recommended: c.Recommended,
		})
	}

	return &model.RecommendationLogModel{
		ID:              data.ID,
		ShopID:          data.ShopID,
		SessionID:       data.SessionID,
		CustomerID:      data.CustomerID,
		CandidatesShown: shown,
		SelectedID:      data.SelectedID,
		WasRecommended:  data.WasRecommended,
		Timestamp:       data.Timestamp,
	}
}
