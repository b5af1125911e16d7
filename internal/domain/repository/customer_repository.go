package repository

import (
	"context"

	"slotwise/internal/domain/entity"
)

// CustomerRepository holds customer history used for personalization.
type CustomerRepository interface {
	// FindPreferences returns nil when the customer is unknown.
	FindPreferences(ctx context.Context, shopID, customerID string) (*entity.CustomerPreferences, error)

	AppendRecommendationLog(ctx context.Context, log *entity.RecommendationLog) error
}
