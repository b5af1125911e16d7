package usecase

import (
	"context"

	"slotwise/internal/domain/entity"
)

// SettingsUsecase resolves the per-shop configuration passed into every
// scoring, eligibility and delivery decision.
type SettingsUsecase interface {
	// Resolve returns the shop's stored settings with unset fields taken
	// from the service defaults.
	Resolve(ctx context.Context, shopID string) (entity.ShopSettings, error)
}
