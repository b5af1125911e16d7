package repository

import (
	"context"

	"slotwise/internal/domain/entity"
)

// CatalogRepository reads a shop's scheduling configuration. Editing it is
// owned by the admin surface, so this side is read-only.
type CatalogRepository interface {
	// LoadCatalog returns the zones, locations, rules and templates of a shop.
	LoadCatalog(ctx context.Context, shopID string) (*entity.Catalog, error)

	// FindShopSettings returns the stored settings, or nil if the shop has none.
	FindShopSettings(ctx context.Context, shopID string) (*entity.ShopSettings, error)
}
