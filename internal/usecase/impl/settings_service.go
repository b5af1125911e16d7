package impl

import (
	"context"

	"slotwise/config"
	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
	"slotwise/internal/errors"
	"slotwise/internal/usecase"
)

type settingsService struct {
	catalogRepo repository.CatalogRepository
	config      *config.Config
}

// NewSettingsService creates the shop settings resolver
func NewSettingsService(catalogRepo repository.CatalogRepository, cfg *config.Config) usecase.SettingsUsecase {
	return &settingsService{
		catalogRepo: catalogRepo,
		config:      cfg,
	}
}

func (s *settingsService) Resolve(ctx context.Context, shopID string) (entity.ShopSettings, error) {
	defaults := s.config.ShopDefaults(shopID)

	stored, err := s.catalogRepo.FindShopSettings(ctx, shopID)
	if err != nil {
		return entity.ShopSettings{}, errors.Wrap(err, "failed to load shop settings")
	}
	if stored == nil {
		return defaults, nil
	}

	settings := stored.WithDefaults(defaults)
	settings.ShopID = shopID

	return settings, nil
}
