package postgres

import (
	"context"

	"slotwise/internal/domain/entity"
	"slotwise/internal/domain/repository"
	"slotwise/internal/errors"
	"slotwise/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// LoadCatalog reads every zone, location, rule and template of a shop.
func (repo *catalogRepository) LoadCatalog(ctx context.Context, shopID string) (*entity.Catalog, error) {
	db := repo.db.WithContext(ctx)

	var locationModels []*model.LocationModel
	if err := db.Where("shop_id = ?", shopID).Order("id").Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	var zoneModels []*model.ZoneModel
	if err := db.Where("shop_id = ?", shopID).Order("priority DESC, created_at DESC, id DESC").Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find zones")
	}

	var ruleModels []*model.RuleModel
	if err := db.Where("shop_id = ?", shopID).Order("id").Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rules")
	}

	var templateModels []*model.SlotTemplateModel
	if err := db.Where("shop_id = ?", shopID).Order("location_id, weekday, start_minute, id").Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find slot templates")
	}

	catalog := &entity.Catalog{
		Zones:     make([]*entity.Zone, 0, len(zoneModels)),
		Locations: make([]*entity.Location, 0, len(locationModels)),
		Rules:     make([]*entity.Rule, 0, len(ruleModels)),
		Templates: make([]*entity.SlotTemplate, 0, len(templateModels)),
	}
	for _, locationM := range locationModels {
		catalog.Locations = append(catalog.Locations, toLocationDomain(locationM))
	}
	for _, zoneM := range zoneModels {
		catalog.Zones = append(catalog.Zones, toZoneDomain(zoneM))
	}
	for _, ruleM := range ruleModels {
		rule, err := toRuleDomain(ruleM)
		if err != nil {
			return nil, err
		}
		catalog.Rules = append(catalog.Rules, rule)
	}
	for _, templateM := range templateModels {
		catalog.Templates = append(catalog.Templates, toSlotTemplateDomain(templateM))
	}

	return catalog, nil
}

// FindShopSettings returns nil without error when the shop stored no settings.
func (repo *catalogRepository) FindShopSettings(ctx context.Context, shopID string) (*entity.ShopSettings, error) {
	var settingsM model.ShopSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find shop settings")
	}

	return toShopSettingsDomain(&settingsM), nil
}

func toLocationDomain(data *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:         data.ID,
		ShopID:     data.ShopID,
		Name:       data.Name,
		Address:    data.Address,
		Coordinate: coordinateOf(data.Latitude, data.Longitude),
		Timezone:   data.Timezone,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toZoneDomain(data *model.ZoneModel) *entity.Zone {
	fulfillmentTypes := make([]entity.FulfillmentType, 0, len(data.FulfillmentTypes))
	for _, ft := range data.FulfillmentTypes {
		fulfillmentTypes = append(fulfillmentTypes, entity.FulfillmentType(ft))
	}

	zone := &entity.Zone{
		ID:               data.ID,
		ShopID:           data.ShopID,
		Name:             data.Name,
		Priority:         data.Priority,
		FulfillmentTypes: fulfillmentTypes,
		LocationIDs:      data.LocationIDs,
		Coverage: entity.Coverage{
			Kind:              entity.CoverageKind(data.CoverageKind),
			RangeFrom:         data.RangeFrom,
			RangeTo:           data.RangeTo,
			Postcodes:         data.Postcodes,
			RadiusKm:          data.RadiusKm,
			ExcludedPostcodes: data.ExcludedPostcodes,
		},
		CreatedAt: data.CreatedAt,
	}
	if data.RadiusLocationID != nil {
		zone.Coverage.RadiusLocationID = *data.RadiusLocationID
	}

	return zone
}

func toRuleDomain(data *model.RuleModel) (*entity.Rule, error) {
	rule := &entity.Rule{
		ID:                  data.ID,
		ShopID:              data.ShopID,
		Scope:               entity.RuleScope(data.Scope),
		ScopeID:             data.ScopeID,
		LeadTime:            secondsToDuration(data.LeadTimeSeconds),
		DefaultSlotDuration: secondsToDuration(data.DefaultSlotDurationSeconds),
		DefaultCapacity:     data.DefaultCapacity,
	}
	if data.CutoffMinute != nil {
		cutoff := entity.TimeOfDay(*data.CutoffMinute)
		rule.CutoffTime = &cutoff
	}
	for _, raw := range data.BlackoutDates {
		date, err := entity.ParseDate(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %s", data.ID)
		}
		rule.BlackoutDates = append(rule.BlackoutDates, date)
	}

	return rule, nil
}

func toSlotTemplateDomain(data *model.SlotTemplateModel) *entity.SlotTemplate {
	return &entity.SlotTemplate{
		ID:              data.ID,
		ShopID:          data.ShopID,
		LocationID:      data.LocationID,
		FulfillmentType: entity.FulfillmentType(data.FulfillmentType),
		Weekday:         weekday(data.Weekday),
		Start:           entity.TimeOfDay(data.StartMinute),
		End:             entity.TimeOfDay(data.EndMinute),
		Duration:        secondsToDuration(data.DurationSeconds),
		DefaultCapacity: data.DefaultCapacity,
	}
}

func toShopSettingsDomain(data *model.ShopSettingsModel) *entity.ShopSettings {
	return &entity.ShopSettings{
		ShopID:                 data.ShopID,
		RecommendationsEnabled: data.RecommendationsEnabled,
		Weights: entity.Weights{
			Capacity:        data.WeightCapacity,
			Distance:        data.WeightDistance,
			RouteEfficiency: data.WeightRouteEfficiency,
			Personalization: data.WeightPersonalization,
		},
		SlotTopK:          data.SlotTopK,
		LocationTopK:      data.LocationTopK,
		MaxDistanceKm:     data.MaxDistanceKm,
		EventRetryCeiling: data.EventRetryCeiling,
		WebhookURL:        data.WebhookURL,
		HorizonDays:       data.HorizonDays,
	}
}
