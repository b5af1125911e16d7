package entity

// Default per-shop tuning values.
const (
	DefaultSlotTopK          = 3
	DefaultLocationTopK      = 1
	DefaultMaxDistanceKm     = 50.0
	DefaultEventRetryCeiling = 5
	DefaultHorizonDays       = 14
)

// ShopSettings is the merchant's recommendation and delivery configuration.
// It is resolved per call and passed explicitly.
type ShopSettings struct {
	ShopID                 string
	RecommendationsEnabled bool
	Weights                Weights
	SlotTopK               int
	LocationTopK           int
	MaxDistanceKm          float64
	EventRetryCeiling      int
	WebhookURL             string
	HorizonDays            int
}

// DefaultShopSettings returns settings used when a shop has none stored.
func DefaultShopSettings(shopID string) ShopSettings {
	return ShopSettings{
		ShopID:                 shopID,
		RecommendationsEnabled: true,
		Weights:                DefaultWeights(),
		SlotTopK:               DefaultSlotTopK,
		LocationTopK:           DefaultLocationTopK,
		MaxDistanceKm:          DefaultMaxDistanceKm,
		EventRetryCeiling:      DefaultEventRetryCeiling,
		HorizonDays:            DefaultHorizonDays,
	}
}

// WithDefaults fills zero-valued tuning fields from defaults.
func (s ShopSettings) WithDefaults(defaults ShopSettings) ShopSettings {
	if s.Weights == (Weights{}) {
		s.Weights = defaults.Weights
	}
	if s.SlotTopK <= 0 {
		s.SlotTopK = defaults.SlotTopK
	}
	if s.LocationTopK <= 0 {
		s.LocationTopK = defaults.LocationTopK
	}
	if s.MaxDistanceKm <= 0 {
		s.MaxDistanceKm = defaults.MaxDistanceKm
	}
	if s.EventRetryCeiling <= 0 {
		s.EventRetryCeiling = defaults.EventRetryCeiling
	}
	if s.HorizonDays <= 0 {
		s.HorizonDays = defaults.HorizonDays
	}

	return s
}
