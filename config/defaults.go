package config

import (
	"slices"
	"time"

	"slotwise/internal/domain/constants"
	"slotwise/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	defaultScoringTimeout = 200 * time.Millisecond
	defaultInitialBackoff = time.Second
	defaultMaxBackoff     = 5 * time.Minute
	defaultPollInterval   = 2 * time.Second
	defaultLeaseDuration  = 30 * time.Second
	defaultBatchSize      = 50
	defaultHTTPTimeout    = 10 * time.Second
	defaultWorkers        = 4
)

func (c *Config) applyDefaults() {
	if c.Ledger == nil {
		c.Ledger = &LedgerConfig{}
	}
	if c.Ledger.Backend == "" {
		c.Ledger.Backend = constants.LedgerBackendPostgres
	}

	if c.Scheduling == nil {
		c.Scheduling = &SchedulingConfig{}
	}
	s := c.Scheduling
	if s.Weights == (entity.Weights{}) {
		s.Weights = entity.DefaultWeights()
	}
	if s.SlotTopK <= 0 {
		s.SlotTopK = entity.DefaultSlotTopK
	}
	if s.LocationTopK <= 0 {
		s.LocationTopK = entity.DefaultLocationTopK
	}
	if s.MaxDistanceKm <= 0 {
		s.MaxDistanceKm = entity.DefaultMaxDistanceKm
	}
	if s.HorizonDays <= 0 {
		s.HorizonDays = entity.DefaultHorizonDays
	}
	if s.ScoringTimeout <= 0 {
		s.ScoringTimeout = defaultScoringTimeout
	}

	if c.Events == nil {
		c.Events = &EventsConfig{}
	}
	e := c.Events
	if e.Provider == "" {
		e.Provider = constants.PublisherProviderNoop
	}
	if e.MaxAttempts <= 0 {
		e.MaxAttempts = entity.DefaultEventRetryCeiling
	}
	if e.InitialBackoff <= 0 {
		e.InitialBackoff = defaultInitialBackoff
	}
	if e.MaxBackoff <= 0 {
		e.MaxBackoff = defaultMaxBackoff
	}
	if e.PollInterval <= 0 {
		e.PollInterval = defaultPollInterval
	}
	if e.LeaseDuration <= 0 {
		e.LeaseDuration = defaultLeaseDuration
	}
	if e.BatchSize <= 0 {
		e.BatchSize = defaultBatchSize
	}
	if e.HTTPTimeout <= 0 {
		e.HTTPTimeout = defaultHTTPTimeout
	}
	if e.Workers <= 0 {
		e.Workers = defaultWorkers
	}

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}
	if c.Kafka == nil {
		c.Kafka = &KafkaConfig{}
	}
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	backends := []string{constants.LedgerBackendMemory, constants.LedgerBackendPostgres, constants.LedgerBackendRedis}
	if !slices.Contains(backends, c.Ledger.Backend) {
		return errors.Errorf("unknown ledger backend %q", c.Ledger.Backend)
	}
	if c.Ledger.Backend == constants.LedgerBackendRedis && len(c.Ledger.Redis.Addrs) == 0 {
		return errors.New("ledger.redis.addrs is required for the redis backend")
	}

	if c.Scheduling.Weights.Negative() {
		return errors.New("scheduling.weights must not be negative")
	}

	switch c.Events.Provider {
	case constants.PublisherProviderNoop:
	case constants.PublisherProviderWebhook:
		if c.Events.WebhookSecret == "" {
			return errors.New("events.webhookSecret is required for the webhook provider")
		}
	case constants.PublisherProviderGoogle:
		if c.PubSub.ProjectID == "" || c.PubSub.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	case constants.PublisherProviderKafka:
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return errors.New("kafka.brokers and kafka.topic are required for the kafka provider")
		}
	case constants.PublisherProviderLocal:
		if c.Events.LocalEndpoint == "" {
			return errors.New("events.localEndpoint is required for the local provider")
		}
	default:
		return errors.Errorf("unknown events provider %q", c.Events.Provider)
	}

	if c.Events.DeadLetterTopic != "" && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers is required when events.deadLetterTopic is set")
	}

	return nil
}

// ShopDefaults returns the settings applied to shops without stored ones.
func (c *Config) ShopDefaults(shopID string) entity.ShopSettings {
	settings := entity.DefaultShopSettings(shopID)
	if c.Scheduling != nil {
		settings.Weights = c.Scheduling.Weights
		settings.SlotTopK = c.Scheduling.SlotTopK
		settings.LocationTopK = c.Scheduling.LocationTopK
		settings.MaxDistanceKm = c.Scheduling.MaxDistanceKm
		settings.HorizonDays = c.Scheduling.HorizonDays
	}
	if c.Events != nil {
		settings.EventRetryCeiling = c.Events.MaxAttempts
	}

	return settings.WithDefaults(entity.DefaultShopSettings(shopID))
}
