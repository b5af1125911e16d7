package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PublisherProviderWebhook = "webhook"
	PublisherProviderGoogle  = "google"
	PublisherProviderKafka   = "kafka"
	PublisherProviderLocal   = "local"
	PublisherProviderNoop    = "noop"
)

// Capacity ledger backends
const (
	LedgerBackendMemory   = "memory"
	LedgerBackendPostgres = "postgres"
	LedgerBackendRedis    = "redis"
)
