// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                   string   `env:"BIND_ADDR"                      flag:"bind-addr"                      flagDesc:"Bind address"`
	Collection                 string   `env:"MONGODB_COLLECTION"             flag:"mongodb-collection"             flagDesc:"MongoDB collection for payment sessions"`
	Database                   string   `env:"MONGODB_DATABASE"               flag:"mongodb-database"               flagDesc:"MongoDB database for data"`
	MongoDBURL                 string   `env:"MONGODB_URL"                    flag:"mongodb-url"                    flagDesc:"MongoDB server URL"`
	OrchestratorURL            string   `env:"PAYMENT_ORCHESTRATOR_URL"       flag:"payment-orchestrator-url"       flagDesc:"Base URL of the Payment Orchestrator"`
	ThreeDSProviderURL         string   `env:"THREE_DS_PROVIDER_URL"          flag:"three-ds-provider-url"          flagDesc:"Base URL of the 3DS authentication provider"`
	ThreeDSProviderBearerToken string   `env:"THREE_DS_PROVIDER_BEARER_TOKEN" flag:"three-ds-provider-bearer-token" flagDesc:"Bearer Token used to authenticate API calls with the 3DS provider"`
	MaxChallengeAttempts       int      `env:"MAX_CHALLENGE_ATTEMPTS"         flag:"max-challenge-attempts"         flagDesc:"Maximum number of challenges that may be issued for one payment session"`
	MaxValidationAttempts      int      `env:"MAX_VALIDATION_ATTEMPTS"        flag:"max-validation-attempts"        flagDesc:"Maximum number of challenge completions before a new challenge is required"`
	ChallengeTimeoutInMinutes  int      `env:"CHALLENGE_TIMEOUT_IN_MINUTES"   flag:"challenge-timeout-in-minutes"   flagDesc:"Minutes a pending challenge stays valid"`
	DownstreamTimeoutInSeconds int      `env:"DOWNSTREAM_TIMEOUT_IN_SECONDS"  flag:"downstream-timeout-in-seconds"  flagDesc:"Timeout applied to calls to downstream services"`
	BrokerAddr                 []string `env:"KAFKA_BROKER_ADDR"              flag:"broker-addr"                    flagDesc:"Kafka broker address"`
	SchemaRegistryURL          string   `env:"SCHEMA_REGISTRY_URL"            flag:"schema-registry-url"            flagDesc:"Schema registry url"`
	PartnerComponentSettings   string   `env:"PARTNER_COMPONENT_SETTINGS"     flag:"partner-component-settings"     flagDesc:"Partner component lists, e.g. partner=Profile|PaymentMethod;other=PaymentMethod"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                   "checkout",
		Collection:                 "payment_sessions",
		MaxChallengeAttempts:       3,
		MaxValidationAttempts:      3,
		ChallengeTimeoutInMinutes:  10,
		DownstreamTimeoutInSeconds: 10,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
