package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the service.
type Config struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	DBPath   string `envconfig:"DB_PATH" default:"remittance.db"`
	SeedPath string `envconfig:"SEED_PATH" default:"testdata/fixture.json"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// OrderNamePrefixLen is the width of the order-series prefix dropped
	// from the sanitized order name when deriving filenames. The order
	// naming series is an external contract, so the width is configuration
	// rather than a constant.
	OrderNamePrefixLen int `envconfig:"ORDER_NAME_PREFIX_LEN" default:"4"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
