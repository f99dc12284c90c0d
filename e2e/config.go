package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Colours     bool          `envconfig:"E2E_COLOURS" default:"true"`
	ReadTimeout time.Duration `envconfig:"E2E_READ_TIMEOUT" default:"5s"`
	RecordTTL   time.Duration `envconfig:"E2E_RECORD_TTL" default:"10m"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
