package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config of the ssh demo server.
type Config struct {
	BindAddr           string        `env:"WHIRL_BIND_ADDR" envDefault:":2222"`
	HostKeyFile        string        `env:"WHIRL_HOST_KEY_FILE,required"`
	AuthorizedKeysFile string        `env:"WHIRL_AUTHORIZED_KEYS_FILE"`
	Interval           time.Duration `env:"WHIRL_INTERVAL" envDefault:"80ms"`
	DemoDuration       time.Duration `env:"WHIRL_DEMO_DURATION" envDefault:"3s"`
	Algorithm          string        `env:"WHIRL_ALGORITHM" envDefault:"wcwidth"`
	IdleTimeout        time.Duration `env:"WHIRL_IDLE_TIMEOUT" envDefault:"1m"`
	MaxTimeout         time.Duration `env:"WHIRL_MAX_TIMEOUT" envDefault:"10m"`
}

func LoadConfig() (*Config, error) {
	return LoadConfigFromEnv(nil)
}

// LoadConfigFromEnv reads the config from environment, a nil map means the
// process environment.
func LoadConfigFromEnv(environ map[string]string) (*Config, error) {
	var opts env.Options
	if environ != nil {
		opts.Environment = environ
	}

	var config Config
	if err := env.ParseWithOptions(&config, opts); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}

	if config.Interval <= 0 {
		return nil, fmt.Errorf("WHIRL_INTERVAL must be positive")
	}
	if config.DemoDuration <= 0 {
		return nil, fmt.Errorf("WHIRL_DEMO_DURATION must be positive")
	}

	return &config, nil
}
