package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Contas"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// Path of the SQLite file holding the ledger.
		Path string `envconfig:"DB_PATH" default:"contas.db"`
	}

	Demo struct {
		// Seed fills an empty ledger with sample transactions on startup.
		Seed bool `envconfig:"SEED_DEMO" default:"false"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
