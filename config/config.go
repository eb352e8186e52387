package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries every runtime knob for the game. Values come from the
// environment, with an optional .env file loaded first.
type Config struct {
	Packs        int           `env:"BLACKJACK_PACKS" envDefault:"6"`
	Seed         int64         `env:"BLACKJACK_SEED" envDefault:"0"`
	DealerDelay  time.Duration `env:"BLACKJACK_DEALER_DELAY" envDefault:"1s"`
	DatabasePath string        `env:"BLACKJACK_DB" envDefault:"blackjack.db"`
	Debug        bool          `env:"BLACKJACK_DEBUG" envDefault:"false"`
}

// Load reads configuration from a .env file (if present) and the
// environment, then validates it.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Packs < 1 {
		return nil, fmt.Errorf("BLACKJACK_PACKS must be at least 1, got %d", cfg.Packs)
	}
	if cfg.DealerDelay < 0 {
		return nil, fmt.Errorf("BLACKJACK_DEALER_DELAY must not be negative, got %s", cfg.DealerDelay)
	}

	return cfg, nil
}

// PersistenceDisabled reports whether the stats database was turned off
// with the "-" path.
func (c *Config) PersistenceDisabled() bool {
	return c.DatabasePath == "-"
}
