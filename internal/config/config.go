package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the runtime settings for the explorer. Every field has a
// compiled-in default matching the original client, so an empty environment
// works out of the box.
type Config struct {
	// BaseURL is the root of the remote catalog API.
	BaseURL string `env:"EXPLORER_BASE_URL" envDefault:"https://pokeapi.co/api/v2/"`

	// PageSize is the number of member references resolved per page.
	PageSize int `env:"EXPLORER_PAGE_SIZE" envDefault:"15"`

	// DBPath is the favorites store DSN. A plain file path opens an embedded
	// SQLite database; a DSN containing '@' selects MySQL.
	DBPath string `env:"EXPLORER_DB_PATH" envDefault:"data/favorites.db"`

	// HTTPTimeout bounds every remote round trip.
	HTTPTimeout time.Duration `env:"EXPLORER_HTTP_TIMEOUT" envDefault:"15s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
