package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. An empty DBPath keeps sign-ups
// log-only; setting it enables the SQLite subscriber store.
type Config struct {
	HTTPAddr           string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel           slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SiteDir            string     `env:"SITE_DIR" envDefault:"public"`
	DBPath             string     `env:"DB_PATH"`
	CORSAllowedOrigins []string   `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	OpenSky OpenSky `envPrefix:"OPENSKY_"`
}

// OpenSky holds flight lookup credentials. Lookups answer 501 until both
// Username and Password are set.
type OpenSky struct {
	BaseURL  string        `env:"BASE_URL" envDefault:"https://opensky-network.org/api"`
	Username string        `env:"USERNAME"`
	Password string        `env:"PASSWORD"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
