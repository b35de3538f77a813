// ABOUTME: Environment-driven application configuration
// ABOUTME: Resolves remote base URL, data directory, and HTTP/log settings
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Values come from the environment; a .env
// file loaded at startup may supply them as well.
type Config struct {
	APIBaseURL  string        `env:"CLOSET_API_URL" envDefault:"http://localhost:5000/api"`
	DataDir     string        `env:"CLOSET_DATA_DIR"`
	HTTPTimeout time.Duration `env:"CLOSET_HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"CLOSET_LOG_LEVEL" envDefault:"info"`
	DeviceID    string        `env:"CLOSET_DEVICE_ID"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(xdg.DataHome, "closet")
	}
	return &cfg, nil
}

// DatabasePath returns the Badger database directory under the data dir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "closet.db")
}

// DevicePath returns the persisted device identity file path.
func (c *Config) DevicePath() string {
	return filepath.Join(c.DataDir, "device.json")
}
