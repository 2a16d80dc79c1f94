// Package config loads generator defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config holds the defaults used by the CLI. Flags override every field.
type Config struct {
	Rows          int    `env:"XLSXGEN_ROWS" envDefault:"1000000"`
	BalanceFile   string `env:"XLSXGEN_BALANCE_FILE" envDefault:"balance_data.xlsx"`
	UserInfoFile  string `env:"XLSXGEN_USERINFO_FILE" envDefault:"userinfo_data.xlsx"`
	ProgressEvery int    `env:"XLSXGEN_PROGRESS_EVERY" envDefault:"100000"`
	// Seed of 0 selects a time-based seed.
	Seed     uint64 `env:"XLSXGEN_SEED" envDefault:"0"`
	LogLevel string `env:"XLSXGEN_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
