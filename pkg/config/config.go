package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Environment
	Env string `mapstructure:"ENV"`

	// FPL API
	FPLBaseURL      string        `mapstructure:"FPL_BASE_URL"`
	FPLUserAgent    string        `mapstructure:"FPL_USER_AGENT"`
	FPLTimeout      time.Duration `mapstructure:"FPL_TIMEOUT"`
	FPLRateLimit    float64       `mapstructure:"FPL_RATE_LIMIT"`
	BreakerMaxFails uint32        `mapstructure:"BREAKER_MAX_FAILS"`

	// Snapshot cache
	RedisURL         string        `mapstructure:"REDIS_URL"`
	SnapshotCacheTTL time.Duration `mapstructure:"SNAPSHOT_CACHE_TTL"`

	// Report output
	OutputPath  string `mapstructure:"OUTPUT_PATH"`
	ReportTitle string `mapstructure:"REPORT_TITLE"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("FPL_BASE_URL", "https://fantasy.premierleague.com/api")
	viper.SetDefault("FPL_USER_AGENT", "fpl-draftboard/1.0")
	viper.SetDefault("FPL_TIMEOUT", "20s")
	viper.SetDefault("FPL_RATE_LIMIT", 2.0) // requests per second
	viper.SetDefault("BREAKER_MAX_FAILS", 5)
	viper.SetDefault("REDIS_URL", "") // empty disables snapshot caching
	viper.SetDefault("SNAPSHOT_CACHE_TTL", "30m")
	viper.SetDefault("OUTPUT_PATH", "fpl_draft_board.html")
	viper.SetDefault("REPORT_TITLE", "FPL Ultimate Draft Tool")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
