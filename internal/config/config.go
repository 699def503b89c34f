// Package config loads runtime settings from the environment. A local .env
// file is read first when present; explicit environment variables win.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Mock   MockConfig   `yaml:"mock"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"`
}

// MockConfig shapes the generated dataset. A zero seed picks a time-based
// one, so set MOCK_SEED for reproducible runs.
type MockConfig struct {
	Seed      int64 `yaml:"seed"       env:"MOCK_SEED"       env-default:"0"`
	UserCount int   `yaml:"user_count" env:"MOCK_USER_COUNT" env-default:"40"`
	PostCount int   `yaml:"post_count" env:"MOCK_POST_COUNT" env-default:"30"`
	PageSize  int   `yaml:"page_size"  env:"MOCK_PAGE_SIZE"  env-default:"6"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads .env (if present), then the environment over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mock.UserCount < 1 {
		return fmt.Errorf("MOCK_USER_COUNT must be at least 1, got %d", c.Mock.UserCount)
	}
	if c.Mock.PostCount < 0 {
		return fmt.Errorf("MOCK_POST_COUNT must not be negative, got %d", c.Mock.PostCount)
	}
	if c.Mock.PageSize < 1 {
		return fmt.Errorf("MOCK_PAGE_SIZE must be at least 1, got %d", c.Mock.PageSize)
	}
	return nil
}

// MustLoad is Load for main funcs that cannot continue without config.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}
