package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendSQLite = "sqlite"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	API     APIConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	Backend string
	// Path is only consulted by the sqlite backend. ":memory:" keeps the
	// database process-local like the default memory store.
	Path           string
	SeedSampleData bool
}

type APIConfig struct {
	RateLimitRPS int
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Backend:        getEnv("STORE_BACKEND", StoreBackendMemory),
			Path:           getEnv("DB_PATH", ":memory:"),
			SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", true),
		},
		API: APIConfig{
			RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 20),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Store.Backend != StoreBackendMemory && c.Store.Backend != StoreBackendSQLite {
		return fmt.Errorf("invalid store backend: %s", c.Store.Backend)
	}

	if c.API.RateLimitRPS < 1 {
		return fmt.Errorf("invalid rate limit: %d", c.API.RateLimitRPS)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
