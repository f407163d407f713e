package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	App     AppConfig
	Fixture FixtureConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

type FixtureConfig struct {
	// Path of a YAML chain fixture. Empty selects the embedded default.
	Path string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Environment: getEnvOneOf("APP_ENV", "development", "development", "production"),
			LogLevel:    getEnvLevel("LOG_LEVEL", ""),
		},
		Fixture: FixtureConfig{
			Path: getEnv("CHAIN_FIXTURE", ""),
		},
	}

	if cfg.Fixture.Path != "" {
		if _, err := os.Stat(cfg.Fixture.Path); err != nil {
			return nil, fmt.Errorf("chain fixture: %w", err)
		}
	}

	return cfg, nil
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOneOf(key, defaultValue string, allowed ...string) string {
	value := strings.ToLower(getEnv(key, defaultValue))
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	fmt.Printf("Warning: invalid value %q for %s, using default\n", value, key)
	return defaultValue
}

func getEnvLevel(key, defaultValue string) string {
	value := getEnv(key, defaultValue)
	if value == "" {
		return value
	}
	if _, err := zapcore.ParseLevel(value); err != nil {
		fmt.Printf("Warning: invalid log level for %s, using default\n", key)
		return defaultValue
	}
	return strings.ToLower(value)
}
