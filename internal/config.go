// Package internal holds process-level glue: configuration, logging and
// migration plumbing shared by the server entrypoint.
package internal

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration, loaded from the environment
// with an optional .env file for local development.
type Config struct {
	Env         string
	LogLevel    string
	Port        uint16
	DatabaseURL string
	NATSURL     string // empty disables event publishing

	SessionSecret string
	SessionTTL    time.Duration

	MetricsNamespace string
}

// NewConfig loads configuration from the environment. Only the database
// URL and session secret are mandatory.
func NewConfig() (*Config, error) {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("METRICS_NAMESPACE", "portal")

	cfg := &Config{
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		Port:             uint16(v.GetUint32("PORT")),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		NATSURL:          v.GetString("NATS_URL"),
		SessionSecret:    v.GetString("SESSION_SECRET"),
		SessionTTL:       v.GetDuration("SESSION_TTL"),
		MetricsNamespace: v.GetString("METRICS_NAMESPACE"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	return cfg, nil
}
