// Package config loads runtime configuration from environment variables.
// A .env file, when present, is loaded by main before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the top-level runtime configuration.  DatabaseURL is
// optional: without it the service falls back to the in-memory seed
// catalog and /v1/dbtest reports the missing URL.
type Config struct {
	Env         string `validate:"required"` // application environment (dev/test/prod)
	Port        string `validate:"required,numeric"`
	DatabaseURL string // raw catalog database URL, normalized by the database package
	DeckLimit   int    `validate:"gte=1"` // maximum number of cards per generated deck
	AMQPURL     string // RabbitMQ URL for deck.generated events; empty disables publishing
	LogLevel    string `validate:"required"`
}

// Load reads the configuration and validates it.  Defaults keep a bare
// environment bootable; only nonsense values (an unparsable port, a zero
// deck limit) are rejected.
func Load() (Config, error) {
	cfg := Config{
		Env:         envStr("APP_ENV", "dev"),
		Port:        envStr("APP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DeckLimit:   envInt("DECK_LIMIT", 20),
		AMQPURL:     firstEnv("RABBITMQ_URL", "AMQP_URL"),
		LogLevel:    envStr("LOG_LEVEL", "info"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// firstEnv returns the first non-empty value among the given variables.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
