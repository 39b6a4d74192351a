// Package config loads configuration from environment variables.
// main loads a .env file (godotenv) before Load runs; command flags override the result.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DevJWTSecret signs game tokens when JWT_SECRET is not set.
const DevJWTSecret = "dev_secret_change_me"

// Config holds all application configuration.
type Config struct {
	// Server settings.
	Port         int
	ClientOrigin string        // single origin allowed by CORS
	JWTSecret    string        // HS256 key for game tokens
	GameTTL      time.Duration // idle time before a hosted game is dropped

	// Word supply.
	AnswersFile string // optional path overriding the embedded list
	DailySalt   string

	LogLevel string
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:         envInt("PORT", 5175),
		ClientOrigin: envStr("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:    envStr("JWT_SECRET", DevJWTSecret),
		GameTTL:      envDuration("GAME_TTL", 24*time.Hour),
		AnswersFile:  envStr("WORDS_ANSWERS_FILE", ""),
		DailySalt:    envStr("DAILY_SALT", "local_dev_salt"),
		LogLevel:     envStr("LOG_LEVEL", "info"),
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, errors.New("config: PORT must be between 1 and 65535"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("config: JWT_SECRET must not be empty"))
	}
	if c.GameTTL < 0 {
		errs = append(errs, errors.New("config: GAME_TTL must not be negative"))
	}
	return errors.Join(errs...)
}

// UsesDevSecret reports whether tokens are signed with the built-in development key.
func (c Config) UsesDevSecret() bool { return c.JWTSecret == DevJWTSecret }

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
