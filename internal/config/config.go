package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the server needs from the environment
type Config struct {
	ServerPort string

	// Session
	SessionSecret string

	// Redis session store; empty RedisAddr falls back to the
	// in-memory store (single-instance dev runs only).
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CORS
	FrontendOrigin string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     "8080",
		FrontendOrigin: "http://localhost:5500",
		LogLevel:       "info",
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.ServerPort = port
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		cfg.FrontendOrigin = origin
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
