package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Ingest   IngestConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port       int
	Env        string
	LogLevel   string
	Timezone   string
	SchemaFile string
}

// IngestConfig holds knobs for the message ingestion pipeline.
type IngestConfig struct {
	// DedupWindow is how many recent message-log entries are consulted
	// when checking whether a message id was already processed.
	DedupWindow int

	// FutureDayLimit is the threshold (in days) past which a bare month/day
	// date is assumed to belong to the previous year.
	FutureDayLimit int

	// ChannelSecret enables webhook signature verification when non-empty.
	ChannelSecret string
}

func Load() (*Config, error) {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "genbaflow"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Timezone:   getEnv("TIMEZONE", "Asia/Tokyo"),
		SchemaFile: getEnv("SCHEMA_FILE", "config/collections.yaml"),
	}

	// Ingestion configuration
	dedupWindow, err := strconv.Atoi(getEnv("DEDUP_WINDOW", "2000"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEDUP_WINDOW: %w", err)
	}

	futureDayLimit, err := strconv.Atoi(getEnv("FUTURE_DAY_LIMIT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid FUTURE_DAY_LIMIT: %w", err)
	}

	config.Ingest = IngestConfig{
		DedupWindow:    dedupWindow,
		FutureDayLimit: futureDayLimit,
		ChannelSecret:  getEnv("LINE_CHANNEL_SECRET", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Ingest.DedupWindow <= 0 {
		return fmt.Errorf("DEDUP_WINDOW must be positive")
	}
	if c.Ingest.FutureDayLimit <= 0 {
		return fmt.Errorf("FUTURE_DAY_LIMIT must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return nil
}

// Location returns the configured timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
