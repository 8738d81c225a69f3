package config

import (
	"fmt"

	"github.com/spf13/cast"
)

// PostgresConfig holds configuration for the PostgreSQL storage backend
type PostgresConfig struct {
	User         string
	Password     string
	Database     string
	Host         string
	SSLMode      string
	MaxOpenConns int
}

// LoadPostgresConfig loads PostgreSQL configuration from environment variables
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	config := &PostgresConfig{
		User:         getenv("POSTGRES_USER"),
		Password:     getenv("POSTGRES_PASSWORD"),
		Database:     getenv("POSTGRES_DB"),
		Host:         getenv("POSTGRES_HOSTNAME"),
		SSLMode:      getenv("POSTGRES_SSLMODE"),
		MaxOpenConns: cast.ToInt(getenv("POSTGRES_MAX_OPEN_CONNS")),
	}

	// Validate required fields
	if config.User == "" {
		return nil, fmt.Errorf("POSTGRES_USER is required")
	}
	if config.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if config.Database == "" {
		return nil, fmt.Errorf("POSTGRES_DB is required")
	}
	if config.Host == "" {
		return nil, fmt.Errorf("POSTGRES_HOSTNAME is required")
	}
	if config.SSLMode == "" {
		config.SSLMode = "disable"
	}
	if config.MaxOpenConns <= 0 {
		config.MaxOpenConns = 25
	}

	return config, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.SSLMode)
}
