package config

import (
	"fmt"

	"github.com/spf13/cast"
)

// LogConfig holds logger settings
type LogConfig struct {
	Mode       string
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// LoadLogConfig loads logging configuration from environment variables
func LoadLogConfig(getenv func(string) string) (*LogConfig, error) {
	config := &LogConfig{
		Mode:       getenv("LOG_MODE"),
		Level:      getenv("LOG_LEVEL"),
		File:       getenv("LOG_FILE"),
		MaxSizeMB:  cast.ToInt(getenv("LOG_MAX_SIZE_MB")),
		MaxBackups: cast.ToInt(getenv("LOG_MAX_BACKUPS")),
	}

	switch config.Mode {
	case "":
		config.Mode = "development"
	case "development", "production":
	default:
		return nil, fmt.Errorf("LOG_MODE must be development or production, got %q", config.Mode)
	}
	if config.Level == "" {
		config.Level = "info"
	}
	if config.MaxSizeMB <= 0 {
		config.MaxSizeMB = 64
	}
	if config.MaxBackups <= 0 {
		config.MaxBackups = 7
	}

	return config, nil
}
