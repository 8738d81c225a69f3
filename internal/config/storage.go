package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageBolt     = "bolt"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// StorageConfig selects and configures the client storage backend
type StorageConfig struct {
	Driver      string
	BoltPath    string
	RedisURL    string
	RedisPrefix string
	RedisTTL    time.Duration
}

// LoadStorageConfig loads storage configuration from environment variables
func LoadStorageConfig(getenv func(string) string) (*StorageConfig, error) {
	config := &StorageConfig{
		Driver:      getenv("STORAGE_DRIVER"),
		BoltPath:    getenv("BOLT_PATH"),
		RedisURL:    getenv("REDIS_URL"),
		RedisPrefix: getenv("REDIS_PREFIX"),
	}

	if ttl := getenv("REDIS_TTL"); ttl != "" {
		d, err := cast.ToDurationE(ttl)
		if err != nil {
			return nil, fmt.Errorf("REDIS_TTL is not a duration: %w", err)
		}
		config.RedisTTL = d
	}

	if config.Driver == "" {
		config.Driver = StorageBolt
	}

	switch config.Driver {
	case StorageMemory, StoragePostgres:
	case StorageBolt:
		if config.BoltPath == "" {
			config.BoltPath = "storefront.db"
		}
	case StorageRedis:
		if config.RedisURL == "" {
			config.RedisURL = "redis://localhost:6379/0"
		}
		if config.RedisPrefix == "" {
			config.RedisPrefix = "storefront"
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", config.Driver)
	}

	return config, nil
}
