package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Juan171109/automation-task/internal/config"
	_ "github.com/lib/pq"
)

var DB *sql.DB

// Connect establishes a connection to the PostgreSQL database backing client storage
func Connect(pgConfig *config.PostgresConfig) error {
	if pgConfig == nil {
		return fmt.Errorf("postgres configuration is required")
	}

	var err error
	DB, err = sql.Open("postgres", pgConfig.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	DB.SetMaxOpenConns(pgConfig.MaxOpenConns)
	DB.SetMaxIdleConns(pgConfig.MaxOpenConns / 2)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
