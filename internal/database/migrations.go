package database

import (
	"fmt"

	"go.uber.org/zap"
)

// ClientStorageSchema creates the client storage table
const ClientStorageSchema = `
	CREATE TABLE IF NOT EXISTS client_storage (
		namespace VARCHAR(64) NOT NULL,
		key VARCHAR(64) NOT NULL,
		value BYTEA NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (namespace, key)
	);

	CREATE INDEX IF NOT EXISTS idx_client_storage_updated_at ON client_storage(updated_at);
	`

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := DB.Exec(ClientStorageSchema); err != nil {
		return fmt.Errorf("failed to create client_storage table: %w", err)
	}

	zap.S().Info("Database migrations completed successfully")
	return nil
}
