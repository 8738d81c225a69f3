package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Juan171109/automation-task/internal/database"
	"github.com/Juan171109/automation-task/internal/storage"
)

// ClientStorageRepository persists client storage entries in PostgreSQL
type ClientStorageRepository struct {
	db *sql.DB
}

// NewClientStorageRepository creates a new client storage repository
func NewClientStorageRepository() *ClientStorageRepository {
	return &ClientStorageRepository{
		db: database.DB,
	}
}

// NewClientStorageRepositoryWithDB creates a new client storage repository with a specific database connection
func NewClientStorageRepositoryWithDB(db *sql.DB) *ClientStorageRepository {
	return &ClientStorageRepository{
		db: db,
	}
}

// Get retrieves the value stored under namespace and key
func (r *ClientStorageRepository) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM client_storage
		WHERE namespace = $1 AND key = $2
	`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, namespace, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get client storage entry: %w", err)
	}

	return value, nil
}

// Put inserts or replaces the value stored under namespace and key
func (r *ClientStorageRepository) Put(ctx context.Context, namespace, key string, value []byte) error {
	query := `
		INSERT INTO client_storage (namespace, key, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, namespace, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to put client storage entry: %w", err)
	}

	return nil
}

// Delete removes the value stored under namespace and key
func (r *ClientStorageRepository) Delete(ctx context.Context, namespace, key string) error {
	query := `
		DELETE FROM client_storage
		WHERE namespace = $1 AND key = $2
	`

	if _, err := r.db.ExecContext(ctx, query, namespace, key); err != nil {
		return fmt.Errorf("failed to delete client storage entry: %w", err)
	}

	return nil
}

// Close is a no-op; the connection is owned by the database package
func (r *ClientStorageRepository) Close() error {
	return nil
}

var _ storage.Backend = (*ClientStorageRepository)(nil)
