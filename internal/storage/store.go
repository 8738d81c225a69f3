// Package storage holds the client storage abstraction: a small keyed blob
// store per client, backed by a namespaced durable backend.
package storage

import (
	"context"
	"errors"
)

// Well-known keys
const (
	KeyBasket      = "basket"
	KeyUserSession = "userSession"
)

// Storage errors
var (
	ErrNotFound     = errors.New("storage key not found")
	ErrCorruptState = errors.New("stored state is corrupt")
)

// Store is the key space of a single client
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Backend is durable storage shared by every client, partitioned by namespace
type Backend interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Put(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
	Close() error
}

type scopedStore struct {
	backend   Backend
	namespace string
}

// Scope returns the Store for one namespace of backend
func Scope(backend Backend, namespace string) Store {
	return &scopedStore{backend: backend, namespace: namespace}
}

func (s *scopedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.backend.Get(ctx, s.namespace, key)
}

func (s *scopedStore) Put(ctx context.Context, key string, value []byte) error {
	return s.backend.Put(ctx, s.namespace, key, value)
}

func (s *scopedStore) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, s.namespace, key)
}
