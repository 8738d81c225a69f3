package storage

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var rootBucket = []byte("client_storage")

// BoltBackend stores client data in a local bbolt file, one nested bucket
// per namespace.
type BoltBackend struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the bbolt file at path
func OpenBolt(path string) (*BoltBackend, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(rootBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create storage bucket: %w", err)
	}

	return &BoltBackend{db: db}, nil
}

func (b *BoltBackend) Get(_ context.Context, namespace, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		ns := tx.Bucket(rootBucket).Bucket([]byte(namespace))
		if ns == nil {
			return ErrNotFound
		}
		v := ns.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// values are only valid for the life of the transaction
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *BoltBackend) Put(_ context.Context, namespace, key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		ns, err := tx.Bucket(rootBucket).CreateBucketIfNotExists([]byte(namespace))
		if err != nil {
			return err
		}
		return ns.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (b *BoltBackend) Delete(_ context.Context, namespace, key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		ns := tx.Bucket(rootBucket).Bucket([]byte(namespace))
		if ns == nil {
			return nil
		}
		return ns.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
