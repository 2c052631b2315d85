// Package kvstore contains the flat key-value keyspace backends. Every piece
// of application state is one key mapped to a raw JSON value; higher layers do
// whole-value read-modify-write and never rely on partial updates.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has never been written. Callers treat
// it as "use defaults".
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is the key-value capability injected into the persistence layer.
type Store interface {
	// Get retrieves the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
