package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
// Repositories translate it into their empty default value.
var ErrKeyNotFound = errors.New("key not found")

// Store defines the durable key-value storage port. Keys hold JSON blobs and
// survive restarts; there is no expiration. Different storefront flows use
// distinct keys as separate namespaces and never share them.
type Store interface {
	// Get retrieves the raw value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks if the storage backend is reachable.
	Ping(ctx context.Context) error

	// Close closes the storage connection.
	Close() error
}
