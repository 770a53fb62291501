// Package store provides the persistent key-value store backing the
// content repositories. Values are raw bytes; serialization belongs to
// the callers. All implementations must be safe for concurrent use.
package store

import "context"

// Store is the interface all storage backends implement.
type Store interface {
	// Get retrieves the value stored under key.
	// Returns ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Error represents an error type for store operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates the key is not present in the store.
	ErrNotFound Error = "key not found"

	// ErrClosed indicates the store has been closed.
	ErrClosed Error = "store closed"
)
