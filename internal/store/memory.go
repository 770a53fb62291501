package store

import (
	"context"
	"sync"
	"sync/atomic"
)

// Memory is a thread-safe in-memory store. Data does not survive a
// restart, which makes it suitable for tests and ephemeral runs.
type Memory struct {
	data   sync.Map
	closed atomic.Bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get retrieves a value from the store.
func (s *Memory) Get(_ context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	val, ok := s.data.Load(key)
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent mutation by the caller.
	stored := val.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value under the given key.
func (s *Memory) Set(_ context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return ErrClosed
	}

	// Copy the value so later caller mutations don't leak into the store.
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data.Store(key, stored)
	return nil
}

// Delete removes a key from the store.
func (s *Memory) Delete(_ context.Context, key string) error {
	if s.closed.Load() {
		return ErrClosed
	}

	s.data.Delete(key)
	return nil
}

// Close marks the store as closed. Subsequent operations fail with ErrClosed.
func (s *Memory) Close() error {
	s.closed.Store(true)
	return nil
}
