// Package repo implements the content repositories behind the public
// site and the admin panel. Each repository owns one storage key and
// seeds it with compiled-in defaults the first time it is read.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// Storage keys. The version suffix forces a reseed when the compiled-in
// defaults change shape.
const (
	keyProjects   = "jp_projects_v3"
	keyCategories = "jp_categories_v3"
	keyServices   = "jp_services_v1"
	keySettings   = "jp_settings_v1"
	keyClients    = "jp_clients_v1"
)

// Error represents an error type for repository operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates the record does not exist.
	ErrNotFound Error = "record not found"

	// ErrDuplicateName indicates a category name collision
	// (case-insensitive).
	ErrDuplicateName Error = "name already exists"
)

// collection ties one storage key to its seed dataset and JSON codec.
type collection[T any] struct {
	store store.Store
	key   string
	seed  func() []T
}

// load returns the stored list, seeding the key on first read. An
// absent key is written with the seed so later reads are stable; a
// present but unparseable value falls back to the seed WITHOUT
// rewriting the key, so seeding never overwrites existing data.
func (c collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, store.ErrNotFound) {
		seeded := c.seed()
		if err := c.save(ctx, seeded); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", c.key, err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("stored payload is corrupt, serving compiled-in defaults",
			"key", c.key, "error", err)
		return c.seed(), nil
	}
	return items, nil
}

// save persists the full list under the collection's key.
func (c collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("writing %s: %w", c.key, err)
	}
	return nil
}
