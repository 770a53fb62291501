package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// Clients is the read-only client-logo repository. Unlike the other
// repositories its seed is never written back: while the key is absent,
// every List recomputes the compiled-in defaults instead of reading a
// persisted copy. Callers observe the same values either way; the
// asymmetry is part of the persisted-state contract and is kept as-is.
type Clients struct {
	store store.Store
}

// NewClients creates a client-logo repository over the given store.
func NewClients(st store.Store) *Clients {
	return &Clients{store: st}
}

// List returns the stored client logos, or the compiled-in seed when
// the key is absent or unparseable. The seed is NOT persisted.
func (r *Clients) List(ctx context.Context) ([]model.ClientLogo, error) {
	raw, err := r.store.Get(ctx, keyClients)
	if errors.Is(err, store.ErrNotFound) {
		return defaultClients(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", keyClients, err)
	}

	var items []model.ClientLogo
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("stored payload is corrupt, serving compiled-in defaults",
			"key", keyClients, "error", err)
		return defaultClients(), nil
	}
	return items, nil
}
