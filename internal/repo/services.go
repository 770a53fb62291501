package repo

import (
	"context"
	"sync"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// Services is the service-offering repository. Unlike projects, new
// services are appended so List keeps the presentation order stable.
type Services struct {
	mu sync.Mutex
	c  collection[model.Service]
}

// NewServices creates a service repository over the given store.
func NewServices(st store.Store) *Services {
	return &Services{c: collection[model.Service]{
		store: st,
		key:   keyServices,
		seed:  defaultServices,
	}}
}

// List returns all services in insertion order.
func (r *Services) List(ctx context.Context) ([]model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.c.load(ctx)
}

// Add assigns a new id to the service, appends it and persists the list.
func (r *Services) Add(ctx context.Context, s model.Service) (model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return model.Service{}, err
	}

	s.ID = model.NewID()
	items = append(items, s)
	if err := r.c.save(ctx, items); err != nil {
		return model.Service{}, err
	}
	return s, nil
}

// ServicePatch holds a partial update; nil fields are left unchanged.
type ServicePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

// Update merges the patch into the service with the given id (loose
// match). Returns ErrNotFound if no service matches.
func (r *Services) Update(ctx context.Context, id model.ID, patch ServicePatch) (model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return model.Service{}, err
	}

	for i := range items {
		if !items[i].ID.Equal(id) {
			continue
		}
		if patch.Title != nil {
			items[i].Title = *patch.Title
		}
		if patch.Description != nil {
			items[i].Description = *patch.Description
		}
		if patch.Icon != nil {
			items[i].Icon = *patch.Icon
		}
		if err := r.c.save(ctx, items); err != nil {
			return model.Service{}, err
		}
		return items[i], nil
	}
	return model.Service{}, ErrNotFound
}

// Remove deletes the service with the given id (loose match). Removing
// a nonexistent id is a no-op.
func (r *Services) Remove(ctx context.Context, id model.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Service, 0, len(items))
	for _, s := range items {
		if !s.ID.Equal(id) {
			kept = append(kept, s)
		}
	}
	return r.c.save(ctx, kept)
}
