package repo

import (
	"context"
	"sync"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// Projects is the portfolio project repository. New projects are
// prepended so List returns most-recently-added first. A mutex
// serializes the read-modify-write cycles; none of them are safe under
// concurrent interleaving.
type Projects struct {
	mu sync.Mutex
	c  collection[model.Project]
}

// NewProjects creates a project repository over the given store.
func NewProjects(st store.Store) *Projects {
	return &Projects{c: collection[model.Project]{
		store: st,
		key:   keyProjects,
		seed:  defaultProjects,
	}}
}

// List returns all projects, most recently added first.
func (r *Projects) List(ctx context.Context) ([]model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.c.load(ctx)
}

// Add assigns a new id to the project, prepends it and persists the
// list. The created record is returned.
func (r *Projects) Add(ctx context.Context, p model.Project) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return model.Project{}, err
	}

	p.ID = model.NewID()
	items = append([]model.Project{p}, items...)
	if err := r.c.save(ctx, items); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

// ProjectPatch holds a partial update; nil fields are left unchanged.
type ProjectPatch struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Client      *string `json:"client"`
}

// Update merges the patch into the project with the given id. The id is
// matched loosely (numeric and string forms of the same value match).
// Returns ErrNotFound if no project matches.
func (r *Projects) Update(ctx context.Context, id model.ID, patch ProjectPatch) (model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return model.Project{}, err
	}

	for i := range items {
		if !items[i].ID.Equal(id) {
			continue
		}
		applyProjectPatch(&items[i], patch)
		if err := r.c.save(ctx, items); err != nil {
			return model.Project{}, err
		}
		return items[i], nil
	}
	return model.Project{}, ErrNotFound
}

// Remove deletes the project with the given id (loose match). Removing
// a nonexistent id is a no-op.
func (r *Projects) Remove(ctx context.Context, id model.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Project, 0, len(items))
	for _, p := range items {
		if !p.ID.Equal(id) {
			kept = append(kept, p)
		}
	}
	return r.c.save(ctx, kept)
}

// renameCategory rewrites every project whose category equals oldName.
// Called by the category repository as the second half of a rename; the
// list is only persisted when something actually changed.
func (r *Projects) renameCategory(ctx context.Context, oldName, newName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range items {
		if items[i].Category == oldName {
			items[i].Category = newName
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.c.save(ctx, items)
}

func applyProjectPatch(p *model.Project, patch ProjectPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
	if patch.Client != nil {
		p.Client = *patch.Client
	}
}
