package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// Categories manages project categories. Names are unique
// case-insensitively; renames cascade into the denormalized category
// field on projects. The mutex serializes read-modify-write cycles;
// Rename takes this lock before the project repository's, never the
// reverse.
type Categories struct {
	mu       sync.Mutex
	c        collection[model.Category]
	projects *Projects
}

// NewCategories creates a category repository. The project repository
// is required because renames rewrite matching projects.
func NewCategories(st store.Store, projects *Projects) *Categories {
	return &Categories{
		c: collection[model.Category]{
			store: st,
			key:   keyCategories,
			seed:  defaultCategories,
		},
		projects: projects,
	}
}

// List returns all categories in insertion order.
func (r *Categories) List(ctx context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.c.load(ctx)
}

// Add creates a category with the given name. Returns ErrDuplicateName
// if a category with the same name (ignoring case) already exists.
func (r *Categories) Add(ctx context.Context, name string) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return model.Category{}, err
	}

	for _, c := range items {
		if strings.EqualFold(c.Name, name) {
			return model.Category{}, ErrDuplicateName
		}
	}

	cat := model.Category{ID: model.NewCategoryID(), Name: name}
	items = append(items, cat)
	if err := r.c.save(ctx, items); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

// Rename changes a category's name and rewrites the category field of
// every project that referenced the old name. The category list and the
// project list are two separate writes completed within this call.
// Returns ErrNotFound if the id does not match and ErrDuplicateName if
// another category already holds the new name (ignoring case).
func (r *Categories) Rename(ctx context.Context, id model.ID, newName string) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return model.Category{}, err
	}

	idx := -1
	for i := range items {
		if items[i].ID.Equal(id) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Category{}, ErrNotFound
	}

	for i := range items {
		if i != idx && strings.EqualFold(items[i].Name, newName) {
			return model.Category{}, ErrDuplicateName
		}
	}

	oldName := items[idx].Name
	items[idx].Name = newName
	if err := r.c.save(ctx, items); err != nil {
		return model.Category{}, err
	}

	if oldName != newName {
		if err := r.projects.renameCategory(ctx, oldName, newName); err != nil {
			return model.Category{}, err
		}
	}
	return items[idx], nil
}

// Remove deletes a category by id. Projects referencing the deleted
// category keep its name; the dangling reference is accepted.
func (r *Categories) Remove(ctx context.Context, id model.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.c.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Category, 0, len(items))
	for _, c := range items {
		if !c.ID.Equal(id) {
			kept = append(kept, c)
		}
	}
	return r.c.save(ctx, kept)
}
