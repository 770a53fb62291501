package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

func newCategoriesFixture(t *testing.T) (*Categories, *Projects, store.Store) {
	t.Helper()
	st := store.NewMemory()
	projects := NewProjects(st)
	return NewCategories(st, projects), projects, st
}

func TestCategories_SeedOnFirstRead(t *testing.T) {
	r, _, _ := newCategoriesFixture(t)
	ctx := context.Background()

	first, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultCategories(), first)

	second, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCategories_AddRejectsDuplicateName(t *testing.T) {
	r, _, _ := newCategoriesFixture(t)
	ctx := context.Background()

	created, err := r.Add(ctx, "Motion")
	require.NoError(t, err)
	assert.Equal(t, "Motion", created.Name)
	assert.False(t, created.ID.IsZero())

	// Case must be ignored in the comparison.
	_, err = r.Add(ctx, "motion")
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Seeded names collide too.
	_, err = r.Add(ctx, "branding")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCategories_RenameCascadesToProjects(t *testing.T) {
	r, projects, _ := newCategoriesFixture(t)
	ctx := context.Background()

	// Seeded: category cat_2 is "Logo"; one seeded project references it.
	renamed, err := r.Rename(ctx, model.ID("cat_2"), "Logo Design")
	require.NoError(t, err)
	assert.Equal(t, "Logo Design", renamed.Name)

	items, err := projects.List(ctx)
	require.NoError(t, err)

	var matched bool
	for _, p := range items {
		assert.NotEqual(t, "Logo", p.Category, "no project may keep the old name")
		if p.Category == "Logo Design" {
			matched = true
		}
	}
	assert.True(t, matched, "the project that referenced Logo should now read Logo Design")
}

func TestCategories_RenameRejectsDuplicate(t *testing.T) {
	r, _, _ := newCategoriesFixture(t)
	ctx := context.Background()

	_, err := r.Rename(ctx, model.ID("cat_2"), "branding")
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Renaming a category to its own name (case change only) is allowed.
	renamed, err := r.Rename(ctx, model.ID("cat_2"), "LOGO")
	require.NoError(t, err)
	assert.Equal(t, "LOGO", renamed.Name)
}

func TestCategories_RenameNotFound(t *testing.T) {
	r, _, _ := newCategoriesFixture(t)

	_, err := r.Rename(context.Background(), model.ID("cat_999"), "Anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategories_RemoveLeavesDanglingProjectReference(t *testing.T) {
	r, projects, _ := newCategoriesFixture(t)
	ctx := context.Background()

	require.NoError(t, r.Remove(ctx, model.ID("cat_2")))

	cats, err := r.List(ctx)
	require.NoError(t, err)
	for _, c := range cats {
		assert.False(t, c.ID.Equal(model.ID("cat_2")), "category should be gone")
	}

	// The project that referenced "Logo" keeps the stale name.
	items, err := projects.List(ctx)
	require.NoError(t, err)

	var dangling bool
	for _, p := range items {
		if p.Category == "Logo" {
			dangling = true
		}
	}
	assert.True(t, dangling, "deletion must not touch project records")
}

func TestCategories_RenameSameNameSkipsProjectRewrite(t *testing.T) {
	r, _, st := newCategoriesFixture(t)
	ctx := context.Background()

	// Prime both keys, then drop the project key: a same-name rename
	// must not rewrite (or reseed) the project list at all.
	_, err := r.List(ctx)
	require.NoError(t, err)
	require.NoError(t, st.Delete(ctx, keyProjects))

	_, err = r.Rename(ctx, model.ID("cat_2"), "Logo")
	require.NoError(t, err)

	_, err = st.Get(ctx, keyProjects)
	assert.ErrorIs(t, err, store.ErrNotFound, "unchanged rename should not touch projects")
}
