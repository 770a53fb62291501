package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

func TestSettings_GetDefaultsWhenAbsent(t *testing.T) {
	st := store.NewMemory()
	r := NewSettings(st)
	ctx := context.Background()

	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), got)

	// Get does not write the defaults back.
	_, err = st.Get(ctx, keySettings)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSettings_UpdateMergesAndPersists(t *testing.T) {
	st := store.NewMemory()
	r := NewSettings(st)
	ctx := context.Background()

	updated, err := r.Update(ctx, SettingsPatch{
		HeroHighlightWord: strptr("Transforms"),
		HeaderLogo:        strptr("data:image/png;base64,abc"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Transforms", updated.HeroHighlightWord)
	assert.Equal(t, "data:image/png;base64,abc", updated.HeaderLogo)
	assert.Equal(t, defaultSettings().HeroTitleLine1, updated.HeroTitleLine1,
		"unpatched fields fall back to defaults")

	// A later Get reads the merged record from storage.
	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestSettings_SequentialUpdatesRetainPriorValues(t *testing.T) {
	st := store.NewMemory()
	r := NewSettings(st)
	ctx := context.Background()

	_, err := r.Update(ctx, SettingsPatch{HeroHighlightWord: strptr("Transforms")})
	require.NoError(t, err)

	updated, err := r.Update(ctx, SettingsPatch{HeroTitleLine2: strptr("Your Vision")})
	require.NoError(t, err)

	assert.Equal(t, "Transforms", updated.HeroHighlightWord, "earlier update survives")
	assert.Equal(t, "Your Vision", updated.HeroTitleLine2)
}

func TestSettings_StoredFieldsWinOverDefaults(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	// A sparse stored record: present fields win, absent fields default.
	require.NoError(t, st.Set(ctx, keySettings, []byte(`{"headerLogo":"logo.svg"}`)))

	r := NewSettings(st)
	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "logo.svg", got.HeaderLogo)
	assert.Equal(t, defaultSettings().HeroImage, got.HeroImage)
}

func TestSettings_CorruptStorageFallsBackToDefaults(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, keySettings, []byte("][")))

	r := NewSettings(st)
	got, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), got)
}
