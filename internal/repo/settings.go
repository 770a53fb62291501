package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// Settings manages the singleton site-settings record. Reads merge the
// stored record over compiled-in defaults, so a field that was never
// set still has a value.
type Settings struct {
	mu    sync.Mutex
	store store.Store
}

// NewSettings creates a settings repository over the given store.
func NewSettings(st store.Store) *Settings {
	return &Settings{store: st}
}

// Get returns the stored settings merged over the compiled-in defaults.
// An absent key yields the defaults without writing them back.
func (r *Settings) Get(ctx context.Context) (model.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(ctx)
}

func (r *Settings) get(ctx context.Context) (model.SiteSettings, error) {
	raw, err := r.store.Get(ctx, keySettings)
	if errors.Is(err, store.ErrNotFound) {
		return defaultSettings(), nil
	}
	if err != nil {
		return model.SiteSettings{}, fmt.Errorf("reading %s: %w", keySettings, err)
	}

	// Unmarshal into a defaulted record: fields present in the stored
	// payload win, absent fields keep their default.
	merged := defaultSettings()
	if err := json.Unmarshal(raw, &merged); err != nil {
		slog.Warn("stored payload is corrupt, serving compiled-in defaults",
			"key", keySettings, "error", err)
		return defaultSettings(), nil
	}
	return merged, nil
}

// SettingsPatch holds a partial update; nil fields are left unchanged.
type SettingsPatch struct {
	HeroImage         *string `json:"heroImage"`
	HeaderLogo        *string `json:"headerLogo"`
	FooterLogo        *string `json:"footerLogo"`
	HeroTitleLine1    *string `json:"heroTitleLine1"`
	HeroHighlightWord *string `json:"heroHighlightWord"`
	HeroTitleLine2    *string `json:"heroTitleLine2"`
	HeroDescription   *string `json:"heroDescription"`
}

// Update merges the patch into the current (already defaulted) settings,
// persists the full record and returns it.
func (r *Settings) Update(ctx context.Context, patch SettingsPatch) (model.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.get(ctx)
	if err != nil {
		return model.SiteSettings{}, err
	}

	if patch.HeroImage != nil {
		current.HeroImage = *patch.HeroImage
	}
	if patch.HeaderLogo != nil {
		current.HeaderLogo = *patch.HeaderLogo
	}
	if patch.FooterLogo != nil {
		current.FooterLogo = *patch.FooterLogo
	}
	if patch.HeroTitleLine1 != nil {
		current.HeroTitleLine1 = *patch.HeroTitleLine1
	}
	if patch.HeroHighlightWord != nil {
		current.HeroHighlightWord = *patch.HeroHighlightWord
	}
	if patch.HeroTitleLine2 != nil {
		current.HeroTitleLine2 = *patch.HeroTitleLine2
	}
	if patch.HeroDescription != nil {
		current.HeroDescription = *patch.HeroDescription
	}

	data, err := json.Marshal(current)
	if err != nil {
		return model.SiteSettings{}, fmt.Errorf("encoding %s: %w", keySettings, err)
	}
	if err := r.store.Set(ctx, keySettings, data); err != nil {
		return model.SiteSettings{}, fmt.Errorf("writing %s: %w", keySettings, err)
	}
	return current, nil
}
