package handler

import (
	"net/http"

	"github.com/jpdesignstudio07/jpstudio/internal/repo"
)

// SettingsHandler handles the singleton site-settings record.
type SettingsHandler struct {
	settings *repo.Settings
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *repo.Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	current, err := h.settings.Get(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"settings": current})
}

// Update handles PUT /api/admin/settings. Absent fields retain their
// prior values.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch repo.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.settings.Update(r.Context(), patch)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"settings": updated})
}
