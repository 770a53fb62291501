package handler

import (
	"net/http"

	"github.com/jpdesignstudio07/jpstudio/internal/version"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	info *version.Info
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(info *version.Info) *HealthHandler {
	return &HealthHandler{info: info}
}

// Healthz handles GET /api/healthz.
func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSONSuccess(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": h.info.Version,
	})
}
