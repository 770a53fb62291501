package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/repo"
)

// ServiceHandler handles service-offering routes.
type ServiceHandler struct {
	services *repo.Services
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(services *repo.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// serviceView decorates a service with its resolved glyph so the front
// end doesn't need the lookup table.
type serviceView struct {
	model.Service
	Glyph string `json:"glyph"`
}

// List handles GET /api/services.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}

	views := make([]serviceView, 0, len(items))
	for _, s := range items {
		views = append(views, serviceView{Service: s, Glyph: model.Glyph(s.Icon)})
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"services": views})
}

type createServiceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Create handles POST /api/admin/services.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSONError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := h.services.Add(r.Context(), model.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusCreated, map[string]any{"service": created})
}

// Update handles PUT /api/admin/services/{id}.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	var patch repo.ServicePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.services.Update(r.Context(), id, patch)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"service": updated})
}

// Delete handles DELETE /api/admin/services/{id}.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	if err := h.services.Remove(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
