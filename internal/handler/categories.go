package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/repo"
)

// CategoryHandler handles project category routes.
type CategoryHandler struct {
	categories *repo.Categories
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *repo.Categories) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"categories": items})
}

type categoryNameRequest struct {
	Name string `json:"name"`
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryNameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := h.categories.Add(r.Context(), req.Name)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusCreated, map[string]any{"category": created})
}

// Rename handles PUT /api/admin/categories/{id}. Renaming cascades into
// every project referencing the old name.
func (h *CategoryHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	var req categoryNameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSONError(w, http.StatusBadRequest, "name is required")
		return
	}

	renamed, err := h.categories.Rename(r.Context(), id, req.Name)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"category": renamed})
}

// Delete handles DELETE /api/admin/categories/{id}. Projects keep the
// deleted category's name.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	if err := h.categories.Remove(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
