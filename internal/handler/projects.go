package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/repo"
)

// ProjectHandler handles portfolio project routes.
type ProjectHandler struct {
	projects *repo.Projects
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects *repo.Projects) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.projects.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"projects": items})
}

type createProjectRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Client      string `json:"client"`
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" {
		writeJSONError(w, http.StatusBadRequest, "title and category are required")
		return
	}

	created, err := h.projects.Add(r.Context(), model.Project{
		Title:       req.Title,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		Date:        req.Date,
		Client:      req.Client,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusCreated, map[string]any{"project": created})
}

// Update handles PUT /api/admin/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	var patch repo.ProjectPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.projects.Update(r.Context(), id, patch)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"project": updated})
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	if err := h.projects.Remove(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}
