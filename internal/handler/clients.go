package handler

import (
	"net/http"

	"github.com/jpdesignstudio07/jpstudio/internal/repo"
)

// ClientHandler serves the client logo strip.
type ClientHandler struct {
	clients *repo.Clients
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clients *repo.Clients) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.clients.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSONSuccess(w, http.StatusOK, map[string]any{"clients": items})
}
