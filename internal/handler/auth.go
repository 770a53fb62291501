package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/jpdesignstudio07/jpstudio/internal/auth"
	"github.com/jpdesignstudio07/jpstudio/internal/middleware"
)

// AuthHandler handles login, logout and the current-user endpoint.
type AuthHandler struct {
	gate           *auth.Gate
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gate *auth.Gate, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{gate: gate, sessionManager: sm}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.gate.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Rotate the session token on privilege change.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		slog.Error("renewing session token", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.sessionManager.Put(r.Context(), middleware.SessionKeyEmail, user.Email)

	writeJSONSuccess(w, http.StatusOK, map[string]any{"user": user})
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.Logout(r.Context()); err != nil {
		slog.Error("logout failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("destroying session", "error", err)
	}

	writeJSONSuccess(w, http.StatusOK, map[string]any{"loggedOut": true})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if h.sessionManager.GetString(r.Context(), middleware.SessionKeyEmail) == "" {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	user, ok := h.gate.CurrentUser(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSONSuccess(w, http.StatusOK, map[string]any{"user": user})
}
