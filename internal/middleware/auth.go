// Package middleware provides HTTP middleware for authentication and
// request context handling.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/jpdesignstudio07/jpstudio/internal/auth"
	"github.com/jpdesignstudio07/jpstudio/internal/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser holds the authenticated admin user.
const ContextKeyUser ContextKey = "user"

// SessionKeyEmail is the session key marking this browser as logged in.
const SessionKeyEmail = "admin_email"

// Auth creates middleware that requires an authenticated admin. The
// request must carry a logged-in session cookie AND the gate's session
// record must still exist (it disappears on logout or when storage is
// cleared externally). On success the user is placed in the request
// context; otherwise the request is rejected with a 401 JSON body.
func Auth(sm *scs.SessionManager, gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sm.GetString(r.Context(), SessionKeyEmail) == "" {
				unauthorized(w)
				return
			}

			user, ok := gate.CurrentUser(r.Context())
			if !ok {
				// Gate record gone: the cookie session is stale.
				_ = sm.Destroy(r.Context())
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the authenticated user from the request context.
func GetUser(r *http.Request) (model.User, bool) {
	user, ok := r.Context().Value(ContextKeyUser).(model.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "authentication required",
	})
}
