// Package auth implements the single-admin session gate. Authenticated
// state is the presence of a user record under one reserved storage
// key: login writes it, logout deletes it, and clearing storage
// externally logs the admin out.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// sessionKey is the reserved storage key holding the session record.
const sessionKey = "jp_auth_v1"

// Default admin credentials, overridable via configuration.
const (
	DefaultAdminEmail    = "admin@jpdesign.com"
	DefaultAdminPassword = "password"
	DefaultAdminName     = "JP Admin"
)

// ErrInvalidCredentials is returned for any email/password pair other
// than the configured one. It is a rejection, not a system error.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Credentials is the single allowed login. Zero fields fall back to the
// compiled-in defaults.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// Gate validates logins against the fixed credentials and manages the
// persisted session record.
type Gate struct {
	store store.Store
	creds Credentials
}

// NewGate creates a session gate over the given store.
func NewGate(st store.Store, creds Credentials) *Gate {
	if creds.Email == "" {
		creds.Email = DefaultAdminEmail
	}
	if creds.Password == "" {
		creds.Password = DefaultAdminPassword
	}
	if creds.Name == "" {
		creds.Name = DefaultAdminName
	}
	return &Gate{store: st, creds: creds}
}

// Login validates the credential pair. On success it persists the
// session record and returns the user; on failure it returns
// ErrInvalidCredentials and writes nothing.
func (g *Gate) Login(ctx context.Context, email, password string) (model.User, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(g.creds.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.creds.Password)) == 1
	if !emailOK || !passwordOK {
		return model.User{}, ErrInvalidCredentials
	}

	user := model.User{
		Email: g.creds.Email,
		Name:  g.creds.Name,
		Role:  model.RoleAdmin,
	}

	data, err := json.Marshal(user)
	if err != nil {
		return model.User{}, fmt.Errorf("encoding session: %w", err)
	}
	if err := g.store.Set(ctx, sessionKey, data); err != nil {
		return model.User{}, fmt.Errorf("persisting session: %w", err)
	}

	slog.Info("admin logged in", "email", user.Email)
	return user, nil
}

// Logout deletes the session record. Logging out while anonymous is a
// no-op.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	slog.Info("admin logged out")
	return nil
}

// CurrentUser returns the persisted session user. An absent or corrupt
// session record yields (zero, false), never an error. A backend
// failure also reads as anonymous, but is logged so an outage is
// distinguishable from a logout.
func (g *Gate) CurrentUser(ctx context.Context) (model.User, bool) {
	raw, err := g.store.Get(ctx, sessionKey)
	if errors.Is(err, store.ErrNotFound) {
		return model.User{}, false
	}
	if err != nil {
		slog.Warn("reading session record, treating as anonymous", "error", err)
		return model.User{}, false
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		slog.Warn("session record is corrupt, treating as anonymous", "error", err)
		return model.User{}, false
	}
	return user, true
}
