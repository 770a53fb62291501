// Package session wires up the HTTP session manager.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// New creates a session manager. When db is non-nil the session data is
// stored in its sessions table (sharing the content store's SQLite
// file); otherwise scs keeps sessions in memory.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	if db != nil {
		sm.Store = sqlite3store.New(db)
	}

	// The admin session has no server-side expiry in the data model, so
	// the cookie lifetime is simply long.
	sm.Lifetime = 365 * 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return sm
}
