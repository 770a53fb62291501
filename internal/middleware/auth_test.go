package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/jpdesignstudio07/jpstudio/internal/auth"
	"github.com/jpdesignstudio07/jpstudio/internal/testutil"
)

// authTestEnv wires the middleware behind a real session manager so
// cookie handling behaves as in production.
type authTestEnv struct {
	srv    *httptest.Server
	client *http.Client
	gate   *auth.Gate
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()

	slog.SetDefault(testutil.TestLogger())

	gate := testutil.TestGate(t, testutil.TestStore(t))
	sm := scs.New()

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		user, err := gate.Login(r.Context(), auth.DefaultAdminEmail, auth.DefaultAdminPassword)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		sm.Put(r.Context(), SessionKeyEmail, user.Email)
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/protected", Auth(sm, gate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r)
		if !ok {
			http.Error(w, "no user in context", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(user.Email))
	})))

	srv := httptest.NewServer(sm.LoadAndSave(mux))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	return &authTestEnv{srv: srv, client: &http.Client{Jar: jar}, gate: gate}
}

func (e *authTestEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()

	resp, err := e.client.Get(e.srv.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAuthRejectsAnonymous(t *testing.T) {
	env := newAuthTestEnv(t)

	resp := env.get(t, "/protected")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestAuthAllowsLoggedInSession(t *testing.T) {
	env := newAuthTestEnv(t)

	if resp := env.get(t, "/login"); resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	resp := env.get(t, "/protected")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestAuthRejectsStaleSession(t *testing.T) {
	env := newAuthTestEnv(t)

	if resp := env.get(t, "/login"); resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	// The gate record vanishes (logout from another tab, storage
	// cleared) while the cookie survives.
	if err := env.gate.Logout(context.Background()); err != nil {
		t.Fatal(err)
	}

	resp := env.get(t, "/protected")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestGetUserWithoutAuth(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := GetUser(r); ok {
		t.Error("GetUser reported a user on an unauthenticated request")
	}
}
