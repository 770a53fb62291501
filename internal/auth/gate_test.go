package auth

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jpdesignstudio07/jpstudio/internal/model"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

func TestGate_LoginSuccess(t *testing.T) {
	st := store.NewMemory()
	g := NewGate(st, Credentials{})
	ctx := context.Background()

	user, err := g.Login(ctx, DefaultAdminEmail, DefaultAdminPassword)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("expected role %q, got %q", model.RoleAdmin, user.Role)
	}
	if user.Name != DefaultAdminName {
		t.Errorf("expected name %q, got %q", DefaultAdminName, user.Name)
	}

	current, ok := g.CurrentUser(ctx)
	if !ok {
		t.Fatal("expected authenticated state after login")
	}
	if current != user {
		t.Errorf("CurrentUser = %+v, want %+v", current, user)
	}
}

func TestGate_LoginRejectedWritesNothing(t *testing.T) {
	st := store.NewMemory()
	g := NewGate(st, Credentials{})
	ctx := context.Background()

	tests := []struct {
		name            string
		email, password string
	}{
		{"wrong password", DefaultAdminEmail, "wrong"},
		{"wrong email", "someone@else.com", DefaultAdminPassword},
		{"both wrong", "someone@else.com", "wrong"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.Login(ctx, tt.email, tt.password); err != ErrInvalidCredentials {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
			if _, err := st.Get(ctx, sessionKey); err != store.ErrNotFound {
				t.Errorf("rejected login must not write the session key, got %v", err)
			}
		})
	}
}

func TestGate_Logout(t *testing.T) {
	st := store.NewMemory()
	g := NewGate(st, Credentials{})
	ctx := context.Background()

	if _, err := g.Login(ctx, DefaultAdminEmail, DefaultAdminPassword); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := g.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, ok := g.CurrentUser(ctx); ok {
		t.Error("expected anonymous state after logout")
	}

	// Logging out while anonymous is a no-op.
	if err := g.Logout(ctx); err != nil {
		t.Errorf("second Logout should be a no-op, got %v", err)
	}
}

func TestGate_CurrentUserAnonymous(t *testing.T) {
	g := NewGate(store.NewMemory(), Credentials{})

	if _, ok := g.CurrentUser(context.Background()); ok {
		t.Error("expected anonymous state on a fresh store")
	}
}

func TestGate_CorruptSessionYieldsAnonymous(t *testing.T) {
	st := store.NewMemory()
	g := NewGate(st, Credentials{})
	ctx := context.Background()

	if err := st.Set(ctx, sessionKey, []byte("not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, ok := g.CurrentUser(ctx); ok {
		t.Error("corrupt session record should read as anonymous, not error")
	}
}

func TestGate_ExternalClearLogsOut(t *testing.T) {
	st := store.NewMemory()
	g := NewGate(st, Credentials{})
	ctx := context.Background()

	if _, err := g.Login(ctx, DefaultAdminEmail, DefaultAdminPassword); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Clearing the key outside the gate transitions back to anonymous.
	if err := st.Delete(ctx, sessionKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := g.CurrentUser(ctx); ok {
		t.Error("expected anonymous state after external clear")
	}
}

func TestGate_BackendFailureReadsAnonymousButLogs(t *testing.T) {
	st := store.NewMemory()
	g := NewGate(st, Credentials{})
	ctx := context.Background()

	if _, err := g.Login(ctx, DefaultAdminEmail, DefaultAdminPassword); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// A closed store fails every read; the gate must not confuse that
	// with a logged-out session, so it warns.
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	if _, ok := g.CurrentUser(ctx); ok {
		t.Error("backend failure should read as anonymous")
	}
	if !strings.Contains(buf.String(), "treating as anonymous") {
		t.Errorf("backend failure should be logged, got %q", buf.String())
	}
}

func TestGate_ConfiguredCredentials(t *testing.T) {
	st := store.NewMemory()
	g := NewGate(st, Credentials{Email: "owner@studio.dev", Password: "s3cret", Name: "Owner"})
	ctx := context.Background()

	if _, err := g.Login(ctx, DefaultAdminEmail, DefaultAdminPassword); err != ErrInvalidCredentials {
		t.Errorf("default credentials should be rejected when overridden, got %v", err)
	}

	user, err := g.Login(ctx, "owner@studio.dev", "s3cret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Name != "Owner" {
		t.Errorf("expected configured name, got %q", user.Name)
	}
}
