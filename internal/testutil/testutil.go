// Package testutil provides shared test helpers.
package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/jpdesignstudio07/jpstudio/internal/auth"
	"github.com/jpdesignstudio07/jpstudio/internal/repo"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestStore creates an in-memory store for tests.
func TestStore(t *testing.T) store.Store {
	t.Helper()

	s := store.NewMemory()
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestRepos wires the full repository set over a fresh in-memory store.
func TestRepos(t *testing.T) (store.Store, *repo.Projects, *repo.Categories, *repo.Services, *repo.Settings, *repo.Clients) {
	t.Helper()

	s := TestStore(t)
	projects := repo.NewProjects(s)
	return s, projects, repo.NewCategories(s, projects), repo.NewServices(s), repo.NewSettings(s), repo.NewClients(s)
}

// TestGate creates a session gate with the default compiled-in
// credentials over the given store.
func TestGate(t *testing.T, s store.Store) *auth.Gate {
	t.Helper()
	return auth.NewGate(s, auth.Credentials{})
}
