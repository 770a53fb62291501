package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jpdesignstudio07/jpstudio/internal/auth"
	"github.com/jpdesignstudio07/jpstudio/internal/middleware"
	"github.com/jpdesignstudio07/jpstudio/internal/repo"
	"github.com/jpdesignstudio07/jpstudio/internal/version"
)

// Repos bundles the content repositories the API serves.
type Repos struct {
	Projects   *repo.Projects
	Categories *repo.Categories
	Services   *repo.Services
	Settings   *repo.Settings
	Clients    *repo.Clients
}

// Routes assembles the full API router: public content reads, the auth
// endpoints, and the session-gated admin CRUD routes.
func Routes(repos Repos, gate *auth.Gate, sm *scs.SessionManager, info *version.Info) http.Handler {
	projects := NewProjectHandler(repos.Projects)
	categories := NewCategoryHandler(repos.Categories)
	services := NewServiceHandler(repos.Services)
	settings := NewSettingsHandler(repos.Settings)
	clients := NewClientHandler(repos.Clients)
	authHandler := NewAuthHandler(gate, sm)
	health := NewHealthHandler(info)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(sm.LoadAndSave)

	// Public content
	r.Get("/api/healthz", health.Healthz)
	r.Get("/api/projects", projects.List)
	r.Get("/api/categories", categories.List)
	r.Get("/api/services", services.List)
	r.Get("/api/clients", clients.List)
	r.Get("/api/settings", settings.Get)

	// Auth
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/logout", authHandler.Logout)
	r.Get("/api/me", authHandler.Me)

	// Admin
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(sm, gate))

		r.Post("/projects", projects.Create)
		r.Put("/projects/{id}", projects.Update)
		r.Delete("/projects/{id}", projects.Delete)

		r.Post("/categories", categories.Create)
		r.Put("/categories/{id}", categories.Rename)
		r.Delete("/categories/{id}", categories.Delete)

		r.Post("/services", services.Create)
		r.Put("/services/{id}", services.Update)
		r.Delete("/services/{id}", services.Delete)

		r.Put("/settings", settings.Update)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found")
	})

	return r
}
