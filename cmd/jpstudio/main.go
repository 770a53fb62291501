package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jpdesignstudio07/jpstudio/internal/auth"
	"github.com/jpdesignstudio07/jpstudio/internal/config"
	"github.com/jpdesignstudio07/jpstudio/internal/handler"
	"github.com/jpdesignstudio07/jpstudio/internal/logging"
	"github.com/jpdesignstudio07/jpstudio/internal/repo"
	"github.com/jpdesignstudio07/jpstudio/internal/session"
	"github.com/jpdesignstudio07/jpstudio/internal/store"
	"github.com/jpdesignstudio07/jpstudio/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "jpstudio - JP Design Studio content service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nConfiguration is read from JP_* environment variables (see internal/config).\n")
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("jpstudio %s (commit %s, built %s)\n", appVersion, appGitCommit, appBuildTime)
		return
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Ensure the data directory exists before opening the SQLite file.
	if cfg.StoreBackend == store.BackendSQLite || cfg.StoreBackend == "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	slog.Info("opening store", "backend", cfg.StoreBackend)
	st, err := store.New(store.Config{
		Backend:     cfg.StoreBackend,
		Path:        cfg.DBPath,
		RedisURL:    cfg.RedisURL,
		RedisPrefix: cfg.RedisPrefix,
	})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("closing store", "error", err)
		}
	}()

	projects := repo.NewProjects(st)
	repos := handler.Repos{
		Projects:   projects,
		Categories: repo.NewCategories(st, projects),
		Services:   repo.NewServices(st),
		Settings:   repo.NewSettings(st),
		Clients:    repo.NewClients(st),
	}

	gate := auth.NewGate(st, auth.Credentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	})

	// Share the SQLite file with the session manager when available.
	sm := session.New(nil, cfg.IsDevelopment())
	if sqliteStore, ok := st.(*store.SQLite); ok {
		sm = session.New(sqliteStore.DB(), cfg.IsDevelopment())
	}

	router := handler.Routes(repos, gate, sm, versionInfo)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", appVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
