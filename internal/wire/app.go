package wire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	hostedproject "github.com/alanyang/scout-interest/internal/adapter/hosted/project"
	pgdb "github.com/alanyang/scout-interest/internal/adapter/postgres"
	pgproject "github.com/alanyang/scout-interest/internal/adapter/postgres/project"
	"github.com/alanyang/scout-interest/internal/config"
	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
	portproject "github.com/alanyang/scout-interest/internal/port/project"
	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
	"github.com/alanyang/scout-interest/internal/transport"
	mcptransport "github.com/alanyang/scout-interest/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Server     *http.Server
	Handler    http.Handler
	ProjectSvc *projectsvc.Service
	pool       *pgxpool.Pool
}

// Close releases the store connection pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// ConfigureLogging installs the JSON slog handler as the process default.
func ConfigureLogging(cfg *config.Config) {
	level, err := config.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With("service", cfg.App.Name, "env", cfg.App.Environment)
	slog.SetDefault(logger)
}

// storeCheckTimeout bounds the startup ping.
const storeCheckTimeout = 2 * time.Second

// Build is the composition root: the only place concrete types are wired to their
// interface dependencies. Missing store credentials leave ProjectSvc nil and the
// handlers answer with a configuration error. A store that is configured but
// unreachable is still wired; requests report the store's error until it recovers.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	// ── Store ────────────────────────────────────────────────────────────────
	repo, pool, err := OpenStore(ctx, cfg)
	var projectSvc *projectsvc.Service
	switch {
	case errors.Is(err, domainproject.ErrNotConfigured):
		slog.Warn("no backing store configured, /api/projects will report a configuration error")
	case err != nil:
		return nil, fmt.Errorf("opening store: %w", err)
	default:
		projectSvc = projectsvc.NewService(repo)
		checkStore(ctx, projectSvc, cfg.StoreDriver())
	}

	// ── Transport ────────────────────────────────────────────────────────────
	deps := transport.RouterDeps{
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		ProjectSvc:  projectSvc,
	}
	if cfg.Server.MCPEnabled {
		deps.MCP = mcptransport.New(cfg.App.Name, cfg.App.Version, projectSvc).Handler()
	}
	router := transport.NewRouter(deps)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Server.Port, "store", cfg.StoreDriver(), "mcp", cfg.Server.MCPEnabled)

	return &App{
		Server:     server,
		Handler:    router,
		ProjectSvc: projectSvc,
		pool:       pool,
	}, nil
}

func checkStore(ctx context.Context, svc *projectsvc.Service, driver string) {
	ctx, cancel := context.WithTimeout(ctx, storeCheckTimeout)
	defer cancel()
	if err := svc.Ping(ctx); err != nil {
		slog.Warn("backing store unreachable at startup", "driver", driver, "error", err)
		return
	}
	slog.Info("backing store reachable", "driver", driver)
}

// OpenStore builds the repository selected by cfg without contacting the store. The
// pool is non-nil only for the postgres driver and must be closed by the caller.
func OpenStore(ctx context.Context, cfg *config.Config) (portproject.Repository, *pgxpool.Pool, error) {
	switch cfg.StoreDriver() {
	case config.DriverPostgres:
		pool, err := pgdb.Open(ctx, cfg.Store.DatabaseURL, pgdb.PoolOptions{MaxConns: cfg.Store.MaxConns})
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		repo, err := pgproject.New(pool, cfg.Store.Table, cfg.Store.Embed)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool, nil
	case config.DriverHosted:
		repo, err := hostedproject.New(hostedproject.Options{
			URL:     cfg.Store.URL,
			Key:     cfg.Store.Key,
			Table:   cfg.Store.Table,
			Embed:   cfg.Store.Embed,
			Timeout: cfg.Store.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	default:
		return nil, nil, domainproject.ErrNotConfigured
	}
}
