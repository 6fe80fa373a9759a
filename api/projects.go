// Package api holds the serverless function entry points. Each exported Handler is
// deployed as its own function by the hosting platform (see vercel.json).
package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/alanyang/scout-interest/internal/config"
	"github.com/alanyang/scout-interest/internal/transport"
	"github.com/alanyang/scout-interest/internal/wire"
)

var (
	buildOnce sync.Once
	handler   http.Handler
)

// Handler is the entry point for the /api/projects serverless function.
// The router is built on the first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	buildOnce.Do(func() { handler = build(r.Context()) })
	handler.ServeHTTP(w, r)
}

func build(ctx context.Context) http.Handler {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration, serving without a store", "error", err)
		return transport.NewRouter(transport.RouterDeps{ServiceName: "scout-interest"})
	}
	wire.ConfigureLogging(cfg)

	// The invocation context ends with this request; the store must outlive it.
	app, err := wire.Build(context.WithoutCancel(ctx), cfg)
	if err != nil {
		slog.Error("failed to build application, serving without a store", "error", err)
		return transport.NewRouter(transport.RouterDeps{ServiceName: cfg.App.Name, Version: cfg.App.Version})
	}
	return app.Handler
}
