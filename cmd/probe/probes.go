package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alanyang/scout-interest/internal/config"
	"github.com/alanyang/scout-interest/internal/wire"
)

var corsHeaders = []string{
	"Access-Control-Allow-Origin",
	"Access-Control-Allow-Methods",
	"Access-Control-Allow-Headers",
}

// probeStore opens the configured store, pings it, and lists projects once.
func probeStore(ctx context.Context, cfg *config.Config, out io.Writer) error {
	fmt.Fprintf(out, "store: driver=%s table=%s\n", cfg.StoreDriver(), cfg.Store.Table)

	repo, pool, err := wire.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	start := time.Now()
	if err := repo.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	fmt.Fprintf(out, "store: ping ok in %s\n", time.Since(start).Round(time.Millisecond))

	start = time.Now()
	projects, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	fmt.Fprintf(out, "store: listed %d projects in %s\n", len(projects), time.Since(start).Round(time.Millisecond))
	if len(projects) > 0 {
		fmt.Fprintf(out, "store: newest %q (status=%s, created_at=%s)\n",
			projects[0].Name, projects[0].Status, projects[0].CreatedAt)
	}
	return nil
}

type endpointBody struct {
	Success  bool              `json:"success"`
	Projects []json.RawMessage `json:"projects"`
	Error    string            `json:"error"`
}

// probeEndpoint sends a preflight and a GET to a deployed handler.
func probeEndpoint(ctx context.Context, client *http.Client, url string, out io.Writer) error {
	resp, err := send(ctx, client, http.MethodOptions, url)
	if err != nil {
		return fmt.Errorf("preflight: %w", err)
	}
	resp.Body.Close()
	fmt.Fprintf(out, "endpoint: OPTIONS %d\n", resp.StatusCode)
	missing := 0
	for _, h := range corsHeaders {
		v := resp.Header.Get(h)
		if v == "" {
			missing++
			v = "(missing)"
		}
		fmt.Fprintf(out, "endpoint:   %s: %s\n", h, v)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("preflight returned status %d", resp.StatusCode)
	}
	if missing > 0 {
		return fmt.Errorf("preflight missing %d CORS headers", missing)
	}

	start := time.Now()
	resp, err = send(ctx, client, http.MethodGet, url)
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	defer resp.Body.Close()

	var body endpointBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	fmt.Fprintf(out, "endpoint: GET %d in %s\n", resp.StatusCode, time.Since(start).Round(time.Millisecond))
	if resp.StatusCode != http.StatusOK || !body.Success {
		return fmt.Errorf("handler reported: %s", body.Error)
	}
	fmt.Fprintf(out, "endpoint: %d projects\n", len(body.Projects))
	return nil
}

func send(ctx context.Context, client *http.Client, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if method == http.MethodOptions {
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	}
	return client.Do(req)
}
