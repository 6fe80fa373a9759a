package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"

	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
	portproject "github.com/alanyang/scout-interest/internal/port/project"
)

var _ portproject.Repository = (*Repository)(nil)

const restPath = "/rest/v1"

// Repository reads projects through the hosted store's PostgREST endpoint.
type Repository struct {
	client  *postgrest.Client
	table   string
	columns string
	timeout time.Duration
}

// Options configures a Repository. Timeout 0 leaves calls bounded only by the caller's context.
type Options struct {
	URL     string
	Key     string
	Table   string
	Embed   string
	Timeout time.Duration
}

func New(opts Options) (*Repository, error) {
	if opts.URL == "" || opts.Key == "" {
		return nil, domainproject.ErrNotConfigured
	}
	client := postgrest.NewClient(strings.TrimRight(opts.URL, "/")+restPath, "public", map[string]string{
		"apikey":        opts.Key,
		"Authorization": "Bearer " + opts.Key,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("parse store url: %w", client.ClientError)
	}
	table := opts.Table
	if table == "" {
		table = "projects"
	}
	columns := "*"
	if opts.Embed != "" {
		columns = "*,results:" + opts.Embed + "(*)"
	}
	return &Repository{client: client, table: table, columns: columns, timeout: opts.Timeout}, nil
}

func (r *Repository) List(ctx context.Context) ([]domainproject.Project, error) {
	body, err := r.execute(ctx, 0)
	if err != nil {
		return nil, err
	}
	var projects []domainproject.Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	_, err := r.execute(ctx, 1)
	return err
}

func (r *Repository) execute(ctx context.Context, limit int) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	q := r.client.From(r.table).
		Select(r.columns, "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})
	if limit > 0 {
		q = q.Limit(limit, "")
	}

	body, _, err := q.ExecuteWithContext(ctx)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("store request failed: %w", err)
		}
		return nil, errors.New(storeMessage(err))
	}
	return body, nil
}

// storeMessage drops the "(code) " prefix the client puts in front of the store's message.
func storeMessage(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "(") {
		if i := strings.Index(msg, ") "); i > 0 {
			return msg[i+2:]
		}
	}
	return msg
}
