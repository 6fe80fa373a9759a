package project

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
	portproject "github.com/alanyang/scout-interest/internal/port/project"
)

var _ portproject.Repository = (*Repository)(nil)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Repository struct {
	pool  *pgxpool.Pool
	query string
}

// New builds a repository reading from table. When embed is non-empty, rows of that
// table whose project_id matches are nested under "results".
func New(pool *pgxpool.Pool, table, embed string) (*Repository, error) {
	query, err := listQuery(table, embed)
	if err != nil {
		return nil, err
	}
	return &Repository{pool: pool, query: query}, nil
}

func listQuery(table, embed string) (string, error) {
	if !identRe.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	if embed == "" {
		return fmt.Sprintf(`SELECT to_jsonb(p) FROM %s p ORDER BY p.created_at DESC`,
			pgx.Identifier{table}.Sanitize()), nil
	}
	if !identRe.MatchString(embed) {
		return "", fmt.Errorf("invalid embed name %q", embed)
	}
	return fmt.Sprintf(
		`SELECT to_jsonb(p) || jsonb_build_object('results',
			COALESCE((SELECT jsonb_agg(to_jsonb(r)) FROM %s r WHERE r.project_id = p.id), '[]'::jsonb))
		 FROM %s p ORDER BY p.created_at DESC`,
		pgx.Identifier{embed}.Sanitize(), pgx.Identifier{table}.Sanitize()), nil
}

func (r *Repository) List(ctx context.Context) ([]domainproject.Project, error) {
	rows, err := r.pool.Query(ctx, r.query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domainproject.Project{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p, err := domainproject.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}
