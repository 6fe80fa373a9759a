package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
	"github.com/alanyang/scout-interest/internal/mocks"
	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func resultText(r *mcpmcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	b, _ := json.Marshal(r.Content[0])
	var m map[string]interface{}
	json.Unmarshal(b, &m) //nolint:errcheck
	if t, ok := m["text"].(string); ok {
		return t
	}
	return ""
}

// ── listProjectsHandler ───────────────────────────────────────────────────────

func TestListProjectsHandler(t *testing.T) {
	row, err := domainproject.Parse([]byte(`{"id":1,"name":"golf fans","status":"done","created_at":"2026-03-01T10:00:00Z","audience_size":null}`))
	require.NoError(t, err)

	tests := []struct {
		name         string
		noStore      bool
		setup        func(repo *mocks.MockProjectRepository)
		wantText     string
		wantContains string
	}{
		{
			name:     "no store configured",
			noStore:  true,
			wantText: "error: Database not configured",
		},
		{
			name: "empty collection is an empty array",
			setup: func(repo *mocks.MockProjectRepository) {
				repo.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			wantText: "[]",
		},
		{
			name: "projects serialized in store order",
			setup: func(repo *mocks.MockProjectRepository) {
				repo.EXPECT().List(gomock.Any()).Return([]domainproject.Project{row}, nil)
			},
			wantText: `[{"id":1,"name":"golf fans","status":"done","created_at":"2026-03-01T10:00:00Z","audience_size":null}]`,
		},
		{
			name: "store error reported as text",
			setup: func(repo *mocks.MockProjectRepository) {
				repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("Invalid API key"))
			},
			wantContains: "error: Invalid API key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svc *projectsvc.Service
			if !tt.noStore {
				repo := mocks.NewMockProjectRepository(gomock.NewController(t))
				tt.setup(repo)
				svc = projectsvc.NewService(repo)
			}

			res, err := listProjectsHandler(svc)(context.Background(), mcpmcp.CallToolRequest{})
			require.NoError(t, err)
			text := resultText(res)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, text)
			}
			if tt.wantContains != "" {
				assert.Contains(t, text, tt.wantContains)
			}
		})
	}
}

func TestNew_ExposesHandler(t *testing.T) {
	srv := New("scout-interest", "test", nil)
	assert.NotNil(t, srv.Handler())
}
