package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
)

// RegisterTools registers all MCP tools on the server.
func RegisterTools(s *mcpserver.MCPServer, projectSvc *projectsvc.Service) {
	s.AddTool(mcpmcp.NewTool("list_projects",
		mcpmcp.WithDescription("List every Scout Interest project, newest first. Returns a JSON array of project rows exactly as stored, including nested results when configured."),
	), listProjectsHandler(projectSvc))
}

// ── Tool handlers ─────────────────────────────────────────────────────────

func listProjectsHandler(projectSvc *projectsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, _ mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		if projectSvc == nil {
			return mcpmcp.NewToolResultText("error: Database not configured"), nil
		}

		projects, err := projectSvc.List(ctx)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		data, err := json.Marshal(projects)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}
