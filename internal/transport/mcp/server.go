package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
)

// Server wraps the mark3labs/mcp-go MCPServer and its StreamableHTTPServer.
// Tools are registered in tools.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

// New creates the MCP transport server. A nil projectSvc keeps the tools registered
// but makes them report the configuration error.
func New(name, version string, projectSvc *projectsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		name,
		version,
		mcpserver.WithToolCapabilities(false),
	)

	RegisterTools(mcpSrv, projectSvc)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler that serves the streamable HTTP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
