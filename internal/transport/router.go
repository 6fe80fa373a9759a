package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
	"github.com/alanyang/scout-interest/internal/transport/health"
	projecthandler "github.com/alanyang/scout-interest/internal/transport/project"
)

// RouterDeps carries everything NewRouter mounts. ProjectSvc is nil when the store
// has no credentials; MCP is nil when the tool endpoint is disabled.
type RouterDeps struct {
	ServiceName string
	Version     string
	ProjectSvc  *projectsvc.Service
	MCP         http.Handler
}

const projectsPath = "/api/projects"

func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// Extension methods (PROPFIND, MKCOL, ...) have no route tree and would otherwise 404.
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	health.NewHandler(deps.ServiceName, deps.Version, deps.ProjectSvc).Register(r)

	projecthandler.Register(r.Group(projectsPath), deps.ProjectSvc)
	projectsNoMethod := projecthandler.NoMethod(deps.ProjectSvc)
	r.NoMethod(func(c *gin.Context) {
		if c.Request.URL.Path == projectsPath {
			projectsNoMethod(c)
			return
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	if deps.MCP != nil {
		r.Any("/mcp", gin.WrapH(deps.MCP))
	}

	return r
}
