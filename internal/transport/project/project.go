package project

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
)

const (
	msgNotConfigured    = "Database not configured"
	msgMethodNotAllowed = "Method not allowed"
)

// Register mounts the projects collection on rg. A nil svc means the store has no
// credentials: every non-OPTIONS request then fails with a configuration error.
func Register(rg *gin.RouterGroup, svc *projectsvc.Service) {
	if svc == nil {
		rg.Any("", notConfigured())
		return
	}
	rg.Any("", handleProjects(svc))
}

// NoMethod answers methods the router has no route for, such as PROPFIND.
func NoMethod(svc *projectsvc.Service) gin.HandlerFunc {
	if svc == nil {
		return notConfigured()
	}
	return methodNotAllowed
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": msgMethodNotAllowed})
}

func notConfigured() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			return
		}
		writeError(c, domainproject.ErrNotConfigured)
	}
}

func handleProjects(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodOptions:
			c.Status(http.StatusOK)
		case http.MethodGet:
			projects, err := svc.List(c.Request.Context())
			if err != nil {
				writeError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
		default:
			methodNotAllowed(c)
		}
	}
}

// writeError maps the error taxonomy onto a single 500 response.
func writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	var storeErr *domainproject.StoreError
	switch {
	case errors.Is(err, domainproject.ErrNotConfigured):
		slog.WarnContext(ctx, "projects request with no store configured",
			"request_id", c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgNotConfigured})
	case errors.As(err, &storeErr):
		slog.ErrorContext(ctx, "store query failed",
			"request_id", c.GetString("request_id"), "error", storeErr.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": storeErr.Err.Error()})
	default:
		slog.ErrorContext(ctx, "projects request failed",
			"request_id", c.GetString("request_id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
