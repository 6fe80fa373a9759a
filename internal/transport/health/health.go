package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
)

const pingTimeout = 1 * time.Second

type Response struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Store     string    `json:"store"`
}

type Handler struct {
	serviceName string
	version     string
	svc         *projectsvc.Service
}

// NewHandler reports store status through svc; nil reports "disabled".
func NewHandler(serviceName, version string, svc *projectsvc.Service) *Handler {
	return &Handler{serviceName: serviceName, version: version, svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.check)
	r.GET("/healthz", h.check)
}

func (h *Handler) check(c *gin.Context) {
	store := "disabled"
	if h.svc != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		if err := h.svc.Ping(ctx); err != nil {
			store = "down"
		} else {
			store = "up"
		}
	}

	c.JSON(http.StatusOK, Response{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Store:     store,
	})
}
