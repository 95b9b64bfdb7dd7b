package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/services/container"
	"github.com/Djiento/ActionnaireInscrit/internal/error/code"
	"github.com/Djiento/ActionnaireInscrit/internal/error/response"
)

// HealthController reports service liveness and storage health.
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller.
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler dispatching to the controller.
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.Fail(ctx, code.ErrRecordNotFound, nil)
		}
	}
}

// Ping answers liveness probes.
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"status": "ok"})
}

// Status reports database health and pool statistics.
func (c *HealthController) Status() {
	pool := c.Container.GetPool()
	if pool == nil {
		response.Fail(c.Ctx, code.ErrUnknown, nil)
		return
	}

	if err := pool.HealthCheck(); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "database unreachable", nil)
		return
	}

	stats, err := pool.Stats()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	response.Success(c.Ctx, gin.H{"database": stats})
}
