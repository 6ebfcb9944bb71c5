// Package router provides sync job module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/handler"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/service"
	"github.com/Mouadistaa/project-pulse-ai/internal/middleware"
)

// RegisterRoutes registers sync job module routes.
func RegisterRoutes(r gin.IRouter, jobs service.JobService, logger *zap.SugaredLogger) {
	h := handler.New(jobs, logger)

	r.POST("/jobs/sync", h.EnqueueSync)
	r.GET("/jobs/:id", middleware.UUIDParams("id"), h.GetJob)
}
