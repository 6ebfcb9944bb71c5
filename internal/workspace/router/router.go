// Package router provides workspace module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mouadistaa/project-pulse-ai/internal/middleware"
	"github.com/Mouadistaa/project-pulse-ai/internal/workspace/handler"
	"github.com/Mouadistaa/project-pulse-ai/internal/workspace/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/workspace/service"
)

// RegisterRoutes registers workspace module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/workspaces", h.ListWorkspaces)
	r.POST("/workspaces", h.CreateWorkspace)
	r.POST("/workspaces/:id/integrations", middleware.UUIDParams("id"), h.AddIntegration)
}
