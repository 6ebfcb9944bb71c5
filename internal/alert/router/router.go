// Package router provides alert module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Mouadistaa/project-pulse-ai/internal/alert/handler"
	"github.com/Mouadistaa/project-pulse-ai/internal/alert/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/alert/service"
	"github.com/Mouadistaa/project-pulse-ai/internal/middleware"
)

// RegisterRoutes registers alert module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db), logger)
	h := handler.New(svc, logger)

	requireID := middleware.UUIDParams("id")

	r.GET("/workspaces/:id/alerts", requireID, h.ListAlerts)
	r.POST("/alerts/:id/ack", requireID, h.Acknowledge)
	r.POST("/alerts/:id/resolve", requireID, h.Resolve)
}
