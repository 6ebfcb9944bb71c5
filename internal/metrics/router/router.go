// Package router provides metrics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	activityRepository "github.com/Mouadistaa/project-pulse-ai/internal/activity/repository"
	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	"github.com/Mouadistaa/project-pulse-ai/internal/metrics/handler"
	"github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/metrics/service"
	"github.com/Mouadistaa/project-pulse-ai/internal/middleware"
)

// RegisterRoutes registers metrics module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg appConfig.EngineConfig, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db), activityRepository.New(db), cfg.WindowDays, logger)
	h := handler.New(svc, cfg.MetricsHistoryLimit, logger)

	r.GET("/workspaces/:id/metrics", middleware.UUIDParams("id"), h.ListMetrics)
}
