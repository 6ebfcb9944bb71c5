// Package router provides forecast module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	"github.com/Mouadistaa/project-pulse-ai/internal/forecast/handler"
	"github.com/Mouadistaa/project-pulse-ai/internal/forecast/service"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/middleware"
)

// RegisterRoutes registers forecast module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg appConfig.EngineConfig, logger *zap.SugaredLogger) {
	svc := service.New(metricsRepository.New(db), cfg, logger)
	h := handler.New(svc, logger)

	r.GET("/workspaces/:id/forecast", middleware.UUIDParams("id"), h.GetForecast)
}
