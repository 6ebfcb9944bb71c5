// Package router provides risk module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/middleware"
	"github.com/Mouadistaa/project-pulse-ai/internal/risk/handler"
	"github.com/Mouadistaa/project-pulse-ai/internal/risk/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/risk/service"
)

// RegisterRoutes registers risk module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, cfg appConfig.EngineConfig, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(db), metricsRepository.New(db), logger)
	h := handler.New(svc, cfg.RisksHistoryLimit, logger)

	r.GET("/workspaces/:id/risks", middleware.UUIDParams("id"), h.ListRisks)
}
