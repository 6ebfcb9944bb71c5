// Package ingestion assembles the sync orchestrator and job service from a database connection.
package ingestion

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	activityRepository "github.com/Mouadistaa/project-pulse-ai/internal/activity/repository"
	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/service"
	"github.com/Mouadistaa/project-pulse-ai/internal/ingestion/source"
	"github.com/Mouadistaa/project-pulse-ai/internal/lock"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
	metricsService "github.com/Mouadistaa/project-pulse-ai/internal/metrics/service"
	riskRepository "github.com/Mouadistaa/project-pulse-ai/internal/risk/repository"
	riskService "github.com/Mouadistaa/project-pulse-ai/internal/risk/service"
	workspaceRepository "github.com/Mouadistaa/project-pulse-ai/internal/workspace/repository"
)

// Module holds the wired ingestion services.
type Module struct {
	Orchestrator *service.Orchestrator
	Jobs         service.JobService
}

// Sources returns the adapter registry for the configured mode.
// Without mock mode no adapter is registered and integrations are skipped.
func Sources(cfg appConfig.SyncConfig) source.Registry {
	if cfg.MockMode {
		return source.MockRegistry(source.NewMockSource())
	}
	return source.Registry{}
}

// New wires the ingestion module on top of db.
func New(db *gorm.DB, cfg appConfig.Config, locker lock.Locker, logger *zap.SugaredLogger) *Module {
	workspaces := workspaceRepository.New(db)
	activity := activityRepository.New(db)
	snapshots := metricsRepository.New(db)

	orchestrator := service.NewOrchestrator(service.Dependencies{
		Workspaces: workspaces,
		Activity:   activity,
		Metrics:    metricsService.New(snapshots, activity, cfg.Engine.WindowDays, logger),
		Risks:      riskService.New(riskRepository.New(db), snapshots, logger),
		Sources:    Sources(cfg.Sync),
		Locker:     locker,
	}, cfg.Sync, logger)

	return &Module{
		Orchestrator: orchestrator,
		Jobs:         service.NewJobService(repository.New(db), workspaces, orchestrator, logger),
	}
}
