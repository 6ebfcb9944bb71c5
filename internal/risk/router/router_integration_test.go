package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	alertModel "github.com/Mouadistaa/project-pulse-ai/internal/alert/model"
	appConfig "github.com/Mouadistaa/project-pulse-ai/internal/config"
	"github.com/Mouadistaa/project-pulse-ai/internal/database/testdb"
	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
	riskModel "github.com/Mouadistaa/project-pulse-ai/internal/risk/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/risk/repository"
	"github.com/Mouadistaa/project-pulse-ai/internal/risk/service"
)

const workspaceID = "3f6c1d2e-8a4b-4c7d-9e21-5b0a7f9c4d13"

func TestIntegration_DetectAndListRisks(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t, &metricsModel.Snapshot{}, &riskModel.Signal{}, &alertModel.Alert{})
	metrics := metricsRepository.New(db)
	require.NoError(t, metrics.Upsert(ctx, &metricsModel.Snapshot{
		WorkspaceID: workspaceID,
		Day:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Throughput:  metricsModel.Float(10),
		LeadTimeP85: metricsModel.Float(20),
		BugRatio:    metricsModel.Float(0.1),
	}))
	require.NoError(t, metrics.Upsert(ctx, &metricsModel.Snapshot{
		WorkspaceID: workspaceID,
		Day:         time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Throughput:  metricsModel.Float(8),
		LeadTimeP85: metricsModel.Float(25),
		BugRatio:    metricsModel.Float(0.35),
	}))

	findings, err := service.New(repository.New(db), metrics, zap.NewNop().Sugar()).DetectRisks(ctx, workspaceID)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	var alerts []alertModel.Alert
	require.NoError(t, db.Order("title").Find(&alerts).Error)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Risk Detected: DELAY", alerts[0].Title)
	assert.Equal(t, alertModel.SeverityMedium, alerts[0].Severity)
	assert.Equal(t, "Risk Detected: INSTABILITY", alerts[1].Title)
	assert.Equal(t, alertModel.SeverityHigh, alerts[1].Severity)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, appConfig.EngineConfig{RisksHistoryLimit: 10}, zap.NewNop().Sugar())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/workspaces/"+workspaceID+"/risks", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]riskModel.SignalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["risks"], 2)
}

func TestIntegration_ListRisksMalformedWorkspaceID(t *testing.T) {
	db := testdb.New(t, &riskModel.Signal{})
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, appConfig.EngineConfig{RisksHistoryLimit: 10}, zap.NewNop().Sugar())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/workspaces/xyz/risks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}
