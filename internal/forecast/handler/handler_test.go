package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	forecastModel "github.com/Mouadistaa/project-pulse-ai/internal/forecast/model"
	"github.com/Mouadistaa/project-pulse-ai/internal/forecast/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Forecast(
	ctx context.Context,
	workspaceID string,
	target time.Time,
	backlog int,
) (*forecastModel.ForecastResponse, error) {
	args := m.Called(ctx, workspaceID, target, backlog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forecastModel.ForecastResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/workspaces/:id/forecast", h.GetForecast)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_GetForecast(t *testing.T) {
	target := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(New(svc, zap.NewNop().Sugar()))
		svc.On("Forecast", mock.Anything, "ws-1", target, 12).Return(&forecastModel.ForecastResponse{
			TargetDate:  "2024-03-10",
			BacklogSize: 12,
			Probability: 0.42,
		}, nil)

		w := get(r, "/workspaces/ws-1/forecast?target_date=2024-03-10&backlog_size=12")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp forecastModel.ForecastResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0.42, resp.Probability)
	})

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing target", query: "backlog_size=3"},
		{name: "bad target", query: "target_date=10/03/2024&backlog_size=3"},
		{name: "missing backlog", query: "target_date=2024-03-10"},
		{name: "bad backlog", query: "target_date=2024-03-10&backlog_size=many"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			r := setupRouter(New(svc, zap.NewNop().Sugar()))

			w := get(r, "/workspaces/ws-1/forecast?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "Forecast", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("negative backlog", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(New(svc, zap.NewNop().Sugar()))
		svc.On("Forecast", mock.Anything, "ws-1", target, -4).Return(nil, forecastModel.ErrInvalidBacklogSize)

		w := get(r, "/workspaces/ws-1/forecast?target_date=2024-03-10&backlog_size=-4")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := new(mockService)
		r := setupRouter(New(svc, zap.NewNop().Sugar()))
		svc.On("Forecast", mock.Anything, "ws-1", target, 1).Return(nil, errors.New("boom"))

		w := get(r, "/workspaces/ws-1/forecast?target_date=2024-03-10&backlog_size=1")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
