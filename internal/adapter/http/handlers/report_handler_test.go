package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cityfuture/internal/adapter/http/handlers/mocks"
	"cityfuture/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConstructionOrderUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports", h.GetReport)

		uc.EXPECT().GenerateReport(gomock.Any()).Return(entities.ConstructionReport{
			ReportDate:       time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			TotalOrders:      3,
			PendingOrders:    1,
			InProgressOrders: 1,
			FinishedOrders:   1,
			PendingByType:    map[string]int{"House": 1},
			InProgressByType: map[string]int{"Lake": 1},
			FinishedByType:   map[string]int{"Gym": 1},
			ProjectSummary: entities.ProjectSummary{
				TotalOrders: 3,
				Status:      entities.ProjectStatusInProgress,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_orders"] != float64(3) || body["report_date"] != "2024-06-15" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConstructionOrderUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports", h.GetReport)

		uc.EXPECT().GenerateReport(gomock.Any()).Return(entities.ConstructionReport{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReportHandler_GetProjectSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConstructionOrderUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/reports/summary", h.GetProjectSummary)

	uc.EXPECT().GetProjectSummary(gomock.Any()).Return(entities.ProjectSummary{
		TotalConstructionDays: 12,
		ProjectStartDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		ProjectEndDate:        time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		EstimatedDeliveryDate: time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		TotalOrders:           4,
		Status:                entities.ProjectStatusInProgress,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != entities.ProjectStatusInProgress || body["estimated_delivery_date"] != "2024-06-12" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestReportHandler_GetProjectEndDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConstructionOrderUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/reports/end-date", h.GetProjectEndDate)

	uc.EXPECT().GetProjectEndDate(gomock.Any()).Return(time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/end-date", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["project_end_date"] != "2024-06-12" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
