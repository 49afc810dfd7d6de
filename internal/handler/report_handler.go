package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mskim274/and-plus-time-analyzer/internal/middleware"
	"github.com/mskim274/and-plus-time-analyzer/internal/model"
	"github.com/mskim274/and-plus-time-analyzer/internal/report"
)

// ReportServiceInterface는 리포트 핸들러가 필요로 하는 서비스 인터페이스.
type ReportServiceInterface interface {
	// DashboardSummary는 사용자의 대시보드 집계를 반환한다.
	DashboardSummary(ctx context.Context, userID, projectName string) (*report.Dashboard, error)
}

// ReportHandler는 대시보드 집계의 HTTP 핸들러.
type ReportHandler struct {
	service ReportServiceInterface
}

// NewReportHandler는 ReportHandler를 생성한다.
func NewReportHandler(service ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// Summary는 대시보드 집계를 반환한다.
// GET /api/reports/summary?project=ALL|<프로젝트명>
// project 미지정 시 전체 프로젝트를 집계한다.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	projectName := r.URL.Query().Get("project")
	if projectName == "" {
		projectName = report.ProjectAll
	}

	dashboard, err := h.service.DashboardSummary(r.Context(), userID, projectName)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}
