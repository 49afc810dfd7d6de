package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mskim274/and-plus-time-analyzer/internal/model"
)

// TaxonomyHandler는 입력 폼 선택지(기술 등급, 공종, 업무 분류)의 HTTP 핸들러.
// 선택지는 정적이므로 서비스 계층 없이 model에서 직접 조회한다.
type TaxonomyHandler struct{}

// NewTaxonomyHandler는 TaxonomyHandler를 생성한다.
func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// taxonomyResponse는 선택지 일람의 API 응답.
type taxonomyResponse struct {
	Levels        []model.Level               `json:"levels"`
	Disciplines   []model.Discipline          `json:"disciplines"`
	Activities    []model.Activity            `json:"activities"`
	SubActivities map[model.Activity][]string `json:"subActivities"`
}

// Get은 입력 폼에 필요한 선택지 전체를 반환한다.
// GET /api/taxonomy
func (h *TaxonomyHandler) Get(w http.ResponseWriter, r *http.Request) {
	subActivities := make(map[model.Activity][]string)
	for _, activity := range model.ActivityOptions() {
		subActivities[activity] = model.SubActivitiesFor(activity)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(taxonomyResponse{
		Levels:        model.LevelOptions(),
		Disciplines:   model.DisciplineOptions(),
		Activities:    model.ActivityOptions(),
		SubActivities: subActivities,
	})
}
