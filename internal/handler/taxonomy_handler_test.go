package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTaxonomyHandler_Get(t *testing.T) {
	h := NewTaxonomyHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/taxonomy", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Levels        []string            `json:"levels"`
		Disciplines   []string            `json:"disciplines"`
		Activities    []string            `json:"activities"`
		SubActivities map[string][]string `json:"subActivities"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if len(body.Levels) != 4 {
		t.Errorf("levels = %d, want 4", len(body.Levels))
	}
	if len(body.Disciplines) != 3 {
		t.Errorf("disciplines = %d, want 3", len(body.Disciplines))
	}
	// 공종 선택지에 필터 전용 값 ALL은 포함되지 않는다
	for _, d := range body.Disciplines {
		if d == "ALL" {
			t.Error("disciplines must not contain ALL")
		}
	}
	if len(body.Activities) != 6 {
		t.Errorf("activities = %d, want 6", len(body.Activities))
	}
	for _, a := range body.Activities {
		if len(body.SubActivities[a]) == 0 {
			t.Errorf("activity %q has no sub-activities", a)
		}
	}
}
