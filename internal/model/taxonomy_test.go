package model

import "testing"

// TestResolveSubActivity_KeepsValidSelection은 기존 선택값이 새 대분류에서도
// 유효하면 그대로 유지됨을 검증한다.
func TestResolveSubActivity_KeepsValidSelection(t *testing.T) {
	got := ResolveSubActivity(ActivityModeling, "2-02. Family(Library) 수정 및 신규")
	if got != "2-02. Family(Library) 수정 및 신규" {
		t.Errorf("expected selection to be kept, got %q", got)
	}
}

// TestResolveSubActivity_ResetsToFirstOption은 대분류 변경으로 기존 선택값이
// 무효해지면 새 목록의 첫 항목으로 치환됨을 검증한다.
func TestResolveSubActivity_ResetsToFirstOption(t *testing.T) {
	got := ResolveSubActivity(ActivityBCMS, "2-01. Modeling 작업")
	if got != "3-01. 속성 표준화" {
		t.Errorf("expected reset to first option, got %q", got)
	}
}

// TestResolveSubActivity_UnknownActivity는 알 수 없는 대분류의 경우
// 빈 문자열이 반환됨을 검증한다.
func TestResolveSubActivity_UnknownActivity(t *testing.T) {
	got := ResolveSubActivity(Activity("7. 없는 분류"), "1-00. 작업대기")
	if got != "" {
		t.Errorf("expected empty sub-activity, got %q", got)
	}
}

func TestIsValidSubActivity(t *testing.T) {
	tests := []struct {
		name        string
		activity    Activity
		subActivity string
		want        bool
	}{
		{"멤버인 세부업무", ActivityReviewAnalysis, "1-01. 도면 검토/분석", true},
		{"다른 대분류의 세부업무", ActivityReviewAnalysis, "2-01. Modeling 작업", false},
		{"빈 세부업무", ActivityReport, "", false},
		{"휴가는 AND Works 소속", ActivityAndWorks, "9-04. 휴가", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSubActivity(tt.activity, tt.subActivity); got != tt.want {
				t.Errorf("IsValidSubActivity(%q, %q) = %v, want %v", tt.activity, tt.subActivity, got, tt.want)
			}
		})
	}
}

// TestSubActivitiesFor_OrderPreserved는 세부업무 목록이 정의 순서대로 반환됨을 검증한다.
// 첫 항목은 연쇄 규칙의 기본 선택값이 되므로 순서가 의미를 가진다.
func TestSubActivitiesFor_OrderPreserved(t *testing.T) {
	got := SubActivitiesFor(ActivityReviewAnalysis)
	if len(got) != 5 {
		t.Fatalf("expected 5 sub-activities, got %d", len(got))
	}
	if got[0] != "1-00. 작업대기" {
		t.Errorf("expected first option 1-00, got %q", got[0])
	}
	if got[4] != "1-04. Work Volume 파악 / 질의서 작성" {
		t.Errorf("expected last option 1-04, got %q", got[4])
	}
}

func TestDisciplineValidity(t *testing.T) {
	if DisciplineAll.IsValid() {
		t.Error("ALL must not be a valid stored discipline")
	}
	if !DisciplineAll.IsValidFilter() {
		t.Error("ALL must be a valid filter")
	}
	for _, d := range DisciplineOptions() {
		if !d.IsValid() {
			t.Errorf("discipline %q should be valid", d)
		}
		if !d.IsValidFilter() {
			t.Errorf("discipline %q should be a valid filter", d)
		}
	}
	if Discipline("토목").IsValidFilter() {
		t.Error("unknown discipline must not be a valid filter")
	}
}

func TestActivityOptions_AllHaveSubActivities(t *testing.T) {
	for _, a := range ActivityOptions() {
		if !a.IsValid() {
			t.Errorf("activity %q should be valid", a)
		}
		if len(SubActivitiesFor(a)) == 0 {
			t.Errorf("activity %q has no sub-activities", a)
		}
	}
}
