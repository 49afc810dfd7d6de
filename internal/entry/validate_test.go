package entry

import (
	"errors"
	"testing"

	"github.com/mskim274/and-plus-time-analyzer/internal/model"
)

func validDraft() Draft {
	return Draft{
		Name:        "김민수",
		Level:       model.LevelSenior,
		ProjectName: "판교 데이터센터",
		Discipline:  model.DisciplineArchitecture,
		Activity:    model.ActivityModeling,
		SubActivity: model.SubActivitiesFor(model.ActivityModeling)[0],
		Role:        "PM",
		Hours:       8,
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	if err := validateDraft(validDraft()); err != nil {
		t.Errorf("validateDraft() error = %v, want nil", err)
	}
}

func TestValidateDraft_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(d *Draft)
	}{
		{
			name:   "이름이 공백",
			modify: func(d *Draft) { d.Name = "   " },
		},
		{
			name:   "프로젝트명이 비어 있음",
			modify: func(d *Draft) { d.ProjectName = "" },
		},
		{
			name:   "역할이 비어 있음",
			modify: func(d *Draft) { d.Role = "" },
		},
		{
			name:   "투입 시간이 0",
			modify: func(d *Draft) { d.Hours = 0 },
		},
		{
			name:   "투입 시간이 음수",
			modify: func(d *Draft) { d.Hours = -1 },
		},
		{
			name:   "정의되지 않은 기술 등급",
			modify: func(d *Draft) { d.Level = "마스터" },
		},
		{
			name:   "공종 필터 전용 값 ALL",
			modify: func(d *Draft) { d.Discipline = model.DisciplineAll },
		},
		{
			name:   "정의되지 않은 업무 대분류",
			modify: func(d *Draft) { d.Activity = "10. 기타" },
		},
		{
			name: "다른 대분류의 세부업무",
			modify: func(d *Draft) {
				d.SubActivity = model.SubActivitiesFor(model.ActivityReviewAnalysis)[0]
			},
		},
		{
			name:   "허용 목록에 없는 세부업무",
			modify: func(d *Draft) { d.SubActivity = "1-99. 없는 항목" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.modify(&draft)

			err := validateDraft(draft)
			if err == nil {
				t.Fatal("validateDraft() error = nil, want validation error")
			}

			var apiErr *model.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("validateDraft() error type = %T, want *model.APIError", err)
			}
			if apiErr.Code != model.ErrCodeValidationFailed {
				t.Errorf("Code = %v, want %v", apiErr.Code, model.ErrCodeValidationFailed)
			}
		})
	}
}
