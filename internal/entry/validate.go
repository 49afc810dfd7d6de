package entry

import (
	"strings"

	"github.com/mskim274/and-plus-time-analyzer/internal/model"
)

// Draft는 저장 전의 업무시간 기록 입력값을 나타낸다.
// ID, 작성자, 기록 일시는 저장 시점에 서비스가 부여한다.
type Draft struct {
	Name        string           `json:"name"`
	Level       model.Level      `json:"level"`
	ProjectName string           `json:"projectName"`
	Discipline  model.Discipline `json:"discipline"`
	Activity    model.Activity   `json:"activity"`
	SubActivity string           `json:"subActivity"`
	Role        string           `json:"role"`
	Hours       float64          `json:"hours"`
}

// validateDraft는 입력값을 검증한다.
// 위반이 있으면 원래 화면과 동일하게 필드를 구분하지 않는 단일 검증 에러를 반환한다.
// 검증 규칙:
//   - 이름, 프로젝트명, 역할: 공백 제외 비어 있지 않을 것
//   - 투입 시간: 0보다 클 것
//   - 기술 등급, 공종, 업무 대분류: 정의된 선택지에 속할 것
//   - 세부업무: 해당 대분류의 허용 목록에 속할 것
func validateDraft(d Draft) error {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.ProjectName) == "" ||
		strings.TrimSpace(d.Role) == "" {
		return model.NewValidationError()
	}
	if d.Hours <= 0 {
		return model.NewValidationError()
	}
	if !d.Level.IsValid() || !d.Discipline.IsValid() || !d.Activity.IsValid() {
		return model.NewValidationError()
	}
	if !model.IsValidSubActivity(d.Activity, d.SubActivity) {
		return model.NewValidationError()
	}
	return nil
}
