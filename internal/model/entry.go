package model

import "time"

// Level은 투입 인력의 기술 등급을 나타낸다.
type Level string

// 기술 등급
const (
	LevelSpecial Level = "특급"
	LevelSenior  Level = "고급"
	LevelMid     Level = "중급"
	LevelJunior  Level = "초급"
)

// Discipline은 공종(엔지니어링 분야)을 나타낸다.
// DisciplineAll은 목록 필터 전용 값이며 저장 값으로는 유효하지 않다.
type Discipline string

// 공종
const (
	DisciplineAll          Discipline = "ALL"
	DisciplineArchitecture Discipline = "건축"
	DisciplineMEP          Discipline = "설비"
	DisciplineElectrical   Discipline = "전기"
)

// Activity는 업무 대분류를 나타낸다.
type Activity string

// 업무 대분류
const (
	ActivityReviewAnalysis Activity = "1. 검토 및 분석"
	ActivityModeling       Activity = "2. Modeling"
	ActivityBCMS           Activity = "3. BCMS"
	ActivityReport         Activity = "4. Report"
	ActivityManagement     Activity = "5. Management"
	ActivityAndWorks       Activity = "9. AND Works"
)

// TimeEntry는 업무 투입시간 기록 한 건을 나타낸다.
// ID는 생성 시 1회 부여되며 이후 변경되지 않는다.
// UserID는 기록을 작성한 사용자이며, 본인만 수정·삭제할 수 있다.
type TimeEntry struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	AuthorName  string     `json:"authorName"`
	Name        string     `json:"name"`
	Level       Level      `json:"level"`
	ProjectName string     `json:"projectName"`
	Discipline  Discipline `json:"discipline"`
	Activity    Activity   `json:"activity"`
	SubActivity string     `json:"subActivity"`
	Role        string     `json:"role"`
	Hours       float64    `json:"hours"`
	Date        time.Time  `json:"date"`
}

// IsValid는 저장 가능한 기술 등급인지 판정한다.
func (l Level) IsValid() bool {
	switch l {
	case LevelSpecial, LevelSenior, LevelMid, LevelJunior:
		return true
	}
	return false
}

// IsValid는 저장 가능한 공종인지 판정한다. DisciplineAll은 저장 값이 아니므로 false를 반환한다.
func (d Discipline) IsValid() bool {
	switch d {
	case DisciplineArchitecture, DisciplineMEP, DisciplineElectrical:
		return true
	}
	return false
}

// IsValidFilter는 목록 필터로 유효한 값인지 판정한다. 저장 가능한 공종과 DisciplineAll을 허용한다.
func (d Discipline) IsValidFilter() bool {
	return d == DisciplineAll || d.IsValid()
}

// IsValid는 유효한 업무 대분류인지 판정한다.
func (a Activity) IsValid() bool {
	_, ok := subActivityMap[a]
	return ok
}
