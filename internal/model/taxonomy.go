package model

// subActivityMap은 업무 대분류별로 허용되는 세부업무 목록을 정의한다.
// 목록 순서는 화면의 드롭다운 표시 순서와 동일하다.
var subActivityMap = map[Activity][]string{
	ActivityReviewAnalysis: {
		"1-00. 작업대기",
		"1-01. 도면 검토/분석",
		"1-02. Modeling 검토/분석",
		"1-03. 내역서 검토 및 Coding",
		"1-04. Work Volume 파악 / 질의서 작성",
	},
	ActivityModeling: {
		"2-01. Modeling 작업",
		"2-02. Family(Library) 수정 및 신규",
		"2-03. Revit (Template) Setting",
	},
	ActivityBCMS: {
		"3-01. 속성 표준화",
		"3-02. 산출항목 Mapping",
		"3-03. WBS Mapping",
		"3-04. Rvt Upload 및 오류수정",
	},
	ActivityReport: {
		"4-01. Summary 작성",
		"4-02. Basis 작성",
	},
	ActivityManagement: {
		"5-01. Project Management 업무",
	},
	ActivityAndWorks: {
		"9-01. And 직원교육준비",
		"9-02. And 업무 교육수강 및 교육활동",
		"9-03. And 기타업무",
		"9-04. 휴가",
	},
}

// LevelOptions는 기술 등급 선택지를 표시 순서대로 반환한다.
func LevelOptions() []Level {
	return []Level{LevelSpecial, LevelSenior, LevelMid, LevelJunior}
}

// DisciplineOptions는 저장 가능한 공종 선택지를 표시 순서대로 반환한다.
// 필터 전용 값 DisciplineAll은 포함하지 않는다.
func DisciplineOptions() []Discipline {
	return []Discipline{DisciplineArchitecture, DisciplineMEP, DisciplineElectrical}
}

// ActivityOptions는 업무 대분류 선택지를 표시 순서대로 반환한다.
func ActivityOptions() []Activity {
	return []Activity{
		ActivityReviewAnalysis,
		ActivityModeling,
		ActivityBCMS,
		ActivityReport,
		ActivityManagement,
		ActivityAndWorks,
	}
}

// SubActivitiesFor는 지정한 업무 대분류에 허용되는 세부업무 목록을 반환한다.
// 알 수 없는 대분류의 경우 nil을 반환한다.
func SubActivitiesFor(activity Activity) []string {
	return subActivityMap[activity]
}

// IsValidSubActivity는 세부업무가 해당 대분류의 허용 목록에 포함되는지 판정한다.
func IsValidSubActivity(activity Activity, subActivity string) bool {
	for _, s := range subActivityMap[activity] {
		if s == subActivity {
			return true
		}
	}
	return false
}

// ResolveSubActivity는 대분류 변경 시의 세부업무 연쇄 규칙을 적용한다.
// 기존 선택값이 새 대분류에서도 유효하면 그대로 유지하고,
// 유효하지 않으면 새 목록의 첫 항목으로 치환한다. 목록이 비어 있으면 빈 문자열을 반환한다.
func ResolveSubActivity(activity Activity, previous string) string {
	options := subActivityMap[activity]
	if len(options) == 0 {
		return ""
	}
	if IsValidSubActivity(activity, previous) {
		return previous
	}
	return options[0]
}
