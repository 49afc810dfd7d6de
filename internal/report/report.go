// Package report는 대시보드용 집계와 공종 필터를 제공한다.
// 집계·필터는 모두 순수 함수이며 저장소나 화면 상태에 의존하지 않는다.
package report

import "github.com/mskim274/and-plus-time-analyzer/internal/model"

// ProjectAll은 프로젝트 범위 지정의 전체 와일드카드.
const ProjectAll = "ALL"

// ProjectHours는 프로젝트별 투입 시간 합계. 차트의 막대 하나에 대응한다.
type ProjectHours struct {
	ProjectName string  `json:"projectName"`
	Hours       float64 `json:"hours"`
}

// DisciplineHours는 공종별 투입 시간 합계. 도넛 차트의 조각 하나에 대응한다.
type DisciplineHours struct {
	Discipline model.Discipline `json:"discipline"`
	Hours      float64          `json:"hours"`
}

// Summary는 대시보드 집계 결과.
// 합산 중 반올림은 하지 않는다. 소수점 한 자리 표시는 화면 측의 책임이다.
type Summary struct {
	TotalHours        float64           `json:"totalHours"`
	ProjectCount      int               `json:"projectCount"`
	EntryCount        int               `json:"entryCount"`
	HoursByProject    []ProjectHours    `json:"hoursByProject"`
	HoursByDiscipline []DisciplineHours `json:"hoursByDiscipline"`
}

// FilterByDiscipline은 공종 필터를 적용한다.
// selector가 DisciplineAll이면 입력을 순서 그대로 반환하고,
// 그 외에는 공종이 일치하는 기록만 입력 순서를 유지한 채 반환한다.
func FilterByDiscipline(entries []*model.TimeEntry, selector model.Discipline) []*model.TimeEntry {
	if selector == model.DisciplineAll {
		return entries
	}
	var filtered []*model.TimeEntry
	for _, e := range entries {
		if e.Discipline == selector {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// ScopeToProject는 프로젝트 범위를 적용한다.
// projectName이 ProjectAll이면 입력을 순서 그대로 반환한다.
func ScopeToProject(entries []*model.TimeEntry, projectName string) []*model.TimeEntry {
	if projectName == ProjectAll {
		return entries
	}
	var scoped []*model.TimeEntry
	for _, e := range entries {
		if e.ProjectName == projectName {
			scoped = append(scoped, e)
		}
	}
	return scoped
}

// Summarize는 기록 집합으로부터 대시보드 집계를 계산한다.
// 프로젝트·공종의 표시 순서는 입력에서의 최초 등장 순서를 따른다.
// 빈 입력은 에러가 아니라 0 집계를 반환한다. 빈 상태 안내는 화면 측의 책임이다.
func Summarize(entries []*model.TimeEntry) Summary {
	summary := Summary{
		HoursByProject:    []ProjectHours{},
		HoursByDiscipline: []DisciplineHours{},
	}

	projectIndex := make(map[string]int)
	disciplineIndex := make(map[model.Discipline]int)

	for _, e := range entries {
		summary.TotalHours += e.Hours
		summary.EntryCount++

		if i, ok := projectIndex[e.ProjectName]; ok {
			summary.HoursByProject[i].Hours += e.Hours
		} else {
			projectIndex[e.ProjectName] = len(summary.HoursByProject)
			summary.HoursByProject = append(summary.HoursByProject, ProjectHours{
				ProjectName: e.ProjectName,
				Hours:       e.Hours,
			})
		}

		if i, ok := disciplineIndex[e.Discipline]; ok {
			summary.HoursByDiscipline[i].Hours += e.Hours
		} else {
			disciplineIndex[e.Discipline] = len(summary.HoursByDiscipline)
			summary.HoursByDiscipline = append(summary.HoursByDiscipline, DisciplineHours{
				Discipline: e.Discipline,
				Hours:      e.Hours,
			})
		}
	}

	summary.ProjectCount = len(summary.HoursByProject)
	return summary
}

// ProjectOptions는 기록에 등장하는 프로젝트명을 최초 등장 순서대로 중복 없이 반환한다.
// 대시보드의 프로젝트 범위 드롭다운에 사용한다.
func ProjectOptions(entries []*model.TimeEntry) []string {
	seen := make(map[string]bool)
	var options []string
	for _, e := range entries {
		if !seen[e.ProjectName] {
			seen[e.ProjectName] = true
			options = append(options, e.ProjectName)
		}
	}
	return options
}
