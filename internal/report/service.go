package report

import (
	"context"
	"fmt"

	"github.com/mskim274/and-plus-time-analyzer/internal/repository"
)

// MetricsRecorder는 집계 요청 메트릭 수집의 인터페이스.
type MetricsRecorder interface {
	RecordSummaryRequest()
}

// Dashboard는 대시보드 화면에 필요한 집계와 프로젝트 선택지를 묶은 결과.
type Dashboard struct {
	Summary        Summary  `json:"summary"`
	ProjectOptions []string `json:"projectOptions"`
}

// Service는 대시보드 집계의 서비스 계층.
// 사용자의 기록 집합을 읽어 프로젝트 범위를 적용한 뒤 집계를 계산한다.
type Service struct {
	repo    repository.EntryRepository
	metrics MetricsRecorder
}

// NewService는 Service를 생성한다. metrics는 nil을 허용한다.
func NewService(repo repository.EntryRepository, metrics MetricsRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

// DashboardSummary는 사용자의 대시보드 집계를 반환한다.
// projectName이 ProjectAll이면 전체 기록을 집계한다.
// 프로젝트 선택지는 범위 적용 전의 전체 기록에서 계산한다.
func (s *Service) DashboardSummary(ctx context.Context, userID, projectName string) (*Dashboard, error) {
	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("기록 목록 조회에 실패했습니다: %w", err)
	}

	scoped := ScopeToProject(entries, projectName)

	if s.metrics != nil {
		s.metrics.RecordSummaryRequest()
	}

	return &Dashboard{
		Summary:        Summarize(scoped),
		ProjectOptions: ProjectOptions(entries),
	}, nil
}
