// Package entry는 업무시간 기록의 검증과 CRUD 도메인 로직을 제공한다.
package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mskim274/and-plus-time-analyzer/internal/model"
	"github.com/mskim274/and-plus-time-analyzer/internal/repository"
)

// MetricsRecorder는 기록 조작 메트릭 수집의 인터페이스.
// metrics.Collector의 부분집합으로 정의한다.
type MetricsRecorder interface {
	RecordEntryCreated()
	RecordEntryUpdated()
	RecordEntryDeleted()
	RecordValidationFailure()
}

// Service는 업무시간 기록의 서비스 계층.
// 입력 검증, 소유자 확인, 리포지토리 호출을 담당한다.
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

// List는 사용자의 기록을 최신 우선으로 반환한다.
func (s *Service) List(ctx context.Context, userID string) ([]*model.TimeEntry, error) {
	entries, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("기록 목록 조회에 실패했습니다: %w", err)
	}
	return entries, nil
}

// Create는 입력값을 검증한 뒤 새 기록을 생성한다.
// ID는 새로 발급하며 기록 일시는 현재 시각으로 설정한다.
// 작성자 표시명은 로그인 사용자에게서 가져온다.
func (s *Service) Create(ctx context.Context, user *model.User, draft Draft) (*model.TimeEntry, error) {
	if err := validateDraft(draft); err != nil {
		s.recordValidationFailure()
		return nil, err
	}

	entry := &model.TimeEntry{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		AuthorName:  user.Name,
		Name:        draft.Name,
		Level:       draft.Level,
		ProjectName: draft.ProjectName,
		Discipline:  draft.Discipline,
		Activity:    draft.Activity,
		SubActivity: draft.SubActivity,
		Role:        draft.Role,
		Hours:       draft.Hours,
		Date:        time.Now(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("기록 생성에 실패했습니다: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordEntryCreated()
	}
	return entry, nil
}

// Update는 기존 기록의 편집 가능한 전 필드를 치환하고 기록 일시를 갱신한다.
// 기록이 존재하지 않으면 ENTRY_NOT_FOUND, 소유자가 아니면 PERMISSION_DENIED를 반환한다.
func (s *Service) Update(ctx context.Context, userID, entryID string, draft Draft) (*model.TimeEntry, error) {
	if err := validateDraft(draft); err != nil {
		s.recordValidationFailure()
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("기록 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return nil, model.NewEntryNotFoundError(entryID)
	}
	if existing.UserID != userID {
		return nil, model.NewPermissionDeniedError()
	}

	existing.Name = draft.Name
	existing.Level = draft.Level
	existing.ProjectName = draft.ProjectName
	existing.Discipline = draft.Discipline
	existing.Activity = draft.Activity
	existing.SubActivity = draft.SubActivity
	existing.Role = draft.Role
	existing.Hours = draft.Hours
	existing.Date = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("기록 갱신에 실패했습니다: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordEntryUpdated()
	}
	return existing, nil
}

// Delete는 기록을 삭제한다. 삭제는 되돌릴 수 없으므로 확인 절차는 화면 측에서 거친다.
// 기록이 존재하지 않으면 ENTRY_NOT_FOUND, 소유자가 아니면 PERMISSION_DENIED를 반환한다.
func (s *Service) Delete(ctx context.Context, userID, entryID string) error {
	existing, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("기록 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return model.NewEntryNotFoundError(entryID)
	}
	if existing.UserID != userID {
		return model.NewPermissionDeniedError()
	}

	if err := s.repo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("기록 삭제에 실패했습니다: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordEntryDeleted()
	}
	return nil
}

func (s *Service) recordValidationFailure() {
	if s.metrics != nil {
		s.metrics.RecordValidationFailure()
	}
}
