// Package user는 사용자 관리의 도메인 로직을 제공한다.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mskim274/and-plus-time-analyzer/internal/model"
	"github.com/mskim274/and-plus-time-analyzer/internal/repository"
)

// EntryDeleter는 업무시간 기록의 일괄 삭제 인터페이스.
type EntryDeleter interface {
	DeleteByUserID(ctx context.Context, userID string) error
}

// Service는 사용자 관리의 서비스 계층.
// 탈퇴 처리의 비즈니스 로직을 제공한다.
type Service struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	entryDeleter EntryDeleter
}

// NewService는 Service의 새 인스턴스를 생성한다.
func NewService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	entryDeleter EntryDeleter,
) *Service {
	return &Service{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		entryDeleter: entryDeleter,
	}
}

// Withdraw는 사용자의 탈퇴 처리를 실행한다.
// 삭제 순서: time_entries → sessions → user(+ CASCADE: identities)
func (s *Service) Withdraw(ctx context.Context, userID string) error {
	// 사용자 존재 확인
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("사용자 조회에 실패했습니다: %w", err)
	}
	if user == nil {
		return model.NewUserNotFoundError()
	}

	slog.Info("탈퇴 처리를 시작합니다",
		slog.String("user_id", userID),
	)

	// 1. 업무시간 기록을 삭제한다
	if s.entryDeleter != nil {
		if err := s.entryDeleter.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("기록 삭제에 실패했습니다: %w", err)
		}
	}

	// 2. 세션을 삭제한다
	if s.sessionRepo != nil {
		if err := s.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("세션 삭제에 실패했습니다: %w", err)
		}
	}

	// 3. 사용자를 삭제한다(identities는 CASCADE 삭제)
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("사용자 삭제에 실패했습니다: %w", err)
	}

	slog.Info("탈퇴 처리가 완료되었습니다",
		slog.String("user_id", userID),
	)

	return nil
}
