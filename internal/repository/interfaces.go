// Package repository는 데이터 영속화 인터페이스를 정의한다.
package repository

import (
	"context"

	"github.com/mskim274/and-plus-time-analyzer/internal/model"
)

// UserRepository는 사용자 데이터의 영속화 인터페이스.
type UserRepository interface {
	// FindByID는 지정 ID의 사용자를 조회한다. 존재하지 않으면 nil을 반환한다.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// CreateWithIdentity는 사용자와 identity를 동일 트랜잭션으로 생성한다.
	CreateWithIdentity(ctx context.Context, user *model.User, identity *model.Identity) error

	// DeleteByID는 지정 ID의 사용자를 삭제한다.
	// 연관된 identities, sessions, time_entries는 CASCADE로 삭제된다.
	DeleteByID(ctx context.Context, id string) error
}

// IdentityRepository는 외부 IdP 연결 정보의 영속화 인터페이스.
type IdentityRepository interface {
	// FindByProviderAndProviderUserID는 provider와 provider_user_id로 identity를 검색한다.
	// 존재하지 않으면 nil을 반환한다.
	FindByProviderAndProviderUserID(ctx context.Context, provider, providerUserID string) (*model.Identity, error)
}

// SessionRepository는 세션 데이터의 영속화 인터페이스.
type SessionRepository interface {
	// Create는 세션을 생성한다.
	Create(ctx context.Context, session *model.Session) error
	// FindByID는 지정 ID의 세션을 조회한다. 기한이 지난 경우 nil을 반환한다.
	FindByID(ctx context.Context, id string) (*model.Session, error)
	// DeleteByID는 지정 ID의 세션을 삭제한다.
	DeleteByID(ctx context.Context, id string) error
	// DeleteByUserID는 지정 사용자의 모든 세션을 삭제한다.
	DeleteByUserID(ctx context.Context, userID string) error
}

// EntryRepository는 업무시간 기록의 영속화 인터페이스.
type EntryRepository interface {
	// FindByID는 지정 ID의 기록을 조회한다. 존재하지 않으면 nil을 반환한다.
	FindByID(ctx context.Context, id string) (*model.TimeEntry, error)

	// ListByUserID는 지정 사용자의 기록을 date 내림차순(최신 우선)으로 반환한다.
	ListByUserID(ctx context.Context, userID string) ([]*model.TimeEntry, error)

	// Create는 기록을 생성한다.
	Create(ctx context.Context, entry *model.TimeEntry) error

	// Update는 기록의 편집 가능한 전 필드를 치환한다. ID와 UserID는 변경하지 않는다.
	Update(ctx context.Context, entry *model.TimeEntry) error

	// Delete는 지정 ID의 기록을 삭제한다.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID는 지정 사용자의 모든 기록을 삭제한다.
	DeleteByUserID(ctx context.Context, userID string) error
}
