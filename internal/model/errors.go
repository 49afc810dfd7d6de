package model

import "fmt"

// APIError는 통일 에러 포맷을 나타낸다.
// 화면에 표시할 원인 카테고리와 대처 방법을 포함한다.
type APIError struct {
	Code     string // 에러 코드
	Message  string // 에러 메시지
	Category string // 카테고리: auth, validation, entry, system
	Action   string // 사용자 대처 방법
}

// Error는 error 인터페이스를 구현한다.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 정의된 에러 코드
const (
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeEntryNotFound    = "ENTRY_NOT_FOUND"
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	ErrCodeInvalidFilter    = "INVALID_FILTER"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
)

// NewUnauthorizedError는 미인증 요청 에러를 생성한다.
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "인증이 필요합니다.",
		Category: "auth",
		Action:   "로그인해 주세요.",
	}
}

// NewValidationError는 입력 검증 실패 에러를 생성한다.
// 원래 화면과 동일하게 어느 필드가 잘못되었는지는 구분하지 않는다.
func NewValidationError() *APIError {
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  "모든 필드를 올바르게 입력해주세요.",
		Category: "validation",
		Action:   "필수 항목과 투입 시간(0보다 큰 값)을 확인해 주세요.",
	}
}

// NewEntryNotFoundError는 기록 미존재 에러를 생성한다.
func NewEntryNotFoundError(entryID string) *APIError {
	return &APIError{
		Code:     ErrCodeEntryNotFound,
		Message:  fmt.Sprintf("지정한 기록을 찾을 수 없습니다: %s", entryID),
		Category: "entry",
		Action:   "목록을 새로고침한 뒤 다시 시도해 주세요.",
	}
}

// NewPermissionDeniedError는 소유자가 아닌 기록에 대한 변경 시도 에러를 생성한다.
func NewPermissionDeniedError() *APIError {
	return &APIError{
		Code:     ErrCodePermissionDenied,
		Message:  "본인이 작성한 기록만 수정하거나 삭제할 수 있습니다.",
		Category: "entry",
		Action:   "본인이 작성한 기록인지 확인해 주세요.",
	}
}

// NewInvalidFilterError는 무효한 공종 필터 에러를 생성한다.
func NewInvalidFilterError(filter string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidFilter,
		Message:  fmt.Sprintf("무효한 필터입니다: %s", filter),
		Category: "validation",
		Action:   "필터에는 ALL, 건축, 설비, 전기 중 하나를 지정해 주세요.",
	}
}

// NewUserNotFoundError는 사용자 미존재 에러를 생성한다.
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "사용자를 찾을 수 없습니다.",
		Category: "auth",
		Action:   "다시 로그인해 주세요.",
	}
}
