package handler

import (
	"context"
	"net/http"

	"github.com/mskim274/and-plus-time-analyzer/internal/middleware"
	"github.com/mskim274/and-plus-time-analyzer/internal/model"
)

// UserServiceInterface는 사용자 핸들러가 필요로 하는 서비스 인터페이스.
type UserServiceInterface interface {
	// Withdraw는 사용자의 탈퇴 처리를 실행한다.
	// 사용자의 기록, 세션, 계정을 일괄 삭제한다.
	Withdraw(ctx context.Context, userID string) error
}

// UserHandler는 사용자 관리의 HTTP 핸들러.
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler는 UserHandler를 생성한다.
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// Withdraw는 사용자의 탈퇴 처리를 실행한다.
// DELETE /api/users/me
func (h *UserHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	if err := h.service.Withdraw(r.Context(), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
