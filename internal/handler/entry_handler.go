package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mskim274/and-plus-time-analyzer/internal/entry"
	"github.com/mskim274/and-plus-time-analyzer/internal/middleware"
	"github.com/mskim274/and-plus-time-analyzer/internal/model"
	"github.com/mskim274/and-plus-time-analyzer/internal/report"
)

// EntryServiceInterface는 기록 핸들러가 필요로 하는 서비스 인터페이스.
type EntryServiceInterface interface {
	// List는 사용자의 기록을 최신 우선으로 반환한다.
	List(ctx context.Context, userID string) ([]*model.TimeEntry, error)
	// Create는 입력값을 검증한 뒤 새 기록을 생성한다.
	Create(ctx context.Context, user *model.User, draft entry.Draft) (*model.TimeEntry, error)
	// Update는 기존 기록의 편집 가능한 전 필드를 치환한다.
	Update(ctx context.Context, userID, entryID string, draft entry.Draft) (*model.TimeEntry, error)
	// Delete는 기록을 삭제한다.
	Delete(ctx context.Context, userID, entryID string) error
}

// UserFinder는 기록 생성 시 작성자 정보 조회에 필요한 인터페이스.
// repository.UserRepository의 부분집합으로 정의한다.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// EntryHandler는 업무시간 기록의 HTTP 핸들러.
type EntryHandler struct {
	service EntryServiceInterface
	users   UserFinder
}

// NewEntryHandler는 EntryHandler를 생성한다.
func NewEntryHandler(service EntryServiceInterface, users UserFinder) *EntryHandler {
	return &EntryHandler{
		service: service,
		users:   users,
	}
}

// entryResponse는 기록의 API 응답.
type entryResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	AuthorName  string  `json:"authorName"`
	Name        string  `json:"name"`
	Level       string  `json:"level"`
	ProjectName string  `json:"projectName"`
	Discipline  string  `json:"discipline"`
	Activity    string  `json:"activity"`
	SubActivity string  `json:"subActivity"`
	Role        string  `json:"role"`
	Hours       float64 `json:"hours"`
	Date        string  `json:"date"`
}

// apiErrorResponse는 통일 에러 포맷의 응답.
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// List는 기록 목록을 반환한다.
// GET /api/entries?discipline=ALL|건축|설비|전기
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	// 공종 필터. 미지정 시 ALL로 취급한다.
	filter := model.Discipline(r.URL.Query().Get("discipline"))
	if filter == "" {
		filter = model.DisciplineAll
	}
	if !filter.IsValidFilter() {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidFilterError(string(filter)))
		return
	}

	entries, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	filtered := report.FilterByDiscipline(entries, filter)

	responses := make([]entryResponse, 0, len(filtered))
	for _, e := range filtered {
		responses = append(responses, toEntryResponse(e))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"entries": responses,
	})
}

// Create는 기록 생성을 처리한다.
// POST /api/entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	var draft entry.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "요청 본문 해석에 실패했습니다.",
			Category: "validation",
			Action:   "올바른 JSON 형식으로 요청해 주세요.",
		})
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if user == nil {
		writeAPIErrorResponse(w, http.StatusNotFound, model.NewUserNotFoundError())
		return
	}

	created, err := h.service.Create(r.Context(), user, draft)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toEntryResponse(created))
}

// Update는 기록 갱신을 처리한다. 작성자 본인만 갱신할 수 있다.
// PUT /api/entries/{id}
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	entryID := chi.URLParam(r, "id")

	var draft entry.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "요청 본문 해석에 실패했습니다.",
			Category: "validation",
			Action:   "올바른 JSON 형식으로 요청해 주세요.",
		})
		return
	}

	updated, err := h.service.Update(r.Context(), userID, entryID, draft)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toEntryResponse(updated))
}

// Delete는 기록 삭제를 처리한다. 작성자 본인만 삭제할 수 있다.
// DELETE /api/entries/{id}
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
		return
	}

	entryID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID, entryID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- 헬퍼 함수 ---

// toEntryResponse는 model.TimeEntry를 API 응답으로 변환한다.
func toEntryResponse(e *model.TimeEntry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		AuthorName:  e.AuthorName,
		Name:        e.Name,
		Level:       string(e.Level),
		ProjectName: e.ProjectName,
		Discipline:  string(e.Discipline),
		Activity:    string(e.Activity),
		SubActivity: e.SubActivity,
		Role:        e.Role,
		Hours:       e.Hours,
		Date:        e.Date.Format(time.RFC3339),
	}
}

// writeAPIErrorResponse는 통일 에러 포맷으로 에러 응답을 기록한다.
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// handleServiceError는 서비스 계층이 반환한 에러를 적절한 HTTP 상태 코드로 변환한다.
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		statusCode := mapAPIErrorToHTTPStatus(apiErr)
		writeAPIErrorResponse(w, statusCode, apiErr)
		return
	}

	// APIError 이외의 에러는 내부 서버 에러로 취급한다
	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     "INTERNAL_ERROR",
		Message:  "내부 오류가 발생했습니다.",
		Category: "system",
		Action:   "잠시 후 다시 시도해 주세요.",
	})
}

// mapAPIErrorToHTTPStatus는 APIError 코드를 HTTP 상태 코드로 매핑한다.
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case model.ErrCodeValidationFailed, model.ErrCodeInvalidFilter:
		return http.StatusBadRequest
	case model.ErrCodeEntryNotFound, model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
