package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mskim274/and-plus-time-analyzer/internal/middleware"
)

// HealthChecker는 헬스체크에 필요한 DB 접속 확인 인터페이스.
// *sql.DB가 그대로 만족한다.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// RouterDeps는 NewRouter에 필요한 의존 관계를 모은 구조체.
type RouterDeps struct {
	// 미들웨어 의존
	SessionFinder     middleware.SessionFinder
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	CSRFConfig        middleware.CSRFConfig
	Logger            *slog.Logger
	RecordStatus      middleware.StatusRecorder

	// 운영 엔드포인트
	HealthChecker  HealthChecker
	MetricsHandler http.Handler

	// 인증
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig

	// 업무시간 기록
	EntryService EntryServiceInterface
	UserFinder   UserFinder

	// 대시보드 집계
	ReportService ReportServiceInterface

	// 사용자
	UserService UserServiceInterface
}

// NewRouter는 전체 API 엔드포인트의 라우팅과 미들웨어 체인을 구성한 chi.Router를 반환한다.
//
// 미들웨어 스택의 실행 순서:
//
//	Recovery → Logging → SecurityHeaders → CORS → (인증 그룹) Session → CSRF → RateLimit(General)
//
// 인증 라우트(/auth/*)와 운영 엔드포인트(/health, /metrics)는 인증 그룹 밖에 배치한다.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger, deps.RecordStatus))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)
	entryHandler := NewEntryHandler(deps.EntryService, deps.UserFinder)
	reportHandler := NewReportHandler(deps.ReportService)
	taxonomyHandler := NewTaxonomyHandler()
	userHandler := NewUserHandler(deps.UserService)

	// --- 인증 불요 라우트 ---

	// 헬스체크
	r.Get("/health", newHealthHandler(deps.HealthChecker))

	// Prometheus 메트릭
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// CSRF 토큰 발급
	r.Method(http.MethodGet, "/api/csrf-token", middleware.NewCSRFTokenHandler(deps.CSRFConfig))

	// 인증 라우트(OAuth 플로)
	r.Route("/auth", func(r chi.Router) {
		r.Get("/google/login", authHandler.Login)
		r.Get("/google/callback", authHandler.Callback)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
	})

	// --- 인증이 필요한 라우트 ---
	// 미들웨어 스택: Session → CSRF → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.SessionFinder))
		r.Use(middleware.NewCSRFMiddleware(deps.CSRFConfig))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 업무시간 기록 관리
		r.Route("/api/entries", func(r chi.Router) {
			r.Get("/", entryHandler.List)

			// 쓰기 계열에는 기록 쓰기 전용 레이트 제한을 추가한다
			r.With(deps.RateLimiter.EntryWriteMiddleware()).Post("/", entryHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.With(deps.RateLimiter.EntryWriteMiddleware()).Put("/", entryHandler.Update)
				r.With(deps.RateLimiter.EntryWriteMiddleware()).Delete("/", entryHandler.Delete)
			})
		})

		// 대시보드 집계
		r.Get("/api/reports/summary", reportHandler.Summary)

		// 입력 폼 선택지
		r.Get("/api/taxonomy", taxonomyHandler.Get)

		// 사용자 관리
		r.Route("/api/users", func(r chi.Router) {
			r.Delete("/me", userHandler.Withdraw)
		})
	})

	return r
}

// newHealthHandler는 DB 접속까지 확인하는 헬스체크 핸들러를 반환한다.
func newHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.PingContext(r.Context()); err != nil {
				slog.Error("health check: database ping failed", slog.String("error", err.Error()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
