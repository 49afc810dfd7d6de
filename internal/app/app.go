// Package app은 애플리케이션의 기동과 의존 관계 배선을 담당한다.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/mskim274/and-plus-time-analyzer/internal/auth"
	"github.com/mskim274/and-plus-time-analyzer/internal/config"
	"github.com/mskim274/and-plus-time-analyzer/internal/database"
	"github.com/mskim274/and-plus-time-analyzer/internal/entry"
	"github.com/mskim274/and-plus-time-analyzer/internal/handler"
	"github.com/mskim274/and-plus-time-analyzer/internal/logger"
	"github.com/mskim274/and-plus-time-analyzer/internal/metrics"
	"github.com/mskim274/and-plus-time-analyzer/internal/middleware"
	"github.com/mskim274/and-plus-time-analyzer/internal/report"
	"github.com/mskim274/and-plus-time-analyzer/internal/repository"
	"github.com/mskim274/and-plus-time-analyzer/internal/user"
	"github.com/mskim274/and-plus-time-analyzer/internal/worker/cleanup"
)

// Init은 애플리케이션 초기화를 수행한다.
// 환경 변수에서 Config를 읽어 들이고 JSON 구조화 로그를 설정한다.
// writer가 지정된 경우 로그 출력처로 해당 writer를 사용한다.
func Init(w io.Writer) (*config.Config, error) {
	// 1. 로그 초기화(설정 읽기 전에 로그를 쓸 수 있게 한다)
	logger.SetupDefault(w)

	// 2. 환경 변수에서 설정을 읽어 들인다
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run은 애플리케이션의 메인 진입점.
// 커맨드라인 인수에서 서브커맨드를 해석해 대응 모드로 기동한다.
// args에는 os.Args[1:]을 넘긴다.
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck는 경량 서브커맨드이므로 풀 초기화를 건너뛴다
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	switch cmd {
	case CommandServe:
		return runServe(cfg)
	case CommandWorker:
		return runWorker(cfg)
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe는 API 서버 모드로 기동한다.
// DB 접속을 열고 전체 의존 관계를 배선한 뒤 HTTP 서버를 기동한다.
// SIGINT 또는 SIGTERM 시그널을 수신하면 그레이스풀 셧다운을 수행한다.
func runServe(cfg *config.Config) error {
	// 1. DB 접속
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	// 2. 리포지토리 초기화
	userRepo := repository.NewPostgresUserRepo(db)
	identRepo := repository.NewPostgresIdentityRepo(db)
	sessionRepo := repository.NewPostgresSessionRepo(db)
	entryRepo := repository.NewPostgresEntryRepo(db)

	// 3. 메트릭 초기화
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 4. 도메인 서비스 초기화
	oauthProvider := auth.NewGoogleOAuthProvider(auth.GoogleOAuthConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
	})
	authService := auth.NewService(
		oauthProvider, userRepo, identRepo, sessionRepo,
		auth.ServiceConfig{SessionMaxAge: cfg.SessionMaxAge},
	)

	entryService := entry.NewService(entryRepo, collector)
	reportService := report.NewService(entryRepo, collector)
	userService := user.NewService(userRepo, sessionRepo, entryRepo)

	// 5. 레이트 리미터 구성
	// config의 레이트는 req/min 단위이므로 req/sec로 변환한다
	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	rateLimiterCfg.GeneralRate = rate.Limit(float64(cfg.RateLimitGeneral) / 60.0)
	rateLimiterCfg.GeneralBurst = cfg.RateLimitGeneral
	rateLimiterCfg.EntryWriteRate = rate.Limit(float64(cfg.RateLimitEntryWrite) / 60.0)
	rateLimiterCfg.EntryWriteBurst = cfg.RateLimitEntryWrite

	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)
	defer rateLimiter.Stop()

	// 6. 라우터 구축
	csrfConfig := middleware.CSRFConfig{
		CookieSecure: cfg.CookieSecure,
		CookieDomain: cfg.CookieDomain,
	}

	deps := &handler.RouterDeps{
		SessionFinder:     sessionRepo,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		CSRFConfig:        csrfConfig,
		Logger:            slog.Default(),
		RecordStatus:      collector.RecordHTTPStatus,

		HealthChecker:  db,
		MetricsHandler: metrics.Handler(registry),

		AuthService: authService,
		AuthConfig: handler.AuthHandlerConfig{
			BaseURL:       cfg.BaseURL,
			CookieDomain:  cfg.CookieDomain,
			CookieSecure:  cfg.CookieSecure,
			SessionMaxAge: cfg.SessionMaxAge,
		},

		EntryService: entryService,
		UserFinder:   userRepo,

		ReportService: reportService,

		UserService: userService,
	}

	router := handler.NewRouter(deps)

	// 7. HTTP 서버 기동
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 그레이스풀 셧다운을 위한 시그널 핸들링
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runWorker는 워커 모드로 기동한다.
// DB 접속을 열고 만료 세션 정리 잡을 주기 실행한다.
// SIGINT 또는 SIGTERM 시그널을 수신하면 셧다운한다.
func runWorker(cfg *config.Config) error {
	// 1. DB 접속
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established (worker)")

	// 2. 정리 잡 초기화
	cleanupJob := cleanup.NewCleanupJob(db, slog.Default())

	// 그레이스풀 셧다운을 위한 시그널 핸들링
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		slog.Info("shutting down worker...")
		cancel()
	}()

	slog.Info("worker starting",
		slog.Duration("cleanup_interval", cfg.SessionCleanupInterval),
	)

	// 기동 직후에 1회 실행한다
	if err := cleanupJob.Run(ctx); err != nil {
		slog.Error("cleanup job failed", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(cfg.SessionCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopped gracefully")
			return nil
		case <-ticker.C:
			if err := cleanupJob.Run(ctx); err != nil {
				slog.Error("cleanup job failed", slog.String("error", err.Error()))
			}
		}
	}
}

// runMigrate는 데이터베이스 마이그레이션을 실행한다.
// 모든 미적용 마이그레이션을 순서대로 적용한다.
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runHealthcheck는 헬스체크를 실행한다.
// distroless 환경에서의 Docker 헬스체크용 서브커맨드.
// /health 엔드포인트에 HTTP 요청을 보내고 결과를 반환한다.
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL은 데이터베이스 URL의 인증 정보를 마스킹한다.
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
