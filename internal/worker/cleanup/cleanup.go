// Package cleanup은 만료 세션의 자동 삭제 잡을 제공한다.
// 유효 기간이 지난 sessions 레코드를 일 단위 배치로 삭제한다.
package cleanup

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Executor는 SQL의 ExecContext를 추상화하는 인터페이스.
// *sql.DB와 *sql.Tx를 모두 받을 수 있다.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// CleanupJob은 만료 세션의 자동 삭제 잡.
// 일 단위 실행 배치 잡으로 설계되어 있으며 멱등한 삭제 처리를 보장한다.
type CleanupJob struct {
	db     Executor
	logger *slog.Logger
}

// NewCleanupJob은 새 CleanupJob을 생성한다.
func NewCleanupJob(db Executor, logger *slog.Logger) *CleanupJob {
	return &CleanupJob{
		db:     db,
		logger: logger,
	}
}

// Run은 만료 세션을 삭제한다.
// expires_at이 현재 시각보다 과거인 세션을 DELETE한다.
// 멱등: 삭제 대상이 없어도 에러가 되지 않는다.
func (j *CleanupJob) Run(ctx context.Context) error {
	start := time.Now()

	query := `DELETE FROM sessions WHERE expires_at < now()`
	result, err := j.db.ExecContext(ctx, query)
	if err != nil {
		j.logger.Error("세션 정리 잡 실행에 실패했습니다",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("세션 정리 실행에 실패: %w", err)
	}

	deletedCount, err := result.RowsAffected()
	if err != nil {
		j.logger.Error("삭제 건수 조회에 실패했습니다",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("삭제 건수 조회에 실패: %w", err)
	}

	duration := time.Since(start)
	j.logger.Info("세션 정리 잡이 완료되었습니다",
		slog.Int64("deleted_count", deletedCount),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return nil
}
