// worklog는 업무시간 기록·집계 서비스의 실행 바이너리.
//
// 서브커맨드:
//
//	serve       API 서버 모드(기본값)
//	worker      만료 세션 정리 워커 모드
//	migrate     데이터베이스 마이그레이션 실행
//	healthcheck /health 엔드포인트 확인
package main

import (
	"fmt"
	"os"

	"github.com/mskim274/and-plus-time-analyzer/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
