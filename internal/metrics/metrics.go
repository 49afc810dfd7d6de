// Package metrics는 Prometheus 메트릭 수집과 공개를 제공한다.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector는 Prometheus 메트릭을 수집하는 구현.
type Collector struct {
	entriesCreated  prometheus.Counter
	entriesUpdated  prometheus.Counter
	entriesDeleted  prometheus.Counter
	validationFail  prometheus.Counter
	summaryRequests prometheus.Counter
	httpStatus      *prometheus.CounterVec
}

// NewCollector는 새 Collector를 생성하고 지정된 레지스트리에 메트릭을 등록한다.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		entriesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worklog_entries_created_total",
			Help: "생성된 업무시간 기록의 합계",
		}),
		entriesUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worklog_entries_updated_total",
			Help: "갱신된 업무시간 기록의 합계",
		}),
		entriesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worklog_entries_deleted_total",
			Help: "삭제된 업무시간 기록의 합계",
		}),
		validationFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worklog_validation_failures_total",
			Help: "입력 검증 실패의 합계",
		}),
		summaryRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "worklog_summary_requests_total",
			Help: "대시보드 집계 요청의 합계",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worklog_http_status_total",
			Help: "HTTP 상태 코드별 응답 수",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.entriesCreated,
		c.entriesUpdated,
		c.entriesDeleted,
		c.validationFail,
		c.summaryRequests,
		c.httpStatus,
	)

	return c
}

// RecordEntryCreated는 기록 생성을 기록한다.
func (c *Collector) RecordEntryCreated() {
	c.entriesCreated.Inc()
}

// RecordEntryUpdated는 기록 갱신을 기록한다.
func (c *Collector) RecordEntryUpdated() {
	c.entriesUpdated.Inc()
}

// RecordEntryDeleted는 기록 삭제를 기록한다.
func (c *Collector) RecordEntryDeleted() {
	c.entriesDeleted.Inc()
}

// RecordValidationFailure는 입력 검증 실패를 기록한다.
func (c *Collector) RecordValidationFailure() {
	c.validationFail.Inc()
}

// RecordSummaryRequest는 대시보드 집계 요청을 기록한다.
func (c *Collector) RecordSummaryRequest() {
	c.summaryRequests.Inc()
}

// RecordHTTPStatus는 HTTP 상태 코드를 기록한다.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler는 Prometheus 스크레이프용 HTTP 핸들러를 반환한다.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
