// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clazzy_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clazzy_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clazzy_recommendations_generated_total",
			Help: "Recommendation lists generated, by occasion",
		},
		[]string{"occasion"},
	)

	SelectionUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clazzy_selection_updates_total",
			Help: "Selection changes, by action",
		},
		[]string{"action"},
	)

	ImageUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clazzy_image_uploads_total",
			Help: "Image uploads, by slot and result",
		},
		[]string{"slot", "result"}, // "stored", "stale", "unsupported"
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clazzy_store_operation_duration_seconds",
			Help:    "Selection store latency in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"driver", "operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clazzy_store_errors_total",
			Help: "Selection store errors",
		},
		[]string{"driver", "operation"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clazzy_memory_sessions",
			Help: "Sessions held by the in-memory store",
		},
	)

	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clazzy_memory_sessions_expired_total",
			Help: "Sessions removed by the in-memory sweeper",
		},
	)

	AdviceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clazzy_advice_requests_total",
			Help: "Style advisor calls, by result",
		},
		[]string{"result"}, // "ok", "busy", "error"
	)
)

func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordRecommendations(occasion string) {
	if occasion == "" {
		occasion = "none"
	}
	RecommendationsGenerated.WithLabelValues(occasion).Inc()
}

func RecordStoreOperation(driver, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(driver, operation).Inc()
	}
}
