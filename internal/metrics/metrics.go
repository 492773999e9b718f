// Package metrics exposes Prometheus instrumentation for the recommendation service.
//
//	metrics.RecordRecommendation(domain.SourceEngine)
//	metrics.RecordAIFallback(metrics.ReasonMalformed)
//	metrics.ObserveEngineDuration(time.Since(start))
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fallback reasons
const (
	ReasonDisabled    = "disabled"
	ReasonError       = "error"
	ReasonMalformed   = "malformed"
	ReasonBreakerOpen = "breaker_open"
	ReasonTimeout     = "timeout"
)

var (
	// RecommendationsTotal counts analyses by the source that produced them (ai or engine)
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skinsage_recommendations_total",
			Help: "Total number of analyses produced, by source",
		},
		[]string{"source"},
	)

	// AIFallbacksTotal counts times the engine replaced the AI answer
	AIFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skinsage_ai_fallbacks_total",
			Help: "Total number of engine fallbacks, by reason",
		},
		[]string{"reason"},
	)

	// EngineDuration tracks recommendation plus routine computation time
	EngineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skinsage_engine_duration_seconds",
			Help:    "Duration of engine recommendation runs in seconds",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// AIRequestDuration tracks calls to the generative AI service
	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skinsage_ai_request_duration_seconds",
			Help:    "Duration of generative AI requests in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"outcome"},
	)

	// AIBreakerState is 0 closed, 1 half-open, 2 open
	AIBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "skinsage_ai_circuit_breaker_state",
			Help: "Generative AI circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	// HTTPRequestsTotal counts handled HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skinsage_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP handler latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skinsage_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	resultStoreOnce sync.Once
)

// RecordRecommendation increments the per-source analysis counter
func RecordRecommendation(source string) {
	RecommendationsTotal.WithLabelValues(source).Inc()
}

// RecordAIFallback increments the fallback counter for reason
func RecordAIFallback(reason string) {
	AIFallbacksTotal.WithLabelValues(reason).Inc()
}

// ObserveEngineDuration records one engine run
func ObserveEngineDuration(d time.Duration) {
	EngineDuration.Observe(d.Seconds())
}

// ObserveAIRequest records one AI call and its outcome
func ObserveAIRequest(outcome string, d time.Duration) {
	AIRequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// SetAIBreakerState publishes the breaker state as a number
func SetAIBreakerState(state int) {
	AIBreakerState.Set(float64(state))
}

// ObserveHTTPRequest records one HTTP request
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RegisterResultStoreSize exposes the number of stored results.
// Only the first call registers; later calls are ignored.
func RegisterResultStoreSize(size func() int) {
	resultStoreOnce.Do(func() {
		promauto.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "skinsage_result_store_entries",
				Help: "Number of analysis results currently stored",
			},
			func() float64 { return float64(size()) },
		)
	})
}
