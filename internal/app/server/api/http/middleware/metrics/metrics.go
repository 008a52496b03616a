package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nce_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "operation", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nce_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "operation"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nce_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	recordMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nce_record_mutations_total",
			Help: "Successful record mutations by kind",
		},
		[]string{"kind"},
	)
)

// Middleware собирает метрики по операциям huma
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		operation := "unknown"
		if op := ctx.Operation(); op != nil && op.OperationID != "" {
			operation = op.OperationID
		}

		next(ctx)

		status := strconv.Itoa(ctx.Status())
		httpRequestsTotal.WithLabelValues(ctx.Method(), operation, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Method(), operation).Observe(time.Since(start).Seconds())
	}
}

// RecordMutation учитывает успешное создание, изменение или удаление
func RecordMutation(kind string) {
	recordMutationsTotal.WithLabelValues(kind).Inc()
}
