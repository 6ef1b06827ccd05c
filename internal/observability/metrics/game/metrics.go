package gamemetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GameMetrics records service and handler telemetry for the game module.
type GameMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string, gameID string)
	RecordOperationSuccess(ctx context.Context, operation string, gameID string)
	RecordOperationFailure(ctx context.Context, operation string, gameID string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)

	RecordHandlerAttempt(handler string)
	RecordHandlerSuccess(handler string)
	RecordHandlerFailure(handler string)
	RecordHandlerDuration(handler string, seconds float64)
}

type prometheusMetrics struct {
	operationAttempts  *prometheus.CounterVec
	operationSuccesses *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec

	handlerAttempts  *prometheus.CounterVec
	handlerSuccesses *prometheus.CounterVec
	handlerFailures  *prometheus.CounterVec
	handlerDuration  *prometheus.HistogramVec
}

// NewGameMetrics registers the game module collectors on the given registry.
func NewGameMetrics(registry prometheus.Registerer) GameMetrics {
	m := &prometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "operation_attempts_total",
			Help:      "Number of game service operations attempted.",
		}, []string{"operation"}),
		operationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "operation_successes_total",
			Help:      "Number of game service operations that succeeded.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "operation_failures_total",
			Help:      "Number of game service operations that failed.",
		}, []string{"operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "operation_duration_seconds",
			Help:      "Duration of game service operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "handler_attempts_total",
			Help:      "Number of event handler invocations.",
		}, []string{"handler"}),
		handlerSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "handler_successes_total",
			Help:      "Number of event handler invocations that succeeded.",
		}, []string{"handler"}),
		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "handler_failures_total",
			Help:      "Number of event handler invocations that failed.",
		}, []string{"handler"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skins",
			Subsystem: "game",
			Name:      "handler_duration_seconds",
			Help:      "Duration of event handler invocations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
	}

	registry.MustRegister(
		m.operationAttempts,
		m.operationSuccesses,
		m.operationFailures,
		m.operationDuration,
		m.handlerAttempts,
		m.handlerSuccesses,
		m.handlerFailures,
		m.handlerDuration,
	)

	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation string, _ string) {
	m.operationAttempts.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation string, _ string) {
	m.operationSuccesses.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation string, _ string) {
	m.operationFailures.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *prometheusMetrics) RecordHandlerAttempt(handler string) {
	m.handlerAttempts.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerSuccess(handler string) {
	m.handlerSuccesses.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerFailure(handler string) {
	m.handlerFailures.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerDuration(handler string, seconds float64) {
	m.handlerDuration.WithLabelValues(handler).Observe(seconds)
}

// NoOpMetrics is used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationSuccess(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationFailure(context.Context, string, string) {}

func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

func (NoOpMetrics) RecordHandlerAttempt(string) {}

func (NoOpMetrics) RecordHandlerSuccess(string) {}

func (NoOpMetrics) RecordHandlerFailure(string) {}

func (NoOpMetrics) RecordHandlerDuration(string, float64) {}
