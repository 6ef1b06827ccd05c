package coursemetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CourseMetrics records course-provider telemetry.
type CourseMetrics interface {
	RecordLookup(source string)
	RecordRemoteSearch(cacheHit bool)
	RecordRemoteFailure()
	RecordHandlerAttempt(handlerName string)
	RecordHandlerSuccess(handlerName string)
	RecordHandlerFailure(handlerName string)
	RecordHandlerDuration(handlerName string, seconds float64)
}

type prometheusMetrics struct {
	lookups         *prometheus.CounterVec
	remoteSearches  *prometheus.CounterVec
	remoteFailures  prometheus.Counter
	handlerAttempts *prometheus.CounterVec
	handlerOutcomes *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec
}

// NewCourseMetrics registers the course module collectors on the given registry.
func NewCourseMetrics(registry prometheus.Registerer) CourseMetrics {
	m := &prometheusMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "course",
			Name:      "lookups_total",
			Help:      "Course lookups by source (builtin, custom, remote).",
		}, []string{"source"}),
		remoteSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "course",
			Name:      "remote_searches_total",
			Help:      "Remote course searches by cache outcome.",
		}, []string{"cache"}),
		remoteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "course",
			Name:      "remote_failures_total",
			Help:      "Remote course searches that failed.",
		}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "course",
			Name:      "handler_attempts_total",
			Help:      "Course handler invocations.",
		}, []string{"handler"}),
		handlerOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skins",
			Subsystem: "course",
			Name:      "handler_outcomes_total",
			Help:      "Course handler outcomes by result.",
		}, []string{"handler", "outcome"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skins",
			Subsystem: "course",
			Name:      "handler_duration_seconds",
			Help:      "Course handler execution time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler"}),
	}

	registry.MustRegister(m.lookups, m.remoteSearches, m.remoteFailures, m.handlerAttempts, m.handlerOutcomes, m.handlerDuration)
	return m
}

func (m *prometheusMetrics) RecordLookup(source string) {
	m.lookups.WithLabelValues(source).Inc()
}

func (m *prometheusMetrics) RecordRemoteSearch(cacheHit bool) {
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.remoteSearches.WithLabelValues(outcome).Inc()
}

func (m *prometheusMetrics) RecordRemoteFailure() {
	m.remoteFailures.Inc()
}

func (m *prometheusMetrics) RecordHandlerAttempt(handlerName string) {
	m.handlerAttempts.WithLabelValues(handlerName).Inc()
}

func (m *prometheusMetrics) RecordHandlerSuccess(handlerName string) {
	m.handlerOutcomes.WithLabelValues(handlerName, "success").Inc()
}

func (m *prometheusMetrics) RecordHandlerFailure(handlerName string) {
	m.handlerOutcomes.WithLabelValues(handlerName, "failure").Inc()
}

func (m *prometheusMetrics) RecordHandlerDuration(handlerName string, seconds float64) {
	m.handlerDuration.WithLabelValues(handlerName).Observe(seconds)
}

// NoOpMetrics is used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordLookup(string) {}

func (NoOpMetrics) RecordRemoteSearch(bool) {}

func (NoOpMetrics) RecordRemoteFailure() {}

func (NoOpMetrics) RecordHandlerAttempt(string) {}

func (NoOpMetrics) RecordHandlerSuccess(string) {}

func (NoOpMetrics) RecordHandlerFailure(string) {}

func (NoOpMetrics) RecordHandlerDuration(string, float64) {}
