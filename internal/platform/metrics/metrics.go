package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "archivum"
	subsystem = "workflow"
)

// Metrics holds the prometheus instruments for the publication workflow.
type Metrics struct {
	TransitionsTotal         *prometheus.CounterVec
	SuggestionDecisionsTotal *prometheus.CounterVec
	NotificationsTotal       *prometheus.CounterVec
	RequestDurationSeconds   *prometheus.HistogramVec
}

// New creates and registers all workflow metrics.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		TransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "transitions_total",
			Help:      "Content workflow transitions by action and outcome.",
		}, []string{"action", "outcome"}),
		SuggestionDecisionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "suggestion_decisions_total",
			Help:      "Edit suggestion decisions by decision and outcome.",
		}, []string{"decision", "outcome"}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "notifications_total",
			Help:      "Notifications handed to the channel by kind.",
		}, []string{"kind"}),
		RequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP handler latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (m *Metrics) ObserveTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) ObserveDecision(decision, outcome string) {
	if m == nil {
		return
	}
	m.SuggestionDecisionsTotal.WithLabelValues(decision, outcome).Inc()
}

func (m *Metrics) ObserveDuration(route string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestDurationSeconds.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveNotification(kind string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(kind).Inc()
}
