package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "italiano_bot"

// Metrics holds the bot's Prometheus collectors.
// All methods are safe on a nil receiver.
type Metrics struct {
	UpdatesProcessed     *prometheus.CounterVec
	CommandsProcessed    *prometheus.CounterVec
	AssistantCalls       *prometheus.CounterVec
	AssistantDuration    *prometheus.HistogramVec
	ErrorsTotal          prometheus.Counter
	UsersTotal           prometheus.Gauge
	UpdateProcessingTime prometheus.Histogram
}

// New registers the collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UpdatesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_processed_total",
			Help:      "Total number of processed updates by kind",
		}, []string{"kind"}),

		CommandsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_processed_total",
			Help:      "Total number of processed commands by name",
		}, []string{"command"}),

		AssistantCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_calls_total",
			Help:      "Assistant calls by profile and outcome",
		}, []string{"profile", "outcome"}),

		AssistantDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assistant_call_duration_seconds",
			Help:      "Duration of assistant calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"profile"}),

		ErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of handler errors",
		}),

		UsersTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "users_total",
			Help:      "Number of users with in-memory state",
		}),

		UpdateProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_processing_time_seconds",
			Help:      "Time spent processing updates",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveUpdate(kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpdatesProcessed.WithLabelValues(kind).Inc()
	m.UpdateProcessingTime.Observe(elapsed.Seconds())
}

func (m *Metrics) IncCommand(command string) {
	if m == nil {
		return
	}
	m.CommandsProcessed.WithLabelValues(command).Inc()
}

func (m *Metrics) ObserveAssistantCall(profile, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.AssistantCalls.WithLabelValues(profile, outcome).Inc()
	m.AssistantDuration.WithLabelValues(profile).Observe(elapsed.Seconds())
}

func (m *Metrics) IncError() {
	if m == nil {
		return
	}
	m.ErrorsTotal.Inc()
}

func (m *Metrics) SetUsers(n int) {
	if m == nil {
		return
	}
	m.UsersTotal.Set(float64(n))
}
