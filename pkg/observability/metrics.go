package observability

import (
	"github.com/aretw0/actionflow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Step status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics records executor activity as Prometheus metrics.
type Metrics struct {
	Steps        *prometheus.CounterVec
	StepDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "actionflow_steps_total",
				Help: "Total number of executed pipeline steps",
			},
			[]string{"class", "status"},
		),
		StepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "actionflow_step_duration_seconds",
				Help:    "Duration of pipeline steps",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"class"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Steps, m.StepDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepSuccess: func(e *domain.StepEvent) {
			m.observe(e, StatusSuccess)
		},
		OnStepFailure: func(e *domain.StepEvent) {
			m.observe(e, StatusFailure)
		},
	}
}

func (m *Metrics) observe(e *domain.StepEvent, status string) {
	m.Steps.WithLabelValues(e.Action.Class, status).Inc()
	m.StepDuration.WithLabelValues(e.Action.Class).Observe(e.Duration.Seconds())
}
