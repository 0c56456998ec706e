package observability

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Steps    *prometheus.CounterVec
	RunSteps *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of machine runs by table and halt reason",
			},
			[]string{"table", "reason"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_steps_total",
				Help: "Total number of executed transitions",
			},
			[]string{"table"},
		),
		RunSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "turing_run_steps",
				Help:    "Transitions executed per run",
				Buckets: []float64{0, 1, 10, 100, 1000, 5000, 10000},
			},
			[]string{"table"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.RunSteps)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
// Steps are counted from the halt event, once per run.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnHalt: m.observeHalt,
	}
}

func (m *Metrics) observeHalt(e *domain.HaltEvent) {
	m.Runs.WithLabelValues(e.Table, string(e.Reason)).Inc()
	m.Steps.WithLabelValues(e.Table).Add(float64(e.Steps))
	m.RunSteps.WithLabelValues(e.Table).Observe(float64(e.Steps))
}

// Combine chains several hook sets; each callback runs in argument order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var steps []func(*domain.StepEvent)
	var halts []func(*domain.HaltEvent)
	for _, h := range hooks {
		if h.OnStep != nil {
			steps = append(steps, h.OnStep)
		}
		if h.OnHalt != nil {
			halts = append(halts, h.OnHalt)
		}
	}

	var out domain.LifecycleHooks
	if len(steps) > 0 {
		out.OnStep = func(e *domain.StepEvent) {
			for _, f := range steps {
				f(e)
			}
		}
	}
	if len(halts) > 0 {
		out.OnHalt = func(e *domain.HaltEvent) {
			for _, f := range halts {
				f(e)
			}
		}
	}
	return out
}
