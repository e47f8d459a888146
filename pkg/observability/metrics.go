package observability

import (
	"context"
	"io"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the collectors updated by runner hooks.
type Metrics struct {
	Runs             *prometheus.CounterVec
	Steps            *prometheus.CounterVec
	UndefinedOutputs *prometheus.CounterVec
	StepErrors       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transducer_runs_total",
				Help: "Total number of runs started",
			},
			[]string{"machine"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transducer_steps_total",
				Help: "Total number of successful steps",
			},
			[]string{"machine"},
		),
		UndefinedOutputs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transducer_undefined_outputs_total",
				Help: "Steps whose output was still undefined",
			},
			[]string{"machine"},
		),
		StepErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transducer_step_errors_total",
				Help: "Total number of failed steps",
			},
			[]string{"machine"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.UndefinedOutputs, m.StepErrors)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(_ context.Context, e *domain.RunEvent) {
			m.Runs.WithLabelValues(e.Machine).Inc()
		},
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(e.Machine).Inc()
			if e.Output.IsUndefined() {
				m.UndefinedOutputs.WithLabelValues(e.Machine).Inc()
			}
		},
		OnStepError: func(_ context.Context, e *domain.StepEvent) {
			m.StepErrors.WithLabelValues(e.Machine).Inc()
		},
	}
}

// WriteText gathers g and writes it in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
