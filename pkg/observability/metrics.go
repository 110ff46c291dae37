package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
	OutcomeError  = "error"
)

// Metrics holds the Prometheus collectors for step generation.
type Metrics struct {
	Generations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Steps       *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses a fresh private registry.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "algoviz_generations_total",
				Help: "Total number of step generations by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoviz_generation_duration_seconds",
				Help:    "Duration of step generations",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"algorithm"},
		),
		Steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "algoviz_generation_steps",
				Help:    "Number of steps produced per generation",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"algorithm"},
		),
		gatherer: reg,
	}
	for _, c := range []prometheus.Collector{m.Generations, m.Duration, m.Steps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks records every generation event.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerate: func(_ context.Context, e *domain.GenerateEvent) {
			outcome := OutcomeOK
			if e.Failed {
				outcome = OutcomeFailed
			}
			algo := string(e.Algorithm)
			m.Generations.WithLabelValues(algo, outcome).Inc()
			m.Duration.WithLabelValues(algo).Observe(e.Duration.Seconds())
			m.Steps.WithLabelValues(algo).Observe(float64(e.Steps))
		},
		OnError: func(_ context.Context, e *domain.GenerateEvent) {
			m.Generations.WithLabelValues(string(e.Algorithm), OutcomeError).Inc()
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
