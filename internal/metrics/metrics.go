package metrics

import (
	"context"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the prometheus instruments fed by the engine lifecycle hooks.
type Collector struct {
	Steps       *prometheus.CounterVec
	Traces      *prometheus.CounterVec
	Simulations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	FinalPrice  *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricewalk_steps_total",
				Help: "Total number of process transitions generated",
			},
			[]string{"process"},
		),
		Traces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricewalk_traces_total",
				Help: "Total number of completed traces",
			},
			[]string{"process"},
		),
		Simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricewalk_simulations_total",
				Help: "Total number of simulations by outcome",
			},
			[]string{"process", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricewalk_simulation_duration_seconds",
				Help:    "Duration of simulations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"process"},
		),
		FinalPrice: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricewalk_trace_final_price",
				Help:    "Price at the last step of each trace",
				Buckets: prometheus.LinearBuckets(0, 25, 12),
			},
			[]string{"process"},
		),
	}
	reg.MustRegister(c.Steps, c.Traces, c.Simulations, c.Duration, c.FinalPrice)
	return c
}

// Hooks returns lifecycle hooks that record into the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			c.Steps.WithLabelValues(processLabel(e.Process)).Inc()
		},
		OnTraceComplete: func(_ context.Context, e *domain.TraceEvent) {
			c.Traces.WithLabelValues(processLabel(e.Process)).Inc()
			c.FinalPrice.WithLabelValues(processLabel(e.Process)).Observe(e.Final)
		},
		OnSimulation: func(_ context.Context, e *domain.SimulationEvent) {
			status := "ok"
			if e.Err != nil {
				status = "error"
			}
			c.Simulations.WithLabelValues(processLabel(e.Process), status).Inc()
			c.Duration.WithLabelValues(processLabel(e.Process)).Observe(e.Duration.Seconds())
		},
	}
}

// processLabel keeps the label set bounded: unknown kinds share one series.
func processLabel(process string) string {
	switch domain.ProcessKind(process) {
	case domain.ProcessLevel, domain.ProcessMomentum, domain.ProcessFrequency:
		return process
	default:
		return "unknown"
	}
}
