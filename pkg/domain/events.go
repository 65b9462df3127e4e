package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStep          EventType = "step"
	EventTraceComplete EventType = "trace_complete"
	EventSimulation    EventType = "simulation"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Process   string    `json:"process"`
}

// StepEvent is emitted for every state produced after the start state.
type StepEvent struct {
	EventBase
	Trace int     `json:"trace"`
	Step  int     `json:"step"`
	Value float64 `json:"value"`
}

// TraceEvent is emitted once a full row has been generated.
type TraceEvent struct {
	EventBase
	Trace int     `json:"trace"`
	Steps int     `json:"steps"`
	Final float64 `json:"final"`
}

// SimulationEvent is emitted by the engine once a simulation finishes or fails.
type SimulationEvent struct {
	EventBase
	ID       string        `json:"id,omitempty"`
	Traces   int           `json:"traces"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for generator observability.
// With parallel generation the hooks may be invoked from several goroutines.
type LifecycleHooks struct {
	OnStep          func(context.Context, *StepEvent)
	OnTraceComplete func(context.Context, *TraceEvent)
	OnSimulation    func(context.Context, *SimulationEvent)
}

// Merge returns hooks that call h first and then other.
// A hook left nil on both sides stays nil.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStep:          chain(h.OnStep, other.OnStep),
		OnTraceComplete: chain(h.OnTraceComplete, other.OnTraceComplete),
		OnSimulation:    chain(h.OnSimulation, other.OnSimulation),
	}
}

func chain[E any](first, second func(context.Context, E)) func(context.Context, E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		second(ctx, e)
	}
}
