package domain

import "time"

// ProcessKind names one of the supported price processes.
type ProcessKind string

const (
	ProcessLevel     ProcessKind = "level"     // Mean-reverting toward a level
	ProcessMomentum  ProcessKind = "momentum"  // Biased toward reversing the previous move
	ProcessFrequency ProcessKind = "frequency" // Self-correcting on the up/down ratio
)

// SimulationRequest describes one batch of traces to generate.
type SimulationRequest struct {
	Process    ProcessKind    `json:"process" yaml:"process"`
	StartPrice int            `json:"start_price" yaml:"start_price"`
	TimeSteps  int            `json:"time_steps" yaml:"time_steps"`
	NumTraces  int            `json:"num_traces" yaml:"num_traces"`
	Params     map[string]any `json:"params,omitempty" yaml:"params,omitempty"`

	// Seed makes the run reproducible. A random seed is chosen when nil.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Simulation is a generated table together with what produced it.
type Simulation struct {
	ID        string            `json:"id"`
	Request   SimulationRequest `json:"request"`
	Seed      uint64            `json:"seed"`
	Table     Table             `json:"table"`
	CreatedAt time.Time         `json:"created_at"`
}

// Clone returns a deep copy so stores can isolate their data from callers.
func (s *Simulation) Clone() *Simulation {
	c := *s
	if s.Request.Params != nil {
		c.Request.Params = make(map[string]any, len(s.Request.Params))
		for k, v := range s.Request.Params {
			c.Request.Params[k] = v
		}
	}
	if s.Request.Seed != nil {
		seed := *s.Request.Seed
		c.Request.Seed = &seed
	}
	if s.Table != nil {
		c.Table = make(Table, len(s.Table))
		for i, row := range s.Table {
			c.Table[i] = append([]float64(nil), row...)
		}
	}
	return &c
}

// DiceRoll is the outcome of rolling a set of dice several times and summing
// each throw.
type DiceRoll struct {
	Sides  []int  `json:"sides"`
	Totals []int  `json:"totals"`
	Seed   uint64 `json:"seed"`
}
