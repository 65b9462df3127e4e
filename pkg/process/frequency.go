package process

import (
	"math"
	"math/rand/v2"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
)

// DefaultFrequencyAlpha is the default correction strength of the Frequency process.
const DefaultFrequencyAlpha = 1.0

// Frequency makes an up move less likely the more up moves dominate so far.
type Frequency struct {
	Alpha float64 `mapstructure:"alpha"`
}

var _ ports.Process[domain.FrequencyState] = Frequency{}

// NewFrequency creates a Frequency process with the default alpha.
func NewFrequency() Frequency {
	return Frequency{Alpha: DefaultFrequencyAlpha}
}

// Start returns the zero-count state. The price lives in the projection.
func (p Frequency) Start(int) domain.FrequencyState {
	return domain.FrequencyState{}
}

// UpProbability is 1 / (1 + (up/down)^alpha), or 0.5 before any move.
//
// With no down moves yet the ratio is infinite and the probability takes its
// limit: 0 for alpha > 0, 0.5 for alpha == 0, 1 for alpha < 0.
func (p Frequency) UpProbability(s domain.FrequencyState) float64 {
	if s.NumUp == 0 && s.NumDown == 0 {
		return 0.5
	}
	if s.NumDown == 0 {
		switch {
		case p.Alpha > 0:
			return 0
		case p.Alpha < 0:
			return 1
		default:
			return 0.5
		}
	}
	ratio := float64(s.NumUp) / float64(s.NumDown)
	return 1 / (1 + math.Pow(ratio, p.Alpha))
}

// Next increments the counter of the direction drawn.
func (p Frequency) Next(s domain.FrequencyState, src rand.Source) (domain.FrequencyState, error) {
	up, err := flip(p.UpProbability(s), src)
	if err != nil {
		return domain.FrequencyState{}, err
	}
	if up {
		return domain.FrequencyState{NumUp: s.NumUp + 1, NumDown: s.NumDown}, nil
	}
	return domain.FrequencyState{NumUp: s.NumUp, NumDown: s.NumDown + 1}, nil
}

// FrequencyPrice returns a projection to start + NumUp - NumDown.
func FrequencyPrice(start int) func(domain.FrequencyState) float64 {
	return func(s domain.FrequencyState) float64 {
		return float64(start + s.NumUp - s.NumDown)
	}
}
