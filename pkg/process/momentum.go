package process

import (
	"math/rand/v2"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
)

// DefaultMomentumAlpha is the default reversal strength of the Momentum process.
const DefaultMomentumAlpha = 0.75

// Momentum biases each move against the previous one when Alpha is positive.
// |Alpha| > 1 produces probabilities outside [0, 1], which Next reports.
type Momentum struct {
	Alpha float64 `mapstructure:"alpha"`
}

var _ ports.Process[domain.MomentumState] = Momentum{}

// NewMomentum creates a Momentum process with the default alpha.
func NewMomentum() Momentum {
	return Momentum{Alpha: DefaultMomentumAlpha}
}

// Start returns the initial state, which has no previous move.
func (p Momentum) Start(price int) domain.MomentumState {
	return domain.MomentumState{Price: price, PrevMove: domain.MoveNone}
}

// UpProbability is 0.5 * (1 - alpha * sign(previous move)).
func (p Momentum) UpProbability(s domain.MomentumState) float64 {
	return 0.5 * (1 - p.Alpha*float64(s.PrevMove.Sign()))
}

// Next moves the price one tick and records the direction taken.
func (p Momentum) Next(s domain.MomentumState, src rand.Source) (domain.MomentumState, error) {
	up, err := flip(p.UpProbability(s), src)
	if err != nil {
		return domain.MomentumState{}, err
	}
	return domain.MomentumState{
		Price:    s.Price + step(up),
		PrevMove: domain.MoveFrom(up),
	}, nil
}

// MomentumPrice projects a MomentumState to its price.
func MomentumPrice(s domain.MomentumState) float64 {
	return float64(s.Price)
}
