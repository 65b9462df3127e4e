package process

import (
	"math"
	"math/rand/v2"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
)

// DefaultLevelAlpha is the default pull strength of the Level process.
const DefaultLevelAlpha = 0.25

// Level is a mean-reverting walk: prices above Level are more likely to move down.
type Level struct {
	Level int     `mapstructure:"level"`
	Alpha float64 `mapstructure:"alpha"`
}

var _ ports.Process[domain.LevelState] = Level{}

// NewLevel creates a Level process with the default alpha.
func NewLevel(level int) Level {
	return Level{Level: level, Alpha: DefaultLevelAlpha}
}

// Start returns the initial state.
func (p Level) Start(price int) domain.LevelState {
	return domain.LevelState{Price: price}
}

// UpProbability is the logistic 1 / (1 + exp(-alpha * (level - price))).
func (p Level) UpProbability(s domain.LevelState) float64 {
	return 1 / (1 + math.Exp(-p.Alpha*float64(p.Level-s.Price)))
}

// Next moves the price one tick up or down.
func (p Level) Next(s domain.LevelState, src rand.Source) (domain.LevelState, error) {
	up, err := flip(p.UpProbability(s), src)
	if err != nil {
		return domain.LevelState{}, err
	}
	return domain.LevelState{Price: s.Price + step(up)}, nil
}

// LevelPrice projects a LevelState to its price.
func LevelPrice(s domain.LevelState) float64 {
	return float64(s.Price)
}
