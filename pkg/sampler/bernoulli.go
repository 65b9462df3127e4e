package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aretw0/pricewalk/pkg/domain"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bernoulli is a single biased coin flip.
type Bernoulli struct {
	dist distuv.Bernoulli
}

var _ Sampler[bool] = Bernoulli{}

// NewBernoulli creates a coin that lands true with probability p.
func NewBernoulli(p float64, src rand.Source) (Bernoulli, error) {
	if err := CheckProbability(p); err != nil {
		return Bernoulli{}, err
	}
	return Bernoulli{dist: distuv.Bernoulli{P: p, Src: src}}, nil
}

// P returns the success probability.
func (b Bernoulli) P() float64 {
	return b.dist.P
}

// Sample flips the coin.
func (b Bernoulli) Sample() bool {
	return b.dist.Rand() == 1
}

// CheckProbability rejects NaN and values outside [0, 1].
func CheckProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("probability %v outside [0, 1]: %w", p, domain.ErrInvalidProbability)
	}
	return nil
}
