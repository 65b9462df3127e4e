package sampler

import (
	"fmt"
	"math/rand/v2"

	"github.com/aretw0/pricewalk/pkg/domain"
)

// Sampler produces one random value of type V per call.
type Sampler[V any] interface {
	Sample() V
}

// SampleN draws n independent values from s, in draw order.
func SampleN[V any](s Sampler[V], n int) ([]V, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample count %d: %w", n, domain.ErrInvalidArgument)
	}
	out := make([]V, n)
	for i := range out {
		out[i] = s.Sample()
	}
	return out, nil
}

// Roll draws once from every die and returns the sum.
func Roll(dice ...Sampler[int]) int {
	total := 0
	for _, d := range dice {
		total += d.Sample()
	}
	return total
}

// NewSource returns a seeded PCG source.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, 0)
}

// NewRowSource derives an independent stream for one trace row, so rows can be
// generated in any order and still reproduce.
func NewRowSource(seed uint64, row int) rand.Source {
	return rand.NewPCG(seed, uint64(row)+1)
}

func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		return nil
	}
	return rand.New(src)
}
