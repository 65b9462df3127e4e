package process

import (
	"fmt"
	"math/rand/v2"

	"github.com/aretw0/pricewalk/pkg/sampler"
)

// flip draws one up/down move with probability p of going up.
func flip(p float64, src rand.Source) (bool, error) {
	coin, err := sampler.NewBernoulli(p, src)
	if err != nil {
		return false, fmt.Errorf("up probability: %w", err)
	}
	return coin.Sample(), nil
}

// step maps an up/down outcome to a ±1 price change.
func step(up bool) int {
	if up {
		return 1
	}
	return -1
}
