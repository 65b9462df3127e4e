package sampler

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/aretw0/pricewalk/pkg/domain"
)

// Die is a fair n-sided die. Build it with NewDie; the zero Die has no faces.
type Die struct {
	sides int
	rng   *rand.Rand
}

var _ Sampler[int] = Die{}

// NewDie creates a die with the given number of sides.
func NewDie(sides int, src rand.Source) (Die, error) {
	if sides < 1 {
		return Die{}, fmt.Errorf("die sides %d: %w", sides, domain.ErrInvalidArgument)
	}
	return Die{sides: sides, rng: newRand(src)}, nil
}

// Sides returns the number of faces.
func (d Die) Sides() int {
	return d.sides
}

// Sample returns a uniform integer in [1, Sides()], or 0 for a die with no faces.
func (d Die) Sample() int {
	if d.sides < 1 {
		return 0
	}
	if d.rng == nil {
		return rand.IntN(d.sides) + 1
	}
	return d.rng.IntN(d.sides) + 1
}

// Equal reports whether other is a die with the same number of sides.
// The random source does not take part in equality.
func (d Die) Equal(other any) bool {
	switch o := other.(type) {
	case Die:
		return d.sides == o.sides
	case *Die:
		return o != nil && d.sides == o.sides
	default:
		return false
	}
}

func (d Die) String() string {
	return strconv.Itoa(d.sides)
}

// Dice is a set of dice thrown together; one sample is the sum of the faces.
type Dice []Sampler[int]

// NewDice builds a set of dice sharing one source.
func NewDice(sides []int, src rand.Source) (Dice, error) {
	if len(sides) == 0 {
		return nil, fmt.Errorf("no dice: %w", domain.ErrInvalidArgument)
	}
	dice := make(Dice, 0, len(sides))
	for _, n := range sides {
		d, err := NewDie(n, src)
		if err != nil {
			return nil, err
		}
		dice = append(dice, d)
	}
	return dice, nil
}

// Sample throws every die once and sums the faces.
func (d Dice) Sample() int {
	return Roll(d...)
}
