package trace_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/process"
	"github.com/aretw0/pricewalk/pkg/sampler"
	"github.com/aretw0/pricewalk/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a deterministic process: every step adds one.
type counter struct{ calls *int }

func (c counter) UpProbability(int) float64 { return 1 }

func (c counter) Next(s int, _ rand.Source) (int, error) {
	*c.calls++
	return s + 1, nil
}

// failing errors once the state reaches limit.
type failing struct{ limit int }

func (f failing) UpProbability(int) float64 { return 1 }

func (f failing) Next(s int, _ rand.Source) (int, error) {
	if s >= f.limit {
		return 0, domain.ErrInvalidProbability
	}
	return s + 1, nil
}

func TestSimulate_FirstElementIsStart(t *testing.T) {
	p := process.NewLevel(100)
	stream := trace.Simulate(p, p.Start(42), sampler.NewSource(1))

	first, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.LevelState{Price: 42}, first)
}

func TestSimulate_IsLazy(t *testing.T) {
	calls := 0
	stream := trace.Simulate[int](counter{calls: &calls}, 0, nil)
	assert.Equal(t, 0, calls, "no transition before the first pull")

	_, _ = stream.Next()
	assert.Equal(t, 0, calls, "the start state needs no transition")

	_, _ = stream.Next()
	_, _ = stream.Next()
	assert.Equal(t, 2, calls)
}

func TestSimulate_NonRestartable(t *testing.T) {
	calls := 0
	stream := trace.Simulate[int](counter{calls: &calls}, 0, nil)

	first, err := trace.Take(stream, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, first)

	second, err := trace.Take(stream, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, second, "a second pass continues where the first stopped")
}

func TestSimulate_ErrorIsSticky(t *testing.T) {
	stream := trace.Simulate[int](failing{limit: 2}, 0, nil)

	states, err := trace.Take(stream, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, states)

	_, err = stream.Next()
	assert.ErrorIs(t, err, domain.ErrInvalidProbability)
	_, err = stream.Next()
	assert.ErrorIs(t, err, domain.ErrInvalidProbability)
	assert.True(t, errors.Is(stream.Err(), domain.ErrInvalidProbability))
}

func TestStream_All(t *testing.T) {
	calls := 0
	stream := trace.Simulate[int](counter{calls: &calls}, 10, nil)

	var got []int
	for state, err := range stream.All() {
		require.NoError(t, err)
		got = append(got, state)
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, []int{10, 11, 12, 13}, got)

	next, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 14, next)
}

func TestStream_AllStopsOnError(t *testing.T) {
	stream := trace.Simulate[int](failing{limit: 1}, 0, nil)

	var errs int
	count := 0
	for _, err := range stream.All() {
		count++
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, errs)
}

func TestTake_Negative(t *testing.T) {
	stream := trace.Simulate[int](failing{limit: 10}, 0, nil)
	_, err := trace.Take(stream, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
