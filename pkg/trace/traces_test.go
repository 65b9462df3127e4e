package trace_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
	"github.com/aretw0/pricewalk/pkg/process"
	"github.com/aretw0/pricewalk/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelTraces(t *testing.T, timeSteps, numTraces int, opts ...trace.Option) (domain.Table, error) {
	t.Helper()
	p := process.NewLevel(100)
	return trace.PriceTraces(
		context.Background(),
		func() ports.Process[domain.LevelState] { return p },
		func() domain.LevelState { return p.Start(90) },
		timeSteps, numTraces,
		process.LevelPrice,
		opts...,
	)
}

func TestPriceTraces_Shape(t *testing.T) {
	table, err := levelTraces(t, 50, 10, trace.WithSeed(1))
	require.NoError(t, err)

	rows, cols := table.Shape()
	assert.Equal(t, 10, rows)
	assert.Equal(t, 51, cols)
	for i, row := range table {
		assert.Len(t, row, 51, "row %d", i)
		assert.Equal(t, 90.0, row[0], "row %d must start at the start price", i)
		for step := 1; step < len(row); step++ {
			assert.Equal(t, 1.0, abs(row[step]-row[step-1]), "row %d step %d", i, step)
		}
	}
}

func TestPriceTraces_ZeroSteps(t *testing.T) {
	table, err := levelTraces(t, 0, 3, trace.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, domain.Table{{90}, {90}, {90}}, table)
}

func TestPriceTraces_InvalidArguments(t *testing.T) {
	_, err := levelTraces(t, -1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = levelTraces(t, 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPriceTraces_TooLarge(t *testing.T) {
	tests := []struct {
		name      string
		timeSteps int
		numTraces int
	}{
		{"max int steps", math.MaxInt, 1},
		{"max int traces", 1, math.MaxInt},
		{"product overflows", math.MaxInt / 2, 4},
		{"just above the bound", trace.MaxCells / 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := levelTraces(t, tt.timeSteps, tt.numTraces, trace.WithSeed(1))
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Nil(t, table)
		})
	}
}

func TestCheckShape(t *testing.T) {
	assert.NoError(t, trace.CheckShape(9, 10, 100), "10 x 10 fits exactly")
	assert.ErrorIs(t, trace.CheckShape(10, 10, 100), domain.ErrInvalidArgument)
	assert.ErrorIs(t, trace.CheckShape(0, 101, 100), domain.ErrInvalidArgument)
	assert.NoError(t, trace.CheckShape(0, 100, 100))
	assert.ErrorIs(t, trace.CheckShape(math.MaxInt, math.MaxInt, 100), domain.ErrInvalidArgument)
	assert.ErrorIs(t, trace.CheckShape(-1, 1, 100), domain.ErrInvalidArgument)
	assert.ErrorIs(t, trace.CheckShape(1, 0, 100), domain.ErrInvalidArgument)
}

func TestPriceTraces_SameSeedIsIdentical(t *testing.T) {
	a, err := levelTraces(t, 100, 20, trace.WithSeed(7))
	require.NoError(t, err)
	b, err := levelTraces(t, 100, 20, trace.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := levelTraces(t, 100, 20, trace.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestPriceTraces_ParallelMatchesSequential(t *testing.T) {
	seq, err := levelTraces(t, 200, 32, trace.WithSeed(99))
	require.NoError(t, err)
	par, err := levelTraces(t, 200, 32, trace.WithSeed(99), trace.WithParallelism(8))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestPriceTraces_RowsAreIndependent(t *testing.T) {
	table, err := levelTraces(t, 100, 5, trace.WithSeed(3))
	require.NoError(t, err)
	assert.NotEqual(t, table[0], table[1])
}

func TestPriceTraces_FreshStatePerRow(t *testing.T) {
	p := process.NewFrequency()
	var starts atomic.Int32
	table, err := trace.PriceTraces(
		context.Background(),
		func() ports.Process[domain.FrequencyState] { return p },
		func() domain.FrequencyState { starts.Add(1); return p.Start(100) },
		30, 6,
		process.FrequencyPrice(100),
		trace.WithSeed(5),
	)
	require.NoError(t, err)
	assert.EqualValues(t, 6, starts.Load())
	for _, row := range table {
		assert.Equal(t, 100.0, row[0])
	}
}

func TestPriceTraces_FailureReturnsNoTable(t *testing.T) {
	p := process.Momentum{Alpha: 3}
	table, err := trace.PriceTraces(
		context.Background(),
		func() ports.Process[domain.MomentumState] { return p },
		func() domain.MomentumState { return p.Start(0) },
		10, 4,
		process.MomentumPrice,
		trace.WithSeed(1),
	)
	assert.ErrorIs(t, err, domain.ErrInvalidProbability)
	assert.Nil(t, table)
}

func TestPriceTraces_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := process.NewLevel(0)
	_, err := trace.PriceTraces(
		ctx,
		func() ports.Process[domain.LevelState] { return p },
		func() domain.LevelState { return p.Start(0) },
		10, 4,
		process.LevelPrice,
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPriceTraces_Hooks(t *testing.T) {
	var steps, traces atomic.Int32
	hooks := domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			assert.Equal(t, "level", e.Process)
			assert.Positive(t, e.Step)
			steps.Add(1)
		},
		OnTraceComplete: func(_ context.Context, e *domain.TraceEvent) {
			assert.Equal(t, 5, e.Steps)
			traces.Add(1)
		},
	}

	_, err := levelTraces(t, 5, 4, trace.WithSeed(1), trace.WithLabel("level"), trace.WithLifecycleHooks(hooks), trace.WithParallelism(2))
	require.NoError(t, err)
	assert.EqualValues(t, 20, steps.Load())
	assert.EqualValues(t, 4, traces.Load())
}

func TestPriceTraces_AllProcesses(t *testing.T) {
	ctx := context.Background()

	m := process.NewMomentum()
	mt, err := trace.PriceTraces(ctx,
		func() ports.Process[domain.MomentumState] { return m },
		func() domain.MomentumState { return m.Start(10) },
		20, 3, process.MomentumPrice, trace.WithSeed(1))
	require.NoError(t, err)
	rows, cols := mt.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 21, cols)

	f := process.NewFrequency()
	ft, err := trace.PriceTraces(ctx,
		func() ports.Process[domain.FrequencyState] { return f },
		func() domain.FrequencyState { return f.Start(10) },
		20, 3, process.FrequencyPrice(10), trace.WithSeed(1))
	require.NoError(t, err)
	for _, row := range ft {
		assert.Equal(t, 10.0, row[0])
		// The first move always counts as unbalanced, so the second must correct it.
		assert.Equal(t, 10.0, row[2])
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
