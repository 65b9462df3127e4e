package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/pricewalk/internal/config"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func uintPtr(v uint64) *uint64 { return &v }

func TestSimulateOptions_Apply(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Params = map[string]any{"alpha": 0.1, "level": 90}

	SimulateOptions{
		Process:   "momentum",
		TimeSteps: intPtr(0),
		Seed:      uintPtr(3),
		Params:    map[string]string{"alpha": "0.5"},
	}.apply(&cfg)

	assert.Equal(t, "momentum", cfg.Simulation.Process)
	assert.Equal(t, 0, cfg.Simulation.TimeSteps, "explicit zero overrides the default")
	assert.Equal(t, 1000, cfg.Simulation.NumTraces)
	assert.Equal(t, uint64(3), *cfg.Simulation.Seed)
	assert.Equal(t, map[string]any{"alpha": "0.5", "level": 90}, cfg.Simulation.Params)
}

func TestRunSimulate_JSON(t *testing.T) {
	var out bytes.Buffer
	err := RunSimulate(context.Background(), &out, SimulateOptions{
		GlobalOptions: GlobalOptions{LogLevel: "error"},
		Process:       "level",
		StartPrice:    intPtr(100),
		TimeSteps:     intPtr(12),
		NumTraces:     intPtr(3),
		Seed:          uintPtr(99),
		Params:        map[string]string{"alpha": "0.3", "level": "105"},
		JSON:          true,
	})
	require.NoError(t, err)

	var sim domain.Simulation
	require.NoError(t, json.Unmarshal(out.Bytes(), &sim))
	rows, cols := sim.Table.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 13, cols)
	assert.Equal(t, uint64(99), sim.Seed)
}

func TestRunSimulate_MarkdownFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricewalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: error
simulation:
  process: frequency
  start_price: 20
  time_steps: 30
  num_traces: 8
  seed: 1
  params:
    alpha: 2
`), 0644))

	var out bytes.Buffer
	err := RunSimulate(context.Background(), &out, SimulateOptions{GlobalOptions: GlobalOptions{ConfigPath: path}})
	require.NoError(t, err)

	md := out.String()
	assert.Contains(t, md, "# Simulation `")
	assert.Contains(t, md, "**Seed**: 1")
	assert.Contains(t, md, "8 x 31 steps")
}

func TestRunSimulate_Errors(t *testing.T) {
	var out bytes.Buffer

	err := RunSimulate(context.Background(), &out, SimulateOptions{
		GlobalOptions: GlobalOptions{LogLevel: "error"},
		Process:       "random",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownProcess)

	err = RunSimulate(context.Background(), &out, SimulateOptions{
		GlobalOptions: GlobalOptions{LogLevel: "error"},
		Params:        map[string]string{"alpha": "fast"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = RunSimulate(context.Background(), &out, SimulateOptions{GlobalOptions: GlobalOptions{LogLevel: "loud"}})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunRoll(t *testing.T) {
	var out bytes.Buffer
	err := RunRoll(context.Background(), &out, RollOptions{
		GlobalOptions: GlobalOptions{LogLevel: "error"},
		Sides:         []int{15, 6},
		Rolls:         4,
		Seed:          uintPtr(8),
	})
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out.String()), 4)

	var again bytes.Buffer
	require.NoError(t, RunRoll(context.Background(), &again, RollOptions{
		GlobalOptions: GlobalOptions{LogLevel: "error"},
		Sides:         []int{15, 6},
		Rolls:         4,
		Seed:          uintPtr(8),
	}))
	assert.Equal(t, out.String(), again.String())

	err = RunRoll(context.Background(), &out, RollOptions{GlobalOptions: GlobalOptions{LogLevel: "error"}, Sides: []int{-1}, Rolls: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
