package process_test

import (
	"testing"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLevel(t *testing.T) {
	p, err := process.DecodeLevel(map[string]any{"level": 120})
	require.NoError(t, err)
	assert.Equal(t, process.Level{Level: 120, Alpha: process.DefaultLevelAlpha}, p)

	// JSON numbers arrive as float64 and CLI values as strings.
	p, err = process.DecodeLevel(map[string]any{"level": 80.0, "alpha": "0.5"})
	require.NoError(t, err)
	assert.Equal(t, process.Level{Level: 80, Alpha: 0.5}, p)
}

func TestDecode_Defaults(t *testing.T) {
	m, err := process.DecodeMomentum(nil)
	require.NoError(t, err)
	assert.Equal(t, process.NewMomentum(), m)

	f, err := process.DecodeFrequency(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, process.NewFrequency(), f)
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := process.DecodeMomentum(map[string]any{"alhpa": 0.1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDecode_BadType(t *testing.T) {
	_, err := process.DecodeFrequency(map[string]any{"alpha": "strong"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
