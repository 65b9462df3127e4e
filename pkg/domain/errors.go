package domain

import "errors"

// ErrInvalidArgument is returned when a caller supplies an out-of-domain argument
// (non-positive die sides, negative sample counts, negative horizons, ...).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidProbability is returned when an up-probability falls outside [0, 1].
var ErrInvalidProbability = errors.New("invalid probability")

// ErrUnknownProcess is returned when a simulation names a process kind that does not exist.
var ErrUnknownProcess = errors.New("unknown process")

// ErrSimulationNotFound is returned when a simulation ID cannot be found in the store.
var ErrSimulationNotFound = errors.New("simulation not found")
