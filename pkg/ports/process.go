package ports

import "math/rand/v2"

// Process is a stochastic state-transition rule over immutable states of type S.
type Process[S any] interface {
	// UpProbability returns the probability that the next move is upward.
	UpProbability(state S) float64

	// Next draws one transition from state using src and returns a new state.
	// It returns domain.ErrInvalidProbability if UpProbability leaves [0, 1].
	Next(state S, src rand.Source) (S, error)
}
