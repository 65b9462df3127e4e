package trace

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/aretw0/pricewalk/pkg/ports"
)

// Stream is an infinite, non-restartable sequence of process states.
// It is not safe for concurrent use.
type Stream[S any] struct {
	proc    ports.Process[S]
	src     rand.Source
	current S
	started bool
	err     error
}

// Simulate returns a stream whose first element is start and whose every
// following element is proc.Next of the previous one.
func Simulate[S any](proc ports.Process[S], start S, src rand.Source) *Stream[S] {
	return &Stream[S]{proc: proc, src: src, current: start}
}

// Next advances the stream and returns the new element.
// Once Next fails, it keeps returning the same error.
func (s *Stream[S]) Next() (S, error) {
	var zero S
	if s.err != nil {
		return zero, s.err
	}
	if !s.started {
		s.started = true
		return s.current, nil
	}
	next, err := s.proc.Next(s.current, s.src)
	if err != nil {
		s.err = err
		return zero, err
	}
	s.current = next
	return next, nil
}

// Err returns the error that stopped the stream, if any.
func (s *Stream[S]) Err() error {
	return s.err
}

// All adapts the stream to a range-over-func sequence. Iteration stops after
// the first error, which is yielded alongside the zero state.
func (s *Stream[S]) All() iter.Seq2[S, error] {
	return func(yield func(S, error) bool) {
		for {
			state, err := s.Next()
			if !yield(state, err) || err != nil {
				return
			}
		}
	}
}

// Take consumes the next n elements of the stream.
func Take[S any](s *Stream[S], n int) ([]S, error) {
	if n < 0 {
		return nil, fmt.Errorf("take %d: %w", n, domain.ErrInvalidArgument)
	}
	out := make([]S, 0, n)
	for range n {
		state, err := s.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, state)
	}
	return out, nil
}
