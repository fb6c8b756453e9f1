package random

import "errors"

// ErrEmptySequence is returned by Choice when there is no element to pick.
// It is the only error kind of this package (an invalid argument).
var ErrEmptySequence = errors.New("random: choice from empty sequence")

// Intner is implemented by every generator in this module.
// IntN(n) must return a value in [0, n) for n > 0.
type Intner interface {
	IntN(n int) int
}

// Choice returns seq[r.IntN(len(seq))].
// For an empty seq it returns the zero value and ErrEmptySequence without consuming a draw.
func Choice[T any](r Intner, seq []T) (T, error) {
	if len(seq) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return seq[r.IntN(len(seq))], nil
}

// ShuffleFunc performs an in-place Fisher-Yates (Durstenfeld) shuffle of n elements via swap.
// The index runs downward from n to 1: each step draws j = r.IntN(i), decrements i and swaps i with j.
// A shuffle of n elements therefore consumes exactly n draws; the last one is always 0 and swaps
// element 0 with itself. Keeping that draw keeps sequences compatible with previously recorded runs.
func ShuffleFunc(r Intner, n int, swap func(i, j int)) {
	for i := n; i != 0; {
		j := r.IntN(i)
		i--
		swap(i, j)
	}
}

// Shuffle permutes seq in place and returns it.
func Shuffle[T any](r Intner, seq []T) []T {
	ShuffleFunc(r, len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}
