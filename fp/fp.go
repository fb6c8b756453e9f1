// Package fp runs the Lehmer recurrence of package random on state owned by arbitrary entities.
//
// Instead of holding a *random.Generator, an entity exposes a single int32 cell through Holder
// (or embeds State) and passes itself to the functions below. There is no seed and no child
// stream at this layer: seed the cell once with Seed, or assign a value in 1..2147483646 directly,
// before the first draw.
package fp

import random "github.com/chriscauley/ur-random"

// Holder is implemented by entities that carry their own stream state.
type Holder interface {
	PRNGState() *int32
}

// State is an embeddable stream cell implementing Holder.
type State struct {
	PRNG int32
}

// PRNGState returns the address of the cell.
func (s *State) PRNGState() *int32 {
	return &s.PRNG
}

// Seed initializes the holder's cell from seed with the same reduction as random.Stream.Reset.
func Seed(h Holder, seed int64) {
	s := random.NewStream(seed)
	*h.PRNGState() = s.State
}

// Raw advances the holder's stream and returns the new state.
func Raw(h Holder) int32 {
	return random.Advance(h.PRNGState())
}

// Float64 returns a value in [0.0, 1.0) from the holder's stream.
func Float64(h Holder) float64 {
	s := stream(h)
	defer s.store()
	return s.Float64()
}

// Int returns a value in [0, 2147483646].
func Int(h Holder) int {
	return IntRange(h, 0, random.Modulus)
}

// IntN returns a value in [0, max) for max > 0.
func IntN(h Holder, max int) int {
	return IntRange(h, 0, max)
}

// IntRange returns floor(Float64(h)*(max-min)+min).
func IntRange(h Holder, min, max int) int {
	s := stream(h)
	defer s.store()
	return s.IntRange(min, max)
}

// Choice returns a random element of seq, or random.ErrEmptySequence when seq is empty.
func Choice[T any](h Holder, seq []T) (T, error) {
	return random.Choice(intner{h}, seq)
}

// Shuffle permutes seq in place with the holder's stream and returns it.
func Shuffle[T any](h Holder, seq []T) []T {
	return random.Shuffle(intner{h}, seq)
}

// intner adapts a Holder to random.Intner.
type intner struct {
	h Holder
}

func (i intner) IntN(n int) int {
	return IntN(i.h, n)
}

// borrowed runs random.Stream methods on a copy of the holder's cell; store writes the copy back.
type borrowed struct {
	random.Stream
	cell *int32
}

func stream(h Holder) *borrowed {
	cell := h.PRNGState()
	return &borrowed{Stream: random.Stream{State: *cell}, cell: cell}
}

func (b *borrowed) store() {
	*b.cell = b.State
}
