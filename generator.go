package random

import "math"

// childNumerator is divided by the first float of a fresh primary stream to seed the child stream.
// Small seeds start near 0.01, so this draw would be wasted anyway.
const childNumerator = 1e6

// Generator is a seeded, reproducible pseudo-random number generator.
// It owns one seed and two independent Lehmer streams: the primary stream serves all draws,
// the child stream only mints seeds for derived generators (see NextSeed and Child).
// A Generator is not thread-safe; serialize access when sharing one between goroutines.
type Generator struct {
	seed    int64
	primary Stream
	child   Stream
	entropy EntropySource
}

// New creates a Generator. seed may be any integer, a string, or anything else; unusable values fall back
// to a non-deterministic seed from the process-wide EntropySource. Use Seed to read back the value chosen.
func New(seed any) *Generator {
	return NewWithEntropy(seed, nil)
}

// NewWithEntropy is New with an explicit fallback source for unusable seeds.
func NewWithEntropy(seed any, src EntropySource) *Generator {
	g := &Generator{seed: NormalizeSeed(seed, src), entropy: src}
	g.Reset()
	return g
}

// Seed returns the stored seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Reset rewinds both streams to the state derived from the stored seed.
func (g *Generator) Reset() {
	g.primary.Reset(g.seed)
	g.child.State = childState(g.primary.Float64())
}

func childState(first float64) int32 {
	if first == 0 {
		return Modulus - 1
	}
	return normalizeState(int64(math.Floor(childNumerator / first)))
}

// SetSeed replaces the seed and resets the generator.
// seed follows the same rules as in New; unusable values draw from the generator's entropy source.
func (g *Generator) SetSeed(seed any) {
	g.seed = NormalizeSeed(seed, g.entropy)
	g.Reset()
}

// Raw advances the primary stream and returns its new state in [1, 2147483646].
func (g *Generator) Raw() int32 {
	return g.primary.Raw()
}

// Current returns the primary state without advancing it.
func (g *Generator) Current() int32 {
	return g.primary.State
}

// Float64 returns a value in [0.0, 1.0).
func (g *Generator) Float64() float64 {
	return g.primary.Float64()
}

// Int returns a value in [0, 2147483646].
func (g *Generator) Int() int {
	return g.primary.Int()
}

// IntN returns a value in [0, max) for max > 0.
func (g *Generator) IntN(max int) int {
	return g.primary.IntN(max)
}

// IntRange returns a value in [min, max) for min < max.
func (g *Generator) IntRange(min, max int) int {
	return g.primary.IntRange(min, max)
}

// NextSeed advances the child stream and returns its new state, a seed in [1, 2147483646]
// for an independent Generator. The primary stream is not touched.
func (g *Generator) NextSeed() int64 {
	return int64(g.child.Raw())
}

// Child returns a new Generator seeded with NextSeed that keeps g's fallback entropy source.
// Repeated calls on generators with equal seeds build identical trees of generators.
func (g *Generator) Child() *Generator {
	return NewWithEntropy(g.NextSeed(), g.entropy)
}
