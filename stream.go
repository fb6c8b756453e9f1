package random

import "math"

const (
	// Modulus is the Mersenne prime 2^31-1 used by the Park-Miller "Minimal Standard" generator.
	Modulus = 2147483647
	// Multiplier is a primitive root modulo Modulus.
	Multiplier = 16807
)

// Stream is a Lehmer (Park-Miller Minimal Standard) linear congruential generator.
// Each call to Raw computes State = State * 16807 mod (2^31-1).
// This random number generator is deterministic in the sequence of numbers it generates. It has a period of 2^31-2.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe.
// This random number generator has a memory footprint of 4 bytes and can be embedded in any struct.
// The State must stay within 1..Modulus-1: use Reset to initialize it. A zero State collapses the stream to zero forever.
type Stream struct {
	State int32
}

// NewStream returns a Stream initialized from seed, see Reset.
func NewStream(seed int64) *Stream {
	s := &Stream{}
	s.Reset(seed)
	return s
}

// Advance applies one step of the recurrence to the state cell and returns the new value.
// All layers of this module (Stream, Generator and the fp package) share this single implementation.
func Advance(state *int32) int32 {
	*state = int32(int64(*state) * Multiplier % Modulus)
	return *state
}

// normalizeState folds an arbitrary integer into the valid state range 1..Modulus-1.
// Go's % keeps the sign of the dividend, so negative seeds land in (-Modulus, 0] before the shift.
func normalizeState(seed int64) int32 {
	state := seed % Modulus
	if state <= 0 {
		state += Modulus - 1
	}
	return int32(state)
}

// Reset sets the State from seed: seed mod 2^31-1, shifted by 2^31-2 when the remainder is not positive.
func (s *Stream) Reset(seed int64) {
	s.State = normalizeState(seed)
}

// Valid reports whether the State satisfies 1 <= State <= Modulus-1.
func (s *Stream) Valid() bool {
	return s.State >= 1 && s.State <= Modulus-1
}

// Raw advances the stream and returns the new state in [1, 2147483646].
func (s *Stream) Raw() int32 {
	return Advance(&s.State)
}

// Float64 returns a value in [0.0, 1.0) computed as (Raw()-1)/(2^31-2).
// It consumes exactly one step of the stream.
func (s *Stream) Float64() float64 {
	return unit(s.Raw())
}

// Int returns a value in [0, 2147483646].
func (s *Stream) Int() int {
	return s.IntRange(0, Modulus)
}

// IntN returns a value in [0, max) for max > 0.
func (s *Stream) IntN(max int) int {
	return s.IntRange(0, max)
}

// IntRange returns floor(Float64()*(max-min)+min), i.e. a value in [min, max) for min < max.
// Swapped or equal bounds are not rejected; the formula is applied as is.
func (s *Stream) IntRange(min, max int) int {
	return scale(s.Float64(), min, max)
}

func unit(raw int32) float64 {
	return float64(raw-1) / (Modulus - 1)
}

func scale(f float64, min, max int) int {
	return int(math.Floor(f*float64(max-min) + float64(min)))
}
