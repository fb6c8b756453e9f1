package random

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type (
	seedKind  int64
	seedLabel string
	seedMask  uint16
	seedScale float32
	seedBlob  []byte
)

// fixedEntropy always returns the same value.
type fixedEntropy uint64

func (f fixedEntropy) Uint64() uint64 { return uint64(f) }

func TestSeedFromString(t *testing.T) {
	testCases := []struct {
		in       string
		expected int64
	}{
		{"", 0},
		{"a", 97},
		{"abc", 96354},
		{"hello world", 1794106052},
		{"the quick brown fox jumps over the lazy dog", -2082818701},
		{"héllo", 103094734},
		{"😀", 1772899}, // surrogate pair: 0xD83D*31 + 0xDE00
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, SeedFromString(tc.in), "in=%q", tc.in)
	}
}

func TestSeedFromString_IsPure(t *testing.T) {
	for _, s := range []string{"seed", "another seed", "ümlaut", "12345"} {
		first := SeedFromString(s)
		for range 10 {
			assert.Equal(t, first, SeedFromString(s))
		}
		assert.True(t, first >= math.MinInt32 && first <= math.MaxInt32)
	}
}

func TestNormalizeSeed(t *testing.T) {
	src := fixedEntropy(Modulus + 17)
	testCases := []struct {
		name     string
		in       any
		expected int64
	}{
		{"int", 42, 42},
		{"negative int", -7, -7},
		{"int8", int8(-8), -8},
		{"int16", int16(300), 300},
		{"int32", int32(-1 << 31), -1 << 31},
		{"int64 beyond modulus", int64(1) << 40, 1 << 40},
		{"uint", uint(5), 5},
		{"uint8", uint8(255), 255},
		{"uint16", uint16(65535), 65535},
		{"uint32", uint32(1 << 31), 1 << 31},
		{"uint64", uint64(12), 12},
		{"float truncates", 3.9, 3},
		{"negative float truncates", -3.9, -3},
		{"float32", float32(2.5), 2},
		{"string", "abc", 96354},
		{"numeric string is text", "42", 1662},
		{"bytes", []byte("abc"), 96354},
		{"uint64 above MaxInt64", uint64(1) << 63, 2},
		{"max uint64", uint64(math.MaxUint64), 3},
		{"named int", seedKind(42), 42},
		{"named negative int", seedKind(-42), -42},
		{"duration", time.Duration(7), 7},
		{"named uint", seedMask(9), 9},
		{"named float", seedScale(4.5), 4},
		{"named string", seedLabel("abc"), 96354},
		{"named bytes", seedBlob("abc"), 96354},
		{"named NaN", seedScale(float32(math.NaN())), 17},
		{"nil", nil, 17},
		{"NaN", math.NaN(), 17},
		{"+Inf", math.Inf(1), 17},
		{"-Inf", math.Inf(-1), 17},
		{"bool", true, 17},
		{"struct", struct{}{}, 17},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSeed(tc.in, src))
		})
	}
}

func TestFallbackSeed_Range(t *testing.T) {
	assert.Equal(t, int64(0), FallbackSeed(fixedEntropy(0)))
	assert.Equal(t, int64(0), FallbackSeed(fixedEntropy(Modulus)))
	assert.Equal(t, int64(Modulus-1), FallbackSeed(fixedEntropy(Modulus-1)))

	c := NewCPRNG(64)
	for range 10_000 {
		v := FallbackSeed(c)
		assert.True(t, v >= 0 && v <= Modulus-1, "fallback seed out of range: %d", v)
	}
}

func TestNormalizeSeed_DefaultEntropy(t *testing.T) {
	restore := SetDefaultEntropy(fixedEntropy(1234))
	defer restore()

	assert.Equal(t, int64(1234), NormalizeSeed(nil, nil))
	assert.Equal(t, int64(1234), New(nil).Seed())
}

func TestNormalizeSeed_NamedTypesAreReproducible(t *testing.T) {
	restore := SetDefaultEntropy(NewCPRNG(64))
	defer restore()

	for _, v := range []any{seedKind(42), time.Duration(7), seedLabel("dungeon"), seedMask(3)} {
		a := New(v)
		b := New(v)
		assert.Equal(t, a.Seed(), b.Seed(), "seed %#v", v)
		for range 100 {
			assert.Equal(t, a.Raw(), b.Raw())
		}
	}
	assert.Equal(t, New(42).Raw(), New(seedKind(42)).Raw())
}

func TestNormalizeSeed_LargeUnsignedKeepsStream(t *testing.T) {
	big := uint64(1)<<63 + 12345
	g := New(big)
	assert.Equal(t, int64(12347), g.Seed(), "values above MaxInt64 must not wrap negative")
	ref := NewStream(int64(big % Modulus))
	assert.Equal(t, ref.State, NewStream(g.Seed()).State)
}
