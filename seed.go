package random

import (
	"math"
	"reflect"
	"unicode/utf16"
)

// NormalizeSeed converts v into an integer seed.
//
//   - Integers of any width are returned unchanged; reduction into the state range happens in Reset.
//     Unsigned values above math.MaxInt64 are reduced mod Modulus, which selects the same stream.
//   - Strings and byte slices are folded with SeedFromString.
//   - Named types (time.Duration, type Level string, ...) follow the rule of their underlying kind.
//   - Finite floats are truncated toward zero.
//   - Everything else (nil, NaN, ±Inf, bool, structs, ...) yields FallbackSeed(src).
//     A nil src uses the process-wide default source, see SetDefaultEntropy.
func NormalizeSeed(v any, src EntropySource) int64 {
	switch s := v.(type) {
	case int:
		return int64(s)
	case int8:
		return int64(s)
	case int16:
		return int64(s)
	case int32:
		return int64(s)
	case int64:
		return s
	case uint:
		return uintSeed(uint64(s))
	case uint8:
		return int64(s)
	case uint16:
		return int64(s)
	case uint32:
		return int64(s)
	case uint64:
		return uintSeed(s)
	case float32:
		return truncSeed(float64(s), src)
	case float64:
		return truncSeed(s, src)
	case string:
		return SeedFromString(s)
	case []byte:
		return SeedFromString(string(s))
	case nil:
		return fallback(src)
	}
	return kindSeed(reflect.ValueOf(v), src)
}

// kindSeed handles named types by their underlying kind.
func kindSeed(rv reflect.Value, src EntropySource) int64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintSeed(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return truncSeed(rv.Float(), src)
	case reflect.String:
		return SeedFromString(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return SeedFromString(string(rv.Bytes()))
		}
	}
	return fallback(src)
}

func uintSeed(u uint64) int64 {
	if u > math.MaxInt64 {
		return int64(u % Modulus)
	}
	return int64(u)
}

func truncSeed(f float64, src EntropySource) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback(src)
	}
	return int64(f)
}

func fallback(src EntropySource) int64 {
	if src == nil {
		return defaultFallbackSeed()
	}
	return FallbackSeed(src)
}

// SeedFromString folds s into a signed 32-bit seed: acc = acc*31 + unit over the UTF-16 code units of s,
// wrapping on overflow after every step. The same string always yields the same seed; distinct strings may collide.
func SeedFromString(s string) int64 {
	var acc int32
	for _, u := range utf16.Encode([]rune(s)) {
		acc = acc*31 + int32(u)
	}
	return int64(acc)
}

// FallbackSeed returns a non-reproducible seed in [0, 2147483646] drawn from src.
func FallbackSeed(src EntropySource) int64 {
	return int64(src.Uint64() % Modulus)
}
