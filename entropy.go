package random

import (
	"encoding/binary"
	"sync"
)

// EntropySource supplies the non-deterministic values used when a seed is absent or unusable.
// It is the only place where non-determinism enters this module: substitute a fixed source in
// tests to make the fallback path reproducible as well.
type EntropySource interface {
	Uint64() uint64
}

// CPRNG is a cryptographically secure random number generator that reads operating system
// entropy in batches to reduce the number of system calls. It is the default EntropySource.
// This random number generator is not deterministic in the sequence of numbers it generates.
// This random number generator is thread-safe as long as each goroutine uses its own instance.
type CPRNG struct {
	bufPos uint32
	buf    []byte
}

// NewCPRNG creates a new CPRNG with a buffer capacity of capBytes (at least 8).
// The buffer is filled upon creation and refilled as needed.
func NewCPRNG(capBytes uint32) *CPRNG {
	if capBytes < 8 {
		capBytes = 8
	}
	c := &CPRNG{buf: make([]byte, capBytes)}
	if err := fillEntropy(c.buf); err != nil {
		panic(err)
	}
	return c
}

// ensure that n bytes are available, otherwise refill the buffer
func (c *CPRNG) ensure(n int) {
	if c.bufPos+uint32(n) > uint32(len(c.buf)) {
		if err := fillEntropy(c.buf); err != nil {
			panic(err)
		}
		c.bufPos = 0
	}
}

// Uint64 returns a uniformly distributed uint64.
func (c *CPRNG) Uint64() uint64 {
	c.ensure(8)
	v := binary.LittleEndian.Uint64(c.buf[c.bufPos : c.bufPos+8])
	c.bufPos += 8
	return v
}

var (
	entropyMu      sync.Mutex
	defaultEntropy EntropySource
)

// SetDefaultEntropy replaces the process-wide fallback source and returns a function restoring the previous one.
// Passing nil restores the built-in CPRNG.
func SetDefaultEntropy(src EntropySource) (restore func()) {
	entropyMu.Lock()
	prev := defaultEntropy
	defaultEntropy = src
	entropyMu.Unlock()
	return func() {
		entropyMu.Lock()
		defaultEntropy = prev
		entropyMu.Unlock()
	}
}

// defaultFallbackSeed draws a fallback seed from the process-wide source under its lock.
func defaultFallbackSeed() int64 {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	if defaultEntropy == nil {
		defaultEntropy = NewCPRNG(512)
	}
	return FallbackSeed(defaultEntropy)
}
