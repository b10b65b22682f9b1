// Copyright 2024 The PCG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pcg implements the XSH-RR member of the permuted congruential
// generator family as defined in
//
// 	PCG: A Family of Simple Fast Space-Efficient Statistically Good
// 	Algorithms for Random Number Generation
// 	Melissa E. O'Neill, Harvey Mudd College
// 	http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf
//
// The generator is a 64-bit linear congruential generator whose state
// is passed through an xorshift and a data-dependent rotate before
// output, destroying the low-bit linear structure a plain LCG exhibits.
// It is compact, fast and statistically strong, but not
// cryptographically secure.
//
// A PCG value is owned by a single logical caller. Sharing one across
// goroutines requires external synchronization; independent goroutines
// should each hold their own generator, on distinct streams if their
// outputs must not correlate.
package pcg

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

const (
	multiplier = 6364136223846793005

	// Reference state and increment from the canonical C
	// implementation. Default starts here, and the seed codec pins
	// every seeded generator to the defaultInc stream.
	defaultState = 0x853c49e6748fea9b
	defaultInc   = 0xda3e39cb94b95bdb
)

// ErrInvalidBound is returned by Bounded when the bound is zero.
var ErrInvalidBound = errors.New("pcg: bound must be nonzero")

// A PCG holds the generator state: the current 64-bit LCG state, which
// every output call mutates, and the odd increment selecting one of
// 2^63 independent output streams, fixed at construction.
//
// The zero value is not a valid generator (its increment is even);
// construct with New, Default, or one of the seed codec functions.
type PCG struct {
	state uint64
	inc   uint64
}

// New returns a generator starting at seed on the stream selected by
// seq. The state is exactly seed, with no warm-up advance, so the
// output sequence is a pure function of (seed, seq). The increment is
// (seq<<1)|1: always odd, which gives the underlying LCG its full
// 2^64 period.
func New(seed, seq uint64) *PCG {
	return &PCG{state: seed, inc: seq<<1 | 1}
}

// Default returns a generator initialized with the reference constants.
// Every Default generator produces the same, reproducible sequence.
func Default() *PCG {
	return &PCG{state: defaultState, inc: defaultInc}
}

// Uint32 advances the state by one LCG step and returns the permuted
// 32-bit output of the pre-advance state: an 18/27 xorshift truncated
// to 32 bits, right-rotated by the state's top five bits.
func (p *PCG) Uint32() uint32 {
	old := p.state
	p.state = old*multiplier + p.inc

	xorshifted := uint32((old >> 18) ^ (old >> 27))
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 returns the next 64-bit output, composed of two successive
// 32-bit outputs with the earlier draw in the high word. It advances
// the state by exactly two LCG steps.
func (p *PCG) Uint64() uint64 {
	hi := p.Uint32()
	lo := p.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Bounded returns a uniform value in [0, bound). Threshold rejection
// removes the modulo bias of a plain remainder: draws below
// (2^32-bound) mod bound are discarded so the survivors cover a whole
// number of copies of [0, bound). The loop terminates with probability
// 1 and in practice almost always on the first draw.
//
// Bounded returns ErrInvalidBound if bound is zero, without advancing
// the state.
func (p *PCG) Bounded(bound uint32) (uint32, error) {
	if bound == 0 {
		return 0, ErrInvalidBound
	}
	threshold := -bound % bound
	for {
		if r := p.Uint32(); r >= threshold {
			return r % bound, nil
		}
	}
}

// Fill overwrites b with deterministic pseudo-random bytes: successive
// Uint64 outputs serialized little-endian, the final word truncated
// when len(b) is not a multiple of eight. Each call consumes whole
// words from the stream, so filling three bytes and then five draws
// more of the stream than filling eight at once.
func (p *PCG) Fill(b []byte) {
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, p.Uint64())
		b = b[8:]
	}
	if len(b) > 0 {
		var w [8]byte
		binary.LittleEndian.PutUint64(w[:], p.Uint64())
		copy(b, w[:])
	}
}

// Read implements io.Reader for callers that require a fallible byte
// source. It always fills b completely and never returns an error.
func (p *PCG) Read(b []byte) (int, error) {
	p.Fill(b)
	return len(b), nil
}
