// Copyright 2024 The PCG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// SeedSize is the width in bytes of the fixed external seed format.
const SeedSize = 8

// ErrSeedLength is returned by FromSeedBytes when the supplied seed is
// not exactly SeedSize bytes.
var ErrSeedLength = errors.New("pcg: seed length mismatch")

// A Seed is the external fixed-width seed format. Packing is MSB-first:
// byte 0 becomes the most significant byte of the 64-bit state, so
// Seed{0, 1, 2, 3, 4, 5, 6, 7} packs to 0x0001020304050607. This
// ordering is the cross-language compatibility contract for the format;
// every byte participates.
type Seed [SeedSize]byte

// Uint64 packs the seed into the 64-bit state value it denotes.
func (s Seed) Uint64() uint64 {
	return binary.BigEndian.Uint64(s[:])
}

// SeedFromUint64 is the inverse of Seed.Uint64.
func SeedFromUint64(v uint64) Seed {
	var s Seed
	binary.BigEndian.PutUint64(s[:], v)
	return s
}

// FromSeed returns a generator whose state is the packed seed value.
// The increment is the fixed default, not derived from the seed: all
// seeded generators belong to the same logical stream and differ only
// in where on it they start.
func FromSeed(s Seed) *PCG {
	return &PCG{state: s.Uint64(), inc: defaultInc}
}

// FromSeedBytes is FromSeed for seeds arriving as raw slices. It
// returns ErrSeedLength unless b is exactly SeedSize bytes.
func FromSeedBytes(b []byte) (*PCG, error) {
	if len(b) != SeedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrSeedLength, len(b), SeedSize)
	}
	var s Seed
	copy(s[:], b)
	return FromSeed(s), nil
}

// FromSeedHash seeds a generator from a buffer of any length by
// reducing it to 64 bits with xxhash before packing. The reduction is
// lossy and ties the mapping to one hash function, so it is not a
// cross-implementation seed contract; use FromSeed or FromSeedBytes
// when bit-exact compatibility matters.
func FromSeedHash(b []byte) *PCG {
	return FromSeed(SeedFromUint64(xxhash.Sum64(b)))
}

// Seed returns the byte sequence whose big-endian value equals the
// current state: the decode direction of the seed format.
// FromSeed(p.Seed()) starts a default-stream generator at p's current
// position.
func (p *PCG) Seed() Seed {
	return SeedFromUint64(p.state)
}
