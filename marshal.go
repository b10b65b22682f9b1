// Copyright 2024 The PCG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"encoding/binary"
	"encoding/json"
	"errors"
)

// marshaledSize is the length of the binary state encoding: the state
// and then the increment, big-endian, with no version tag.
const marshaledSize = 16

var errUnmarshal = errors.New("pcg: invalid state encoding")

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *PCG) MarshalBinary() ([]byte, error) {
	b := make([]byte, marshaledSize)
	binary.BigEndian.PutUint64(b[:8], p.state)
	binary.BigEndian.PutUint64(b[8:], p.inc)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Restoring a
// marshaled generator reproduces its exact future output sequence.
//
// An encoding carrying an even increment is rejected: no constructor
// can produce one, and accepting it would silently truncate the
// generator's period.
func (p *PCG) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return errUnmarshal
	}
	inc := binary.BigEndian.Uint64(data[8:])
	if inc&1 == 0 {
		return errUnmarshal
	}
	p.state = binary.BigEndian.Uint64(data[:8])
	p.inc = inc
	return nil
}

// jsonState mirrors PCG for the JSON encoding; the field order matches
// the binary layout.
type jsonState struct {
	State uint64 `json:"state"`
	Inc   uint64 `json:"inc"`
}

// MarshalJSON implements json.Marshaler.
func (p *PCG) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonState{State: p.state, Inc: p.inc})
}

// UnmarshalJSON implements json.Unmarshaler, with the same increment
// validation as UnmarshalBinary.
func (p *PCG) UnmarshalJSON(data []byte) error {
	var s jsonState
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s.Inc&1 == 0 {
		return errUnmarshal
	}
	p.state, p.inc = s.State, s.Inc
	return nil
}
