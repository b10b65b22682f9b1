// Copyright 2024 The PCG Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestMarshalBinaryLayout(t *testing.T) {
	p := New(0x1122334455667788, 5)
	b, err := p.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	// State then increment, big-endian, nothing else.
	want := []byte{
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
		0, 0, 0, 0, 0, 0, 0, 0x0b,
	}
	if !bytes.Equal(b, want) {
		t.Errorf("MarshalBinary = %x, want %x", b, want)
	}
}

func TestMarshalBinaryResume(t *testing.T) {
	p := Default()
	for i := 0; i < 5; i++ {
		p.Uint64()
	}
	b, err := p.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var q PCG
	if err := q.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if x, y := p.Uint64(), q.Uint64(); x != y {
			t.Fatalf("draw %d after restore: %#x != %#x", i, x, y)
		}
	}
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	var p PCG
	for _, n := range []int{0, 8, 15, 17, 32} {
		if err := p.UnmarshalBinary(make([]byte, n)); err == nil {
			t.Errorf("UnmarshalBinary(len %d) succeeded, want error", n)
		}
	}

	// A well-formed length with an even increment is still invalid.
	even := make([]byte, marshaledSize)
	if err := p.UnmarshalBinary(even); err == nil {
		t.Error("UnmarshalBinary accepted an even increment")
	}
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"state":9600629759793949339,"inc":15726070495360670683}`
	if string(b) != want {
		t.Errorf("MarshalJSON = %s, want %s", b, want)
	}
}

func TestJSONResume(t *testing.T) {
	p := New(424242, 99)
	p.Uint32()
	p.Uint32()
	p.Uint32()

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var q PCG
	if err := json.Unmarshal(b, &q); err != nil {
		t.Fatal(err)
	}
	if q != *p {
		t.Fatalf("restored %+v, want %+v", q, *p)
	}
	for i := 0; i < 100; i++ {
		if x, y := p.Uint32(), q.Uint32(); x != y {
			t.Fatalf("draw %d after restore: %#x != %#x", i, x, y)
		}
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	var p PCG
	if err := json.Unmarshal([]byte(`{"state":1,"inc":2}`), &p); err == nil {
		t.Error("UnmarshalJSON accepted an even increment")
	}
	if err := json.Unmarshal([]byte(`{"state":"x"}`), &p); err == nil {
		t.Error("UnmarshalJSON accepted a malformed document")
	}
}
