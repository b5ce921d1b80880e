/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lzss

import (
	"bytes"
	"testing"
)

func TestSortOrdersByPos(t *testing.T) {
	fb := NewFactorBuffer()
	fb.Push(Factor{Pos: 10, Src: 0, Len: 2})
	fb.Push(Factor{Pos: 2, Src: 0, Len: 2})
	fb.Push(Factor{Pos: 6, Src: 0, Len: 2})
	fb.Sort()

	want := []int{2, 6, 10}
	for i, w := range want {
		if fb.At(i).Pos != w {
			t.Fatalf("At(%d).Pos = %d, want %d", i, fb.At(i).Pos, w)
		}
	}
}

func TestFlattenRemovesChainedReferences(t *testing.T) {
	// Text: "abcabcabc" (9 bytes). Factor A: pos=3,src=0,len=3 ("abc").
	// Factor B: pos=6,src=3,len=3 references *into* A. After Flatten,
	// B.Src must be rewritten to point at 0 (A's own Src), not at 3
	// (which factor A covers).
	fb := NewFactorBuffer()
	fb.Push(Factor{Pos: 3, Src: 0, Len: 3})
	fb.Push(Factor{Pos: 6, Src: 3, Len: 3})
	fb.Flatten()

	for i := 0; i < fb.Len(); i++ {
		f := fb.At(i)
		j := fb.find(f.Src)
		if j >= 0 {
			t.Fatalf("factor %+v still references inside factor %+v after Flatten", f, fb.At(j))
		}
	}

	b := fb.At(1)
	if b.Src != 0 {
		t.Fatalf("expected flattened Src 0, got %d", b.Src)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	fb := NewFactorBuffer()
	fb.Push(Factor{Pos: 3, Src: 0, Len: 3})
	fb.Push(Factor{Pos: 6, Src: 3, Len: 3})
	fb.Push(Factor{Pos: 9, Src: 6, Len: 3})
	fb.Flatten()

	before := make([]Factor, fb.Len())
	for i := 0; i < fb.Len(); i++ {
		before[i] = fb.At(i)
	}

	fb.Flatten()

	for i := 0; i < fb.Len(); i++ {
		if fb.At(i) != before[i] {
			t.Fatalf("Flatten not idempotent at %d: %+v != %+v", i, fb.At(i), before[i])
		}
	}
}

func TestMarked(t *testing.T) {
	fb := NewFactorBuffer()
	fb.Push(Factor{Pos: 2, Src: 0, Len: 3})
	fb.Sort()

	marked := fb.Marked(8)
	want := []bool{false, false, true, true, true, false, false, false}

	for i, w := range want {
		if marked[i] != w {
			t.Fatalf("marked[%d] = %v, want %v", i, marked[i], w)
		}
	}
}

func roundTrip(t *testing.T, text []byte, factors []Factor) {
	t.Helper()

	fb := NewFactorBuffer()
	for _, f := range factors {
		fb.Push(f)
	}
	fb.Sort()

	// Every factor must actually hold in the text before we trust the coder.
	for i := 0; i < fb.Len(); i++ {
		f := fb.At(i)
		if !bytes.Equal(text[f.Pos:f.Pos+f.Len], text[f.Src:f.Src+f.Len]) {
			t.Fatalf("invalid test factor %+v for text %q", f, text)
		}
	}

	c := NewCoder()
	encoded := c.Encode(text, fb)

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !bytes.Equal(decoded, text) {
		t.Fatalf("round trip mismatch: got %q, want %q", decoded, text)
	}
}

func TestCoderRoundTripNoFactors(t *testing.T) {
	roundTrip(t, []byte("abcdef"), nil)
}

func TestCoderRoundTripEmpty(t *testing.T) {
	roundTrip(t, []byte{}, nil)
}

func TestCoderRoundTripSimpleFactor(t *testing.T) {
	// "abcabc": factor at pos 3 referencing pos 0, length 3.
	roundTrip(t, []byte("abcabc"), []Factor{{Pos: 3, Src: 0, Len: 3}})
}

func TestCoderRoundTripOverlappingSelfReference(t *testing.T) {
	// "aaaaaaaa": pos=1,src=0,len=7 is a self-overlapping RLE-like copy.
	roundTrip(t, []byte("aaaaaaaa"), []Factor{{Pos: 1, Src: 0, Len: 7}})
}

func TestCoderRoundTripMultipleFactors(t *testing.T) {
	text := []byte("abracadabra")
	// (7,0,4) "abra" reuse, (5,0,1) single-byte reuse is below any
	// sane threshold but still a valid Factor for coder-level testing.
	roundTrip(t, text, []Factor{
		{Pos: 5, Src: 0, Len: 1},
		{Pos: 7, Src: 0, Len: 4},
	})
}

func TestCoderDecodeEmptyStream(t *testing.T) {
	c := NewCoder()
	out, err := c.Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
}
