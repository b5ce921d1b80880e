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

package lcpcomp

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/tudocomp-go/lcpcomp/textindex"
)

func compressDecompress(t *testing.T, text []byte, threshold uint) ([]byte, []byte) {
	t.Helper()

	c, err := NewCompressor(Options{Threshold: threshold, Flatten: true})
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}

	encoded, err := c.Compress(text)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	decoded, err := c.Decompress(encoded)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	return encoded, decoded
}

func TestRoundTripCorpus(t *testing.T) {
	cases := []struct {
		name string
		text []byte
	}{
		{"empty", []byte{}},
		{"single-byte", []byte("x")},
		{"highly-repetitive", bytes.Repeat([]byte("ab"), 100)},
		{"all-distinct", []byte("abcdefghijklmnopqrstuvwxyz")},
		{"abracadabra", []byte("abracadabra")},
		{"mississippi", []byte("mississippi")},
		{"no-repeats", []byte("abcdef")},
		{"aaaa", []byte("aaaaaaaa")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, decoded := compressDecompress(t, c.text, 2)

			if !bytes.Equal(decoded, c.text) {
				t.Fatalf("round trip mismatch for %q: got %q", c.text, decoded)
			}
		})
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(500)
		text := make([]byte, n)

		for i := range text {
			// Keep 0 out of the alphabet: it is reserved for the sentinel.
			text[i] = byte(1 + rng.Intn(250))
		}

		_, decoded := compressDecompress(t, text, 5)

		if !bytes.Equal(decoded, text) {
			t.Fatalf("trial %d: round trip mismatch, n=%d", trial, n)
		}
	}
}

func TestNoRepeatsProducesNoFactors(t *testing.T) {
	text := []byte("abcdef")
	padded := textindex.Sentinel(text)

	idx, err := textindex.Build(padded)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fz, _ := NewFactorizer(2)
	fb := fz.Factorize(idx)

	if fb.Len() != 0 {
		t.Fatalf("expected zero factors for a repeat-free text, got %d", fb.Len())
	}
}

func TestEmptyProducesNoFactors(t *testing.T) {
	padded := textindex.Sentinel([]byte{})

	idx, err := textindex.Build(padded)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fz, _ := NewFactorizer(2)
	fb := fz.Factorize(idx)

	if fb.Len() != 0 {
		t.Fatalf("expected zero factors for the empty text, got %d", fb.Len())
	}
}

func TestOverlappingSelfReferenceFactor(t *testing.T) {
	text := []byte("aaaaaaaa")
	padded := textindex.Sentinel(text)

	idx, err := textindex.Build(padded)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fz, _ := NewFactorizer(2)
	fb := fz.Factorize(idx)
	fb.Sort()
	fb.Flatten()

	if fb.Len() != 1 {
		t.Fatalf("expected exactly one factor for %q, got %d", text, fb.Len())
	}

	f := fb.At(0)

	if f.Pos != 1 || f.Src != 0 || f.Len != 7 {
		t.Fatalf("expected factor (1,0,7), got %+v", f)
	}
}

func TestFactorValidityAfterSort(t *testing.T) {
	text := []byte("abracadabrabracadabra")
	padded := textindex.Sentinel(text)

	idx, err := textindex.Build(padded)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fz, _ := NewFactorizer(2)
	fb := fz.Factorize(idx)
	fb.Sort()

	for i := 0; i < fb.Len(); i++ {
		f := fb.At(i)

		if f.Len < 2 {
			t.Fatalf("factor %+v shorter than threshold", f)
		}

		if f.Src >= f.Pos {
			t.Fatalf("factor %+v violates src < pos", f)
		}

		if f.Pos+f.Len > len(padded) {
			t.Fatalf("factor %+v runs past end of text", f)
		}

		if !bytes.Equal(padded[f.Pos:f.Pos+f.Len], padded[f.Src:f.Src+f.Len]) {
			t.Fatalf("factor %+v does not hold in text", f)
		}

		if i > 0 {
			prev := fb.At(i - 1)
			if prev.Pos+prev.Len > f.Pos {
				t.Fatalf("factors %+v and %+v overlap", prev, f)
			}
		}
	}
}

func TestFlattenNoFactorReferencesInsideAnother(t *testing.T) {
	text := []byte("abcabcabcabcabcabc")
	padded := textindex.Sentinel(text)

	idx, err := textindex.Build(padded)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	fz, _ := NewFactorizer(2)
	fb := fz.Factorize(idx)
	fb.Sort()
	fb.Flatten()

	marked := fb.Marked(len(padded))

	for i := 0; i < fb.Len(); i++ {
		f := fb.At(i)

		for p := f.Src; p < f.Src+f.Len; p++ {
			// A self-overlapping factor such as (1,0,7) covers part of
			// its own source; only other factors' targets count.
			if marked[p] && (p < f.Pos || p >= f.Pos+f.Len) {
				t.Fatalf("factor %+v's source range still overlaps a factor's target range at %d", f, p)
			}
		}
	}
}

func TestThresholdBelowMinimumRejected(t *testing.T) {
	if _, err := NewFactorizer(1); err == nil {
		t.Fatalf("expected error for threshold below minimum")
	}

	if _, err := NewCompressor(Options{Threshold: 1}); err == nil {
		t.Fatalf("expected error for threshold below minimum")
	}
}

func TestRejectsEmbeddedSentinelByte(t *testing.T) {
	c, _ := NewCompressor(Options{Threshold: 2})

	if _, err := c.Compress([]byte{'a', 0, 'b'}); err == nil {
		t.Fatalf("expected error for text containing byte 0x00")
	}
}
