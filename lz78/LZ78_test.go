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

package lz78

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestRoundTripCorpus(t *testing.T) {
	cases := []struct {
		name string
		text []byte
	}{
		{"empty", []byte{}},
		{"single-byte", []byte("x")},
		{"repeated", bytes.Repeat([]byte("ab"), 50)},
		{"all-distinct", []byte("abcdefghijklmnopqrstuvwxyz")},
		{"abracadabra", []byte("abracadabra")},
		{"tobeornottobe", []byte("tobeornottobeortobeornot")},
		{"ends-mid-phrase", []byte("aaaaaaaaabb")},
	}

	c := NewCompressor()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := c.Compress(tc.text)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}

			decoded, err := c.Decompress(encoded)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}

			if !bytes.Equal(decoded, tc.text) {
				t.Fatalf("round trip mismatch for %q: got %q", tc.text, decoded)
			}
		})
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := NewCompressor()

	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(400)
		text := make([]byte, n)

		for i := range text {
			text[i] = byte(rng.Intn(6))
		}

		encoded, err := c.Compress(text)
		if err != nil {
			t.Fatalf("trial %d Compress: %v", trial, err)
		}

		decoded, err := c.Decompress(encoded)
		if err != nil {
			t.Fatalf("trial %d Decompress: %v", trial, err)
		}

		if !bytes.Equal(decoded, text) {
			t.Fatalf("trial %d: round trip mismatch, n=%d", trial, n)
		}
	}
}

func TestBitsForGrowsWithDictionary(t *testing.T) {
	if bitsFor(1) != 1 {
		t.Fatalf("bitsFor(1) = %d, want 1", bitsFor(1))
	}

	if bitsFor(2) != 1 {
		t.Fatalf("bitsFor(2) = %d, want 1", bitsFor(2))
	}

	if bitsFor(3) != 2 {
		t.Fatalf("bitsFor(3) = %d, want 2", bitsFor(3))
	}

	if bitsFor(257) != 9 {
		t.Fatalf("bitsFor(257) = %d, want 9", bitsFor(257))
	}
}
