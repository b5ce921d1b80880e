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

package rle

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []string{"", "a", "aaaa", "aabbbbcc", "abcabc", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			var encoded, decoded bytes.Buffer

			if err := Encode(&encoded, bytes.NewReader([]byte(c))); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			if err := Decode(&decoded, bytes.NewReader(encoded.Bytes())); err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if decoded.String() != c {
				t.Fatalf("round trip mismatch: got %q, want %q", decoded.String(), c)
			}
		})
	}
}

func TestCompressorRoundTrip(t *testing.T) {
	var c Compressor
	text := []byte("aaaaaaaaaabbbbbbbbbbccccccccccabc")

	encoded, err := c.Compress(text)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	decoded, err := c.Decompress(encoded)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	if !bytes.Equal(decoded, text) {
		t.Fatalf("round trip mismatch: got %q, want %q", decoded, text)
	}
}

func TestRunLengthActuallyShrinksLongRuns(t *testing.T) {
	var encoded bytes.Buffer
	text := bytes.Repeat([]byte("x"), 1000)

	if err := Encode(&encoded, bytes.NewReader(text)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if encoded.Len() >= len(text) {
		t.Fatalf("expected a long run to shrink, got %d bytes for %d byte input", encoded.Len(), len(text))
	}
}
