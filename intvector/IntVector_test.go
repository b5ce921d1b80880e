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

package intvector

import (
	"math/rand"
	"testing"
)

func TestGetSetAllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for w := uint(1); w <= 64; w++ {
		v, err := New(200, w)
		if err != nil {
			t.Fatalf("width %d: New failed: %v", w, err)
		}

		want := make([]uint64, 200)

		for i := range want {
			var val uint64
			if w == 64 {
				val = rng.Uint64()
			} else {
				val = rng.Uint64() & ((uint64(1) << w) - 1)
			}
			want[i] = val
			v.Set(i, val)
		}

		for i, w2 := range want {
			if got := v.Get(i); got != w2 {
				t.Fatalf("width %d index %d: got %d, want %d", w, i, got, w2)
			}
		}
	}
}

func TestSwap(t *testing.T) {
	v, _ := New(4, 10)
	v.Set(0, 1)
	v.Set(1, 2)
	v.Set(2, 3)
	v.Set(3, 4)

	v.Swap(1, 3)

	want := []uint64{1, 4, 3, 2}
	for i, w := range want {
		if got := v.Get(i); got != w {
			t.Fatalf("index %d: got %d, want %d", i, got, w)
		}
	}
}

func TestWidthFor(t *testing.T) {
	cases := []struct {
		max  uint64
		want uint
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{255, 8},
		{256, 9},
	}

	for _, c := range cases {
		if got := WidthFor(c.max); got != c.want {
			t.Fatalf("WidthFor(%d): got %d, want %d", c.max, got, c.want)
		}
	}
}

func TestInvalidBitWidth(t *testing.T) {
	if _, err := New(10, 0); err == nil {
		t.Fatalf("expected error for bit width 0")
	}

	if _, err := New(10, 65); err == nil {
		t.Fatalf("expected error for bit width 65")
	}
}

func TestNarrowValuesTruncated(t *testing.T) {
	v, _ := New(1, 3)
	v.Set(0, 0xFF)

	if got := v.Get(0); got != 7 {
		t.Fatalf("expected value truncated to 3 bits (7), got %d", got)
	}
}
