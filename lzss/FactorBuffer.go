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

import "sort"

// FactorBuffer is an unordered multiset of Factors while a compressor
// is discovering repeats; Sort turns it into a Pos-ascending sequence,
// and Flatten then rewrites every Src so it points into text that is
// itself uncovered by any factor, collapsing reference chains to depth 1.
type FactorBuffer struct {
	factors []Factor
	sorted  bool
}

// NewFactorBuffer creates an empty buffer.
func NewFactorBuffer() *FactorBuffer {
	return &FactorBuffer{}
}

// Push appends a factor. It invalidates the sorted flag: callers must
// call Sort again before relying on Pos order.
func (this *FactorBuffer) Push(f Factor) {
	this.factors = append(this.factors, f)
	this.sorted = false
}

// Len returns the number of factors in the buffer.
func (this *FactorBuffer) Len() int {
	return len(this.factors)
}

// At returns the i-th factor. After Sort, factors are Pos-ascending.
func (this *FactorBuffer) At(i int) Factor {
	return this.factors[i]
}

// Sort orders the factors by Pos ascending. Idempotent.
func (this *FactorBuffer) Sort() {
	if this.sorted {
		return
	}

	sort.Slice(this.factors, func(i, j int) bool {
		return this.factors[i].Pos < this.factors[j].Pos
	})

	this.sorted = true
}

// find returns the index of the (sorted) factor covering position p,
// or -1 if p is not covered by any factor. Factors never overlap in
// Pos space (the factorizer guarantees this via its marked bitvector),
// so a single binary search suffices.
func (this *FactorBuffer) find(p int) int {
	lo, hi := 0, len(this.factors)-1

	for lo <= hi {
		mid := (lo + hi) / 2
		f := this.factors[mid]

		switch {
		case p < f.Pos:
			hi = mid - 1
		case p >= f.Pos+f.Len:
			lo = mid + 1
		default:
			return mid
		}
	}

	return -1
}

// Flatten rewrites every factor's Src so that it no longer falls
// inside another factor's Pos range. Each rewrite strictly decreases
// the rewritten Src (it becomes ff.Src + offset, and ff.Src < ff.Pos
// <= the old Src), so the whole pass is bounded and reaches a fixed
// point; Sort must have been called first (Flatten calls it if not).
func (this *FactorBuffer) Flatten() {
	this.Sort()

	for {
		changed := false

		for i := range this.factors {
			f := &this.factors[i]
			j := this.find(f.Src)

			if j < 0 {
				continue
			}

			ff := this.factors[j]
			offset := f.Src - ff.Pos
			newLen := ff.Len - offset

			if newLen < f.Len {
				f.Len = newLen
			}

			f.Src = ff.Src + offset
			changed = true
		}

		if !changed {
			return
		}
	}
}

// Marked returns, for a text of length n, a bitvector where marked[p]
// is true iff p falls inside some factor's [Pos, Pos+Len) range. Sort
// must have been called (or Flatten, which calls it).
func (this *FactorBuffer) Marked(n int) []bool {
	marked := make([]bool, n)

	for _, f := range this.factors {
		for p := f.Pos; p < f.Pos+f.Len; p++ {
			marked[p] = true
		}
	}

	return marked
}
