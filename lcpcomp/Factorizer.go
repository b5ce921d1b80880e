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

// Package lcpcomp is the hard core of this module: it turns a
// sentinel-terminated text's suffix array, inverse suffix array and
// LCP array into a sequence of lzss.Factor back-references by
// repeatedly pulling the longest remaining repeat off a max-heap keyed
// on the LCP array itself.
package lcpcomp

import (
	"github.com/pkg/errors"

	"github.com/tudocomp-go/lcpcomp/heap"
	"github.com/tudocomp-go/lcpcomp/lzss"
	"github.com/tudocomp-go/lcpcomp/textindex"
)

// DefaultThreshold is the minimum factor length when Options.Threshold
// is left at its zero value.
const DefaultThreshold = 5

// MinThreshold is the smallest threshold NewFactorizer accepts.
const MinThreshold = 2

// Factorizer implements the LCP-driven factorization algorithm of
// this module: extract the longest remaining repeat, emit it as a
// factor, forbid its positions, propagate the shrinkage to every
// other candidate repeat that overlapped it, repeat until nothing
// left clears the threshold.
type Factorizer struct {
	threshold uint
}

// NewFactorizer creates a Factorizer with the given minimum factor
// length. threshold below MinThreshold is a configuration error.
func NewFactorizer(threshold uint) (*Factorizer, error) {
	if threshold < MinThreshold {
		return nil, errors.Errorf("lcpcomp: threshold %d is below the minimum of %d", threshold, MinThreshold)
	}

	return &Factorizer{threshold: threshold}, nil
}

// Threshold returns the minimum factor length this Factorizer emits.
func (this *Factorizer) Threshold() uint {
	return this.threshold
}

// clampAgainstMarked returns the longest l <= maxLen such that neither
// [p1,p1+l) nor [p2,p2+l) touches a marked position. It is used both
// to shrink a candidate factor to the longest still-available prefix
// and to recompute a heap entry's effective LCP after a neighboring
// factor consumes some of the text it depended on.
func clampAgainstMarked(p1, p2, maxLen int, marked []bool) int {
	l := 0

	for l < maxLen && !marked[p1+l] && !marked[p2+l] {
		l++
	}

	return l
}

// Factorize runs the main loop of §4.5 over idx, returning the
// factors it found. It does not sort or flatten the result; callers
// needing sorted/flattened output call FactorBuffer.Sort/Flatten
// themselves (Compressor does both).
func (this *Factorizer) Factorize(idx *textindex.Index) *lzss.FactorBuffer {
	n := idx.Len()
	fb := lzss.NewFactorBuffer()

	if n <= 1 {
		return fb
	}

	sa, isa, lcp := idx.SA(), idx.ISA(), idx.LCP()

	h, err := heap.New(lcp)
	if err != nil {
		// idx.Len() == lcp.Len() by construction; this cannot happen
		// for a well-formed Index.
		panic(errors.Wrap(err, "lcpcomp: building the LCP heap"))
	}

	threshold := uint64(this.threshold)

	for i := 1; i < n; i++ {
		if lcp.Get(i) >= threshold {
			h.Insert(i)
		}
	}

	marked := make([]bool, n)

	for h.Len() > 0 {
		istar, ok := h.Max()
		if !ok {
			break
		}

		l := lcp.Get(istar)

		if l < threshold {
			break
		}

		p := int(sa.Get(istar))
		s := int(sa.Get(istar - 1))

		var tgt, src int

		switch {
		case s < p:
			tgt, src = p, s
		case p < s:
			tgt, src = s, p
		default:
			// Unreachable: SA holds distinct starting positions.
			h.Remove(istar)
			continue
		}

		length := clampAgainstMarked(tgt, tgt, int(l), marked) // degenerates to "longest unmarked prefix at tgt"

		if length < int(threshold) {
			h.Remove(istar)
			continue
		}

		fb.Push(lzss.Factor{Pos: tgt, Src: src, Len: length})

		for q := tgt; q < tgt+length; q++ {
			marked[q] = true
		}

		for q := tgt; q < tgt+length; q++ {
			k := int(isa.Get(q))

			for _, j := range [2]int{k, k + 1} {
				if j == istar || j <= 0 || j >= n || !h.Contains(j) {
					continue
				}

				p1, p2 := int(sa.Get(j-1)), int(sa.Get(j))
				cur := lcp.Get(j)
				nv := uint64(clampAgainstMarked(p1, p2, int(cur), marked))

				if nv == cur {
					continue
				}

				if nv >= threshold {
					h.DecreaseKey(j, nv)
				} else {
					h.Remove(j)
				}
			}
		}

		h.Remove(istar)
	}

	return fb
}
