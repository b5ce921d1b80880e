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

// Package textindex builds the suffix array, inverse suffix array and
// LCP array a text compressor needs to find repeats, using a linear
// time SA-IS construction and a Kasai-style linear LCP scan so the
// whole index is O(n) in both time and (packed) space.
package textindex

import (
	"github.com/pkg/errors"

	"github.com/tudocomp-go/lcpcomp/intvector"
)

const alphabetSize = 257 // 256 byte values + the sentinel

// Index holds the suffix array, inverse suffix array and LCP array of
// a sentinel-terminated text, every one packed to the bit width the
// text's length actually needs.
type Index struct {
	n   int
	sa  *intvector.Vector
	isa *intvector.Vector
	lcp *intvector.Vector
}

// Sentinel appends byte 0 as a sentinel, strictly smaller than every
// byte already present in text, growing the alphabet by exactly one
// symbol. It panics if text already contains byte 0.
func Sentinel(text []byte) []byte {
	var seen [256]bool
	for _, b := range text {
		seen[b] = true
	}

	if seen[0] {
		panic(errors.New("textindex: text already contains byte 0, no room for a sentinel"))
	}

	out := make([]byte, len(text)+1)
	copy(out, text)
	out[len(text)] = 0
	return out
}

// Build constructs the suffix array, inverse suffix array and LCP
// array of text. text must end with a sentinel byte strictly smaller
// than every other byte in it (see Sentinel); Build validates this and
// returns a configuration error otherwise.
func Build(text []byte) (*Index, error) {
	n := len(text)

	if n == 0 {
		return nil, errors.New("textindex: empty text")
	}

	minByte := text[0]
	minCount := 0

	for _, b := range text {
		if b < minByte {
			minByte = b
			minCount = 0
		}
		if b == minByte {
			minCount++
		}
	}

	if minCount != 1 || text[n-1] != minByte {
		return nil, errors.New("textindex: text must end with a unique sentinel byte strictly smaller than every other byte")
	}

	data := make([]int, n)
	for i, b := range text {
		data[i] = int(b)
	}

	sa := make([]int, n)
	computeSuffixArray(data, sa, 0, n, alphabetSize)

	width := intvector.WidthFor(uint64(n))

	saVec, err := intvector.New(n, width)
	if err != nil {
		return nil, errors.Wrap(err, "textindex: allocating SA vector")
	}

	isaVec, err := intvector.New(n, width)
	if err != nil {
		return nil, errors.Wrap(err, "textindex: allocating ISA vector")
	}

	for i := 0; i < n; i++ {
		saVec.Set(i, uint64(sa[i]))
		isaVec.Set(sa[i], uint64(i))
	}

	lcpVec, err := intvector.New(n, width)
	if err != nil {
		return nil, errors.Wrap(err, "textindex: allocating LCP vector")
	}

	computeLCP(data, sa, lcpVec)

	return &Index{n: n, sa: saVec, isa: isaVec, lcp: lcpVec}, nil
}

// computeLCP derives the LCP array via Φ and PLCP (Kasai's linear
// algorithm): Φ[SA[i]] = SA[i-1] gives each suffix its predecessor in
// suffix-array order; the PLCP scan walks text order instead of rank
// order, so the running match length only ever drops by one between
// consecutive positions, keeping the whole pass O(n).
func computeLCP(data []int, sa []int, lcp *intvector.Vector) {
	n := len(sa)

	phi := make([]int32, n)
	phi[sa[0]] = -1

	for i := 1; i < n; i++ {
		phi[sa[i]] = int32(sa[i-1])
	}

	plcp := make([]int32, n)
	l := int32(0)

	for p := 0; p < n; p++ {
		if phi[p] < 0 {
			plcp[p] = 0
			l = 0
			continue
		}

		q := int(phi[p])

		for p+int(l) < n && q+int(l) < n && data[p+int(l)] == data[q+int(l)] {
			l++
		}

		plcp[p] = l

		if l > 0 {
			l--
		}
	}

	for i := 0; i < n; i++ {
		if i == 0 {
			lcp.Set(i, 0)
		} else {
			lcp.Set(i, uint64(plcp[sa[i]]))
		}
	}
}

// Len returns the length of the indexed text, sentinel included.
func (this *Index) Len() int {
	return this.n
}

// SA returns the suffix array: SA[i] is the starting position of the
// i-th suffix in lexicographic order.
func (this *Index) SA() *intvector.Vector {
	return this.sa
}

// ISA returns the inverse suffix array: ISA[SA[i]] = i.
func (this *Index) ISA() *intvector.Vector {
	return this.isa
}

// LCP returns the LCP array: LCP[i] is the length of the longest
// common prefix of the suffixes at SA[i-1] and SA[i] (LCP[0] = 0).
func (this *Index) LCP() *intvector.Vector {
	return this.lcp
}
