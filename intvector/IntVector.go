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

// Package intvector implements a packed array of unsigned integers of
// a fixed bit width in [1,64], used wherever the module would
// otherwise waste memory on a []int32/[]int64 holding small values:
// the suffix array, inverse suffix array and LCP array produced by
// textindex and the heap/pos back-mapping arrays in package heap.
package intvector

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Vector is a packed array of n unsigned integers, each w bits wide.
type Vector struct {
	bitWidth uint
	length   int
	words    []uint64
}

// New creates a Vector of the given length with every slot initialized
// to zero. bitWidth must be in [1,64].
func New(length int, bitWidth uint) (*Vector, error) {
	if bitWidth == 0 || bitWidth > 64 {
		return nil, errors.Errorf("intvector: invalid bit width %d (must be in [1..64])", bitWidth)
	}

	if length < 0 {
		return nil, errors.Errorf("intvector: invalid length %d", length)
	}

	totalBits := uint64(length) * uint64(bitWidth)
	nwords := (totalBits + 63) / 64

	return &Vector{bitWidth: bitWidth, length: length, words: make([]uint64, nwords)}, nil
}

// WidthFor returns the minimum bit width that can hold every value in
// [0, maxValue], i.e. the width used for SA/ISA/LCP vectors sized to
// the text length per the text index's own requirement.
func WidthFor(maxValue uint64) uint {
	if maxValue == 0 {
		return 1
	}

	return uint(bits.Len64(maxValue))
}

// Len returns the number of slots in the vector.
func (this *Vector) Len() int {
	return this.length
}

// BitWidth returns the per-slot bit width.
func (this *Vector) BitWidth() uint {
	return this.bitWidth
}

// Get returns the value stored at index i.
func (this *Vector) Get(i int) uint64 {
	if i < 0 || i >= this.length {
		panic(errors.Errorf("intvector: index %d out of range [0,%d)", i, this.length))
	}

	bitStart := uint64(i) * uint64(this.bitWidth)
	wordIdx := bitStart / 64
	bitOff := bitStart % 64

	lo := this.words[wordIdx] >> bitOff

	if bitOff+uint64(this.bitWidth) <= 64 {
		if this.bitWidth == 64 {
			return lo
		}
		return lo & ((uint64(1) << this.bitWidth) - 1)
	}

	// Spans into the next word.
	remaining := bitOff + uint64(this.bitWidth) - 64
	hi := this.words[wordIdx+1] & ((uint64(1) << remaining) - 1)
	return lo | (hi << (64 - bitOff))
}

// Set stores value (truncated to the low bitWidth bits) at index i.
func (this *Vector) Set(i int, value uint64) {
	if i < 0 || i >= this.length {
		panic(errors.Errorf("intvector: index %d out of range [0,%d)", i, this.length))
	}

	if this.bitWidth < 64 {
		value &= (uint64(1) << this.bitWidth) - 1
	}

	bitStart := uint64(i) * uint64(this.bitWidth)
	wordIdx := bitStart / 64
	bitOff := bitStart % 64

	if bitOff+uint64(this.bitWidth) <= 64 {
		mask := uint64(0xFFFFFFFFFFFFFFFF)
		if this.bitWidth < 64 {
			mask = ((uint64(1) << this.bitWidth) - 1) << bitOff
		} else if bitOff != 0 {
			mask = mask << bitOff
		}
		this.words[wordIdx] = (this.words[wordIdx] &^ mask) | (value << bitOff)
		return
	}

	// Spans into the next word.
	low := 64 - bitOff
	this.words[wordIdx] = (this.words[wordIdx] &^ (^uint64(0) << bitOff)) | (value << bitOff)

	remaining := uint64(this.bitWidth) - low
	hiMask := (uint64(1) << remaining) - 1
	this.words[wordIdx+1] = (this.words[wordIdx+1] &^ hiMask) | (value >> low)
}

// Swap exchanges the values at indices i and j.
func (this *Vector) Swap(i, j int) {
	vi := this.Get(i)
	vj := this.Get(j)
	this.Set(i, vj)
	this.Set(j, vi)
}

// ToSlice materializes the vector as a plain []uint64, mainly for
// tests and debugging; production code should prefer Get/Set.
func (this *Vector) ToSlice() []uint64 {
	out := make([]uint64, this.length)
	for i := 0; i < this.length; i++ {
		out[i] = this.Get(i)
	}
	return out
}
