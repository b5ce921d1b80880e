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

package bitio

import (
	"github.com/pkg/errors"
)

// BitSource reads bits written by a BitSink, MSB first.
//
// The whole compressed stream is read into memory up front (the core
// is an offline, full-text algorithm, see the module's non-goals on
// streaming), so the exact payload length in bits can be computed
// once from the trailer instead of being tracked incrementally.
type BitSource struct {
	data      []byte
	totalBits uint64 // payload bits only, trailer excluded
	bitPos    uint64 // next bit to read, MSB-first index into data
}

// NewBitSource wraps a byte slice produced by BitSink.Close.
func NewBitSource(data []byte) (*BitSource, error) {
	if len(data) == 0 {
		return &BitSource{}, nil
	}

	n := len(data)
	trailer := uint64(data[n-1] & 0x07)

	var totalBits uint64

	if trailer <= 5 {
		// The last byte doubles as the final (possibly partial) data
		// byte and the trailer field.
		if n < 1 {
			return nil, errors.New("bitio: truncated stream")
		}
		totalBits = uint64(n-1)*8 + trailer
	} else {
		// trailer is 6 or 7: the last byte is a dedicated trailer byte,
		// the true final data byte is the one before it.
		if n < 2 {
			return nil, errors.New("bitio: truncated stream")
		}
		totalBits = uint64(n-2)*8 + trailer
	}

	return &BitSource{data: data, totalBits: totalBits}, nil
}

// EOF reports whether every payload bit has been consumed.
func (this *BitSource) EOF() bool {
	return this.bitPos >= this.totalBits
}

// BitsRead returns how many payload bits have been consumed so far.
func (this *BitSource) BitsRead() uint64 {
	return this.bitPos
}

// ReadBit reads a single bit. Panics if the payload is exhausted.
func (this *BitSource) ReadBit() int {
	if this.EOF() {
		panic(errors.New("bitio: read past end of stream"))
	}

	byteIdx := this.bitPos >> 3
	bitIdx := 7 - (this.bitPos & 7)
	this.bitPos++
	return int((this.data[byteIdx] >> bitIdx) & 1)
}

// ReadInt reads 'bits' bits (in [0,64]) MSB-first and returns them as
// the low bits of the result. Panics if the payload is exhausted.
func (this *BitSource) ReadInt(bits uint) uint64 {
	if bits > 64 {
		panic(errors.Errorf("bitio: invalid bit count %d (must be in [0..64])", bits))
	}

	if this.bitPos+uint64(bits) > this.totalBits {
		panic(errors.New("bitio: read past end of stream"))
	}

	var v uint64

	for i := uint(0); i < bits; i++ {
		v = (v << 1) | uint64(this.ReadBit())
	}

	return v
}
