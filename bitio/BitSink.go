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

// Package bitio provides bit-precise writers and readers over a byte
// stream, plus a handful of variable-length integer codecs built on
// top of them (unary, Elias-gamma, Elias-delta, Rice, ternary, vbyte).
//
// The wire format is deliberately simple: a BitSink buffers a single
// pending byte and a cursor into it; on Close it stores, in the low
// three bits of the last byte, how many payload bits the final data
// byte holds (a count of used bits, not of unused ones), putting that
// count in one extra byte when fewer than three bits are free, so a
// BitSource can tell exactly where the payload ends without an
// out-of-band length.
package bitio

import (
	"bytes"

	"github.com/pkg/errors"
)

const msb = 7

// BitSink accumulates bits into a byte buffer, MSB first.
type BitSink struct {
	buf    bytes.Buffer
	next   byte
	cursor int8 // index in [0,7] of the next unused bit in 'next', or -1 once flushed
	nbits  uint64
	closed bool
}

// NewBitSink creates an empty BitSink.
func NewBitSink() *BitSink {
	return &BitSink{cursor: msb}
}

func (this *BitSink) dirty() bool {
	return this.cursor != msb
}

func (this *BitSink) flushByte() {
	this.buf.WriteByte(this.next)
	this.next = 0
	this.cursor = msb
}

// WriteBit writes a single bit (0 or 1, taken from the lowest bit of b).
func (this *BitSink) WriteBit(b int) {
	if this.closed {
		panic(errors.New("bitio: write on closed BitSink"))
	}

	if b&1 != 0 {
		this.next |= 1 << uint(this.cursor)
	}

	this.cursor--
	this.nbits++

	if this.cursor < 0 {
		this.flushByte()
	}
}

// WriteInt writes the low 'bits' bits of value in MSB-first order.
// 'bits' must be in [0,64]; bits == 0 is a no-op.
func (this *BitSink) WriteInt(value uint64, bits uint) {
	if this.closed {
		panic(errors.New("bitio: write on closed BitSink"))
	}

	if bits > 64 {
		panic(errors.Errorf("bitio: invalid bit count %d (must be in [0..64])", bits))
	}

	bitsLeftInNext := uint(this.cursor + 1)

	if bits < bitsLeftInNext {
		// Few bits: go through the bit-by-bit path, it already masks correctly.
		for i := int(bits) - 1; i >= 0; i-- {
			this.WriteBit(int(value >> uint(i)))
		}
		return
	}

	// Mask to the requested width (masking by 64 is undefined, guard it).
	v := value
	if bits < 64 {
		v &= (uint64(1) << bits) - 1
	}

	remaining := bits - bitsLeftInNext
	this.next |= byte(v >> remaining)
	this.flushByte()
	this.nbits += uint64(bitsLeftInNext)

	if remaining < 64 {
		v &= (uint64(1) << remaining) - 1
	}

	// Full bytes, big endian.
	for remaining >= 8 {
		remaining -= 8
		this.buf.WriteByte(byte(v >> remaining))
		this.nbits += 8
	}

	if remaining > 0 {
		this.next = byte(v << (8 - remaining))
		this.cursor = msb - int8(remaining)
		this.nbits += uint64(remaining)
	}
}

// BitsWritten returns how many bits have been handed to the sink so far
// (not counting the trailer appended by Close).
func (this *BitSink) BitsWritten() uint64 {
	return this.nbits
}

// Close flushes the pending byte with the number of payload bits it
// holds (0-7, used bits rather than unused bits) in its low three
// bits, or in one extra byte when fewer than three bits are free.
// It is idempotent; Bytes can be called before or after.
func (this *BitSink) Close() {
	if this.closed {
		return
	}

	// used = number of real payload bits already sitting in 'next', in [0,7].
	// Its low-bit positions (0,1,2) are guaranteed zero while used <= 5, so
	// the trailer count can be OR'd in without disturbing payload bits.
	used := uint8(msb - this.cursor)

	if this.cursor >= 2 {
		this.next |= used
		this.flushByte()
	} else {
		// Fewer than 3 free bits: the payload already occupies positions
		// 0..2, so the trailer needs a byte of its own.
		this.flushByte()
		this.next = used
		this.flushByte()
	}

	this.closed = true
}

// Bytes returns the encoded stream. Close must have been called first.
func (this *BitSink) Bytes() []byte {
	return this.buf.Bytes()
}
