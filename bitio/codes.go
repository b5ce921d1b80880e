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
	"math/bits"

	"github.com/pkg/errors"
)

// WriteUnary writes v as v zero bits followed by a terminating one bit.
// v must be non-negative; there is no upper bound beyond memory.
func WriteUnary(sink *BitSink, v uint64) {
	for i := uint64(0); i < v; i++ {
		sink.WriteBit(0)
	}
	sink.WriteBit(1)
}

// ReadUnary reads a value written by WriteUnary.
func ReadUnary(src *BitSource) uint64 {
	var v uint64
	for src.ReadBit() == 0 {
		v++
	}
	return v
}

// WriteEliasGamma writes v (v >= 1) as unary(bitlen(v)-1) followed by the
// bitlen(v)-1 low bits of v.
func WriteEliasGamma(sink *BitSink, v uint64) {
	if v == 0 {
		panic(errors.New("bitio: elias-gamma requires v >= 1"))
	}

	nbits := bits.Len64(v)
	WriteUnary(sink, uint64(nbits-1))

	if nbits > 1 {
		sink.WriteInt(v, uint(nbits-1))
	}
}

// ReadEliasGamma reads a value written by WriteEliasGamma.
func ReadEliasGamma(src *BitSource) uint64 {
	nbits := ReadUnary(src)

	if nbits == 0 {
		return 1
	}

	low := src.ReadInt(uint(nbits))
	return (uint64(1) << nbits) | low
}

// WriteEliasDelta writes v (v >= 1) by Elias-gamma-coding bitlen(v), then
// appending the bitlen(v)-1 low bits of v.
func WriteEliasDelta(sink *BitSink, v uint64) {
	if v == 0 {
		panic(errors.New("bitio: elias-delta requires v >= 1"))
	}

	nbits := bits.Len64(v)
	WriteEliasGamma(sink, uint64(nbits))

	if nbits > 1 {
		sink.WriteInt(v, uint(nbits-1))
	}
}

// ReadEliasDelta reads a value written by WriteEliasDelta.
func ReadEliasDelta(src *BitSource) uint64 {
	nbits := ReadEliasGamma(src)

	if nbits == 1 {
		return 1
	}

	low := src.ReadInt(uint(nbits - 1))
	return (uint64(1) << (nbits - 1)) | low
}

// WriteRice writes v using Rice coding with parameter p: the quotient
// v>>p is unary coded, followed by the p low bits of v.
func WriteRice(sink *BitSink, v uint64, p uint) {
	if p > 63 {
		panic(errors.Errorf("bitio: invalid rice parameter %d", p))
	}

	WriteUnary(sink, v>>p)

	if p > 0 {
		sink.WriteInt(v, p)
	}
}

// ReadRice reads a value written by WriteRice with the same parameter p.
func ReadRice(src *BitSource, p uint) uint64 {
	q := ReadUnary(src)

	var low uint64
	if p > 0 {
		low = src.ReadInt(p)
	}

	return (q << p) | low
}

// WriteTernary writes a non-negative v in base-3 digits, most significant
// digit first, as 2-bit groups with a continuation flag: each group is
// (more_follows:1, digit:2... ) collapsed into the compact scheme used by
// tudocomp, where the stream is terminated by a final group whose
// continuation bit is 0.
//
// digit encoding per group: 2 bits hold the ternary digit (0,1,2); a
// leading continuation bit of 1 means another group follows.
func WriteTernary(sink *BitSink, v uint64) {
	var digits []uint64

	if v == 0 {
		digits = append(digits, 0)
	}

	for v > 0 {
		digits = append(digits, v%3)
		v /= 3
	}

	for i := len(digits) - 1; i >= 0; i-- {
		more := 0
		if i > 0 {
			more = 1
		}
		sink.WriteBit(more)
		sink.WriteInt(digits[i], 2)
	}
}

// ReadTernary reads a value written by WriteTernary.
func ReadTernary(src *BitSource) uint64 {
	var v uint64

	for {
		more := src.ReadBit()
		digit := src.ReadInt(2)
		v = v*3 + digit

		if more == 0 {
			break
		}
	}

	return v
}

// WriteVByte writes v in groups of 7 bits, least significant group
// first, with a continuation bit (1 = more groups follow) as the high
// bit of each output byte.
func WriteVByte(sink *BitSink, v uint64) {
	for {
		group := byte(v & 0x7f)
		v >>= 7

		if v != 0 {
			sink.WriteInt(uint64(group)|0x80, 8)
		} else {
			sink.WriteInt(uint64(group), 8)
			break
		}
	}
}

// ReadVByte reads a value written by WriteVByte.
func ReadVByte(src *BitSource) uint64 {
	var v uint64
	var shift uint

	for {
		b := src.ReadInt(8)
		v |= (b & 0x7f) << shift
		shift += 7

		if b&0x80 == 0 {
			break
		}
	}

	return v
}
