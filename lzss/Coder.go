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

import (
	"fmt"

	"github.com/tudocomp-go/lcpcomp/bitio"
)

// FormatError is returned by Decode when the bit stream is truncated,
// declares a length above its own header's maximum, or references a
// position past the output produced so far.
type FormatError struct {
	Offset uint64
	Msg    string
}

func (this *FormatError) Error() string {
	return fmt.Sprintf("lzss: format error at bit offset %d: %s", this.Offset, this.Msg)
}

// directionBackward and directionForward are the two prefixes of the
// bidirectional reference scheme: a factor's Src is always < its Pos
// in this module (every producer enforces that invariant after
// Flatten), so only directionBackward is ever emitted by Coder. The
// forward prefix is kept so the wire format stays compatible with a
// hypothetical producer whose windowed matches could reference ahead
// of the cursor; it is parsed correctly even though nothing in this
// repository writes it.
const (
	directionBackward = 0
	directionForward  = 1
)

// Coder serializes a sorted, flattened FactorBuffer plus the text it
// was derived from into a bit stream, and reverses the process.
type Coder struct{}

// NewCoder creates the single bidirectional-capable LZSS coder.
func NewCoder() *Coder {
	return &Coder{}
}

func lengthRange(fb *FactorBuffer) (min, max uint64) {
	if fb.Len() == 0 {
		return 1, 1
	}

	f0 := fb.At(0)
	min, max = uint64(f0.Len), uint64(f0.Len)

	for i := 1; i < fb.Len(); i++ {
		l := uint64(fb.At(i).Len)

		if l < min {
			min = l
		}

		if l > max {
			max = l
		}
	}

	return min, max
}

// Encode walks text left to right, emitting a literal bit+byte at
// every position not covered by fb, and a factor bit+reference+length
// at every position where one of fb's (sorted) factors starts. An
// empty text produces an empty payload (just the BitSink trailer): no
// header is written since there is nothing for a decoder to read it
// for.
func (this *Coder) Encode(text []byte, fb *FactorBuffer) []byte {
	sink := bitio.NewBitSink()

	if len(text) == 0 {
		sink.Close()
		return sink.Bytes()
	}

	fb.Sort()
	minLen, maxLen := lengthRange(fb)
	bitio.WriteEliasDelta(sink, minLen)
	bitio.WriteEliasDelta(sink, maxLen)

	next := 0 // index into fb.factors of the next factor to consider
	p := 0

	for p < len(text) {
		if next < fb.Len() && fb.At(next).Pos == p {
			f := fb.At(next)
			next++

			sink.WriteBit(1)
			sink.WriteBit(directionBackward)
			bitio.WriteEliasDelta(sink, uint64(f.Pos-f.Src))
			bitio.WriteEliasDelta(sink, uint64(f.Len)-minLen+1)
			p += f.Len
			continue
		}

		sink.WriteBit(0)
		sink.WriteInt(uint64(text[p]), 8)
		p++
	}

	sink.Close()
	return sink.Bytes()
}

// Decode reverses Encode. It never needs to be told the original
// text's length: it reads until the BitSource reports EOF, growing
// the output buffer with literals and factor copies as it goes.
// Factor copies are done byte by byte so that a reference whose
// length runs past the current output length (the overlapping,
// RLE-like case) still reproduces every byte correctly.
func (this *Coder) Decode(data []byte) (out []byte, err error) {
	src, err := bitio.NewBitSource(data)
	if err != nil {
		return nil, err
	}

	if src.EOF() {
		return []byte{}, nil
	}

	// A truncated stream makes the BitSource panic mid-read; report it
	// as a FormatError at the offset reached.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, &FormatError{Offset: src.BitsRead(), Msg: fmt.Sprint("truncated stream: ", r)}
		}
	}()

	minLen := bitio.ReadEliasDelta(src)
	maxLen := bitio.ReadEliasDelta(src)
	out = make([]byte, 0, len(data)*2)

	for !src.EOF() {
		bit := src.ReadBit()

		if bit == 0 {
			b := byte(src.ReadInt(8))
			out = append(out, b)
			continue
		}

		dir := src.ReadBit()
		distance := bitio.ReadEliasDelta(src)
		lenCode := bitio.ReadEliasDelta(src)
		length := int(lenCode-1+minLen)

		if lenCode-1+minLen > maxLen {
			return nil, &FormatError{Offset: src.BitsRead(), Msg: "factor length outside the header's declared range"}
		}

		var srcPos int

		if dir == directionBackward {
			srcPos = len(out) - int(distance)
		} else {
			srcPos = len(out) + int(distance)
		}

		if srcPos < 0 || srcPos >= len(out) {
			return nil, &FormatError{Offset: src.BitsRead(), Msg: "reference points outside the output produced so far"}
		}

		for k := 0; k < length; k++ {
			out = append(out, out[srcPos+k])
		}
	}

	return out, nil
}
