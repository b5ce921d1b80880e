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

// Package rle implements a byte-stream run-length transform: every run
// of length >= 2 of the same byte is replaced by two occurrences of
// the byte followed by the run length minus two, vbyte-coded. It is
// the simplest compressor family in this module.
package rle

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	tdc "github.com/tudocomp-go/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/bitio"
)

// minRun is the shortest run length worth encoding: a run of exactly
// one byte costs the same one byte either way, so only runs of two or
// more are ever rewritten.
const minRun = 2

// Encode reads all of r and writes its run-length transform to w.
func Encode(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "rle: reading input")
	}

	sink := bitio.NewBitSink()

	i := 0
	for i < len(data) {
		b := data[i]
		run := 1

		for i+run < len(data) && data[i+run] == b {
			run++
		}

		sink.WriteInt(uint64(b), 8)

		if run >= minRun {
			sink.WriteInt(uint64(b), 8)
			bitio.WriteVByte(sink, uint64(run-minRun))
		}

		i += run
	}

	sink.Close()

	if _, err := w.Write(sink.Bytes()); err != nil {
		return errors.Wrap(err, "rle: writing output")
	}

	return nil
}

// Decode reverses Encode, reading the transformed stream from r and
// writing the original bytes to w.
func Decode(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "rle: reading input")
	}

	if len(data) == 0 {
		return nil
	}

	src, err := bitio.NewBitSource(data)
	if err != nil {
		return errors.Wrap(err, "rle: parsing input")
	}

	var out []byte
	var prev byte
	havePrev := false

	for !src.EOF() {
		b := byte(src.ReadInt(8))
		out = append(out, b)

		if !havePrev || b != prev {
			// Not a run marker: b is a literal or the first byte of a run.
			prev, havePrev = b, true
			continue
		}

		// Second copy of the same byte: the run length follows.
		run := int(bitio.ReadVByte(src)) + minRun
		for k := 0; k < run-minRun; k++ {
			out = append(out, b)
		}
		havePrev = false
	}

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "rle: writing output")
	}

	return nil
}

// Compressor adapts Encode/Decode to tdc.CompressorAndDecompressor so
// it can be resolved through package registry under the "rle" name.
type Compressor struct{}

// Compress implements tdc.Compressor.
func (Compressor) Compress(text []byte) ([]byte, error) {
	var buf bytes.Buffer

	if err := Encode(&buf, bytes.NewReader(text)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress implements tdc.Decompressor.
func (Compressor) Decompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	if err := Decode(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

var _ tdc.CompressorAndDecompressor = Compressor{}
