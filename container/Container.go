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

// Package container frames a compressed payload with the fixed header
// this module's CLI writes to disk: a magic number, a format version,
// an algorithm-family tag, and a checksum of the decompressed
// payload. It is a single-shot, in-memory counterpart of the
// teacher's own block/job-oriented io.CompressedStream: this module's
// non-goals rule out concurrent block processing, so the framing here
// only ever wraps one call to a Compressor/Decompressor.
package container

import (
	"encoding/binary"
	"fmt"

	"github.com/tudocomp-go/lcpcomp/hash"
)

// Magic identifies this module's container format.
var Magic = [4]byte{'L', 'C', 'P', 'C'}

// Version is the current container format version.
const Version = 1

// Family identifies which compressor family produced a payload, so a
// decoder can be picked without the caller having to remember it.
type Family byte

const (
	FamilyLCPComp Family = iota
	FamilyLZSW
	FamilyLZ78
	FamilyRLE
	FamilyLFS
)

func (this Family) String() string {
	switch this {
	case FamilyLCPComp:
		return "lcpcomp"
	case FamilyLZSW:
		return "lzsw"
	case FamilyLZ78:
		return "lz78"
	case FamilyRLE:
		return "rle"
	case FamilyLFS:
		return "lfs"
	default:
		return "unknown"
	}
}

// headerLen is len(Magic) + 1 version byte + 1 family byte + 8 checksum bytes.
const headerLen = 4 + 1 + 1 + 8

// FormatError reports a malformed container, such as a bad magic or an
// unsupported version. A checksum mismatch is reported by Verify as a
// *ChecksumError instead.
type FormatError struct {
	Msg string
}

func (this *FormatError) Error() string {
	return "container: " + this.Msg
}

// ChecksumError reports that a container's stored checksum does not
// match the checksum of the payload it decompressed to.
type ChecksumError struct {
	Want, Got uint64
}

func (this *ChecksumError) Error() string {
	return fmt.Sprintf("container: checksum mismatch: want %x, got %x", this.Want, this.Got)
}

func checksum(payload []byte) uint64 {
	h, _ := hash.NewXXHash64(0)
	return h.Hash(payload)
}

// Wrap frames compressed (the output of a Compressor.Compress call)
// with the container header. decompressedPayload is the pre-compression
// text the checksum is computed over, so Verify can detect a decoder
// that silently replayed the wrong bytes.
func Wrap(family Family, decompressedPayload, compressed []byte) []byte {
	out := make([]byte, 0, headerLen+len(compressed))
	out = append(out, Magic[:]...)
	out = append(out, byte(Version))
	out = append(out, byte(family))

	var sumBuf [8]byte
	binary.BigEndian.PutUint64(sumBuf[:], checksum(decompressedPayload))
	out = append(out, sumBuf[:]...)

	return append(out, compressed...)
}

// Header is the parsed fixed-size prefix of a container.
type Header struct {
	Family   Family
	Checksum uint64
}

// Split parses data's header and returns it alongside the remaining
// compressed payload. It does not verify the checksum: that requires
// decompressing the payload first, which is Verify's job.
func Split(data []byte) (Header, []byte, error) {
	if len(data) < headerLen {
		return Header{}, nil, &FormatError{Msg: "input shorter than the container header"}
	}

	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return Header{}, nil, &FormatError{Msg: "bad magic number"}
	}

	if data[4] != Version {
		return Header{}, nil, &FormatError{Msg: fmt.Sprintf("unsupported container version %d", data[4])}
	}

	h := Header{
		Family:   Family(data[5]),
		Checksum: binary.BigEndian.Uint64(data[6:14]),
	}

	return h, data[headerLen:], nil
}

// Verify checks decompressedPayload against hdr.Checksum, returning a
// *ChecksumError if they disagree.
func Verify(hdr Header, decompressedPayload []byte) error {
	got := checksum(decompressedPayload)

	if got != hdr.Checksum {
		return &ChecksumError{Want: hdr.Checksum, Got: got}
	}

	return nil
}
