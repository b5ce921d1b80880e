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

// Package tdc defines the top level interfaces shared by every
// compressor family in this module: the LCP-driven factorizer, the
// LZSS sliding window variant, LZ78 and the LFS grammar compressor.
//
// Concrete implementations live in sub-packages (lcpcomp, lzsw, lz78,
// lfs, rle); this package only carries the seam every one of them is
// plugged into, plus the event/progress notification mechanism they
// all report through.
package tdc

const (
	ERR_MISSING_PARAM     = 1
	ERR_INVALID_ALGORITHM = 2
	ERR_CREATE_COMPRESSOR = 3
	ERR_IO                = 4
	ERR_FORMAT            = 5
	ERR_CHECKSUM          = 6
	ERR_UNKNOWN           = 127
)

// Compressor turns a text into a compressed byte stream.
type Compressor interface {
	// Compress factorizes and encodes text, returning the compressed bytes.
	Compress(text []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's output.
type Decompressor interface {
	// Decompress decodes data and replays it into the original text.
	Decompress(data []byte) ([]byte, error)
}

// CompressorAndDecompressor is implemented by algorithms that are
// symmetric, i.e. one type handles both directions.
type CompressorAndDecompressor interface {
	Compressor
	Decompressor
}
