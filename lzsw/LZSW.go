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

// Package lzsw implements a sliding-window LZSS factorizer: an O(n*w)
// counterpart of the LCP-driven core that looks for matches only
// within the last window bytes instead of over the whole text. It
// shares lzss.Factor, lzss.FactorBuffer and lzss.Coder with the core,
// demonstrating that those types are not private to package lcpcomp.
package lzsw

import (
	"github.com/pkg/errors"

	tdc "github.com/tudocomp-go/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/lzss"
)

// DefaultWindow is the window size NewCompressor uses for a zero
// Options.Window.
const DefaultWindow = 4096

// DefaultThreshold is the minimum factor length NewCompressor uses
// for a zero Options.Threshold.
const DefaultThreshold = 3

// Factorize slides a window of the last `window` bytes over text and,
// at every position, looks for the longest match of the remaining
// text's prefix against that window, extending the match past the
// window's end into the already-produced lookahead when the matched
// run is itself repetitive (self-overlapping, RLE-like matches). A
// match shorter than threshold is emitted as a literal run instead.
func Factorize(text []byte, window, threshold int) *lzss.FactorBuffer {
	fb := lzss.NewFactorBuffer()
	n := len(text)

	p := 0
	for p < n {
		winStart := p - window
		if winStart < 0 {
			winStart = 0
		}

		bestLen, bestSrc := longestMatch(text, p, winStart)

		if bestLen >= threshold {
			fb.Push(lzss.Factor{Pos: p, Src: bestSrc, Len: bestLen})
			p += bestLen
		} else {
			p++
		}
	}

	return fb
}

// longestMatch finds the longest run starting at p that also appears
// starting at some position in [winStart, p). The match may run past
// p (it reads text[p+k] for k beyond p's own first byte), which is
// legal and correct because the comparison only ever reads bytes
// already produced by a real decoder: a reference whose length
// carries it past the current output reproduces a periodic run byte
// by byte, exactly as lzss.Coder.Decode does.
func longestMatch(text []byte, p, winStart int) (length, src int) {
	n := len(text)

	for cand := winStart; cand < p; cand++ {
		l := 0

		for p+l < n && text[cand+l] == text[p+l] {
			l++
		}

		if l > length {
			length = l
			src = cand
		}
	}

	return length, src
}

// Coder is the seam a Compressor encodes factors through. It mirrors
// lcpcomp.Coder: lzss.Coder satisfies both.
type Coder interface {
	Encode(text []byte, fb *lzss.FactorBuffer) []byte
	Decode(data []byte) ([]byte, error)
}

// Options configures a Compressor.
type Options struct {
	// Window is the number of trailing bytes eligible as a match
	// source. Zero selects DefaultWindow.
	Window int
	// Threshold is the minimum factor length. Zero selects DefaultThreshold.
	Threshold int
	// Coder selects the bit-encoding variant. Nil selects lzss.NewCoder().
	Coder Coder
}

// Compressor implements tdc.CompressorAndDecompressor using Factorize.
type Compressor struct {
	window    int
	threshold int
	coder     Coder
}

// NewCompressor validates opts and builds a Compressor.
func NewCompressor(opts Options) (*Compressor, error) {
	window := opts.Window
	if window == 0 {
		window = DefaultWindow
	}

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	if window <= 0 {
		return nil, errors.Errorf("lzsw: window %d must be positive", window)
	}

	if threshold < 1 {
		return nil, errors.Errorf("lzsw: threshold %d must be at least 1", threshold)
	}

	coder := opts.Coder
	if coder == nil {
		coder = lzss.NewCoder()
	}

	return &Compressor{window: window, threshold: threshold, coder: coder}, nil
}

// Compress factorizes text against a sliding window and encodes the
// result. Unlike lcpcomp, no sentinel byte is needed: no suffix array
// is built, and the match search stops at the end of text.
func (this *Compressor) Compress(text []byte) ([]byte, error) {
	fb := Factorize(text, this.window, this.threshold)
	fb.Sort()
	return this.coder.Encode(text, fb), nil
}

// Decompress reverses Compress.
func (this *Compressor) Decompress(data []byte) ([]byte, error) {
	return this.coder.Decode(data)
}

var _ tdc.CompressorAndDecompressor = (*Compressor)(nil)
