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

package lcpcomp

import (
	"bytes"

	"github.com/pkg/errors"

	tdc "github.com/tudocomp-go/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/lzss"
	"github.com/tudocomp-go/lcpcomp/textindex"
)

// Coder is the seam a Compressor encodes factors through. lzss.Coder
// satisfies it; registry.Registry resolves algorithm strings to other
// implementations without lcpcomp needing to know about them.
type Coder interface {
	Encode(text []byte, fb *lzss.FactorBuffer) []byte
	Decode(data []byte) ([]byte, error)
}

// InvariantError marks an internal consistency failure (e.g. the heap
// or marked-bitvector bookkeeping disagreeing with itself). It is
// never expected to occur for well-formed input; a production build
// should never observe one.
type InvariantError struct {
	Msg string
}

func (this *InvariantError) Error() string {
	return "lcpcomp: invariant violation: " + this.Msg
}

// Options configures a Compressor/Decompressor pair.
type Options struct {
	// Threshold is the minimum factor length. Zero selects DefaultThreshold.
	Threshold uint
	// Flatten enables the FactorBuffer.Flatten pass. NewCompressor uses
	// it as given, except that a zero-value Options{} as a whole is
	// replaced by DefaultOptions(), which enables it.
	Flatten bool
	// Coder selects the bit-encoding variant. Nil selects lzss.NewCoder().
	Coder Coder
	// Provider builds the text index. Nil selects textindex.SAISProvider{}.
	Provider textindex.Provider
}

// DefaultOptions returns the Options NewCompressor uses when given a
// zero-value Options{}: threshold 5, flatten enabled, the bidirectional
// LZSS coder, and the SA-IS provider.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Flatten:   true,
		Coder:     lzss.NewCoder(),
		Provider:  textindex.SAISProvider{},
	}
}

// Compressor implements tdc.CompressorAndDecompressor using the
// LCP-driven factorizer.
type Compressor struct {
	threshold uint
	flatten   bool
	coder     Coder
	provider  textindex.Provider
	listeners []tdc.Listener
}

// NewCompressor validates opts and builds a Compressor. A zero-value
// Options{} is replaced by DefaultOptions(). Otherwise Threshold 0
// selects DefaultThreshold, a nil Coder or Provider selects the default
// one, and Flatten is used as given; pass DefaultOptions() with fields
// changed to be unambiguous.
func NewCompressor(opts Options) (*Compressor, error) {
	if opts.Threshold == 0 && !opts.Flatten && opts.Coder == nil && opts.Provider == nil {
		opts = DefaultOptions()
	}

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	if threshold < MinThreshold {
		return nil, errors.Errorf("lcpcomp: threshold %d is below the minimum of %d", threshold, MinThreshold)
	}

	coder := opts.Coder
	if coder == nil {
		coder = lzss.NewCoder()
	}

	provider := opts.Provider
	if provider == nil {
		provider = textindex.SAISProvider{}
	}

	return &Compressor{
		threshold: threshold,
		flatten:   opts.Flatten,
		coder:     coder,
		provider:  provider,
	}, nil
}

// AddListener registers a Listener to be notified at each phase
// boundary (PhaseConstructTextDS, PhaseFactorize, PhaseSortFactors,
// PhaseFlattenFactors, PhaseEncodeFactors / PhaseDecodeFactors).
func (this *Compressor) AddListener(l tdc.Listener) {
	this.listeners = append(this.listeners, l)
}

// Compress factorizes text and encodes the result as a bit stream.
// text must not contain byte 0: that value is reserved for the
// sentinel textindex.Build requires.
func (this *Compressor) Compress(text []byte) ([]byte, error) {
	if bytes.IndexByte(text, 0) >= 0 {
		return nil, errors.New("lcpcomp: input must not contain byte 0x00, it is reserved for the sentinel")
	}

	padded := textindex.Sentinel(text)

	var idx *textindex.Index

	if _, err := tdc.WrapPhase(this.listeners, tdc.PhaseConstructTextDS, func() (int64, error) {
		var e error
		idx, e = this.provider.Build(padded)
		return int64(len(padded)), e
	}); err != nil {
		return nil, errors.Wrap(err, "lcpcomp: building text index")
	}

	fz, err := NewFactorizer(this.threshold)
	if err != nil {
		return nil, err
	}

	var fb *lzss.FactorBuffer

	if _, err := tdc.WrapPhase(this.listeners, tdc.PhaseFactorize, func() (int64, error) {
		fb = fz.Factorize(idx)
		return int64(fb.Len()), nil
	}); err != nil {
		return nil, err
	}

	if _, err := tdc.WrapPhase(this.listeners, tdc.PhaseSortFactors, func() (int64, error) {
		fb.Sort()
		return int64(fb.Len()), nil
	}); err != nil {
		return nil, err
	}

	if this.flatten {
		if _, err := tdc.WrapPhase(this.listeners, tdc.PhaseFlattenFactors, func() (int64, error) {
			fb.Flatten()
			return int64(fb.Len()), nil
		}); err != nil {
			return nil, err
		}
	}

	var out []byte

	if _, err := tdc.WrapPhase(this.listeners, tdc.PhaseEncodeFactors, func() (int64, error) {
		out = this.coder.Encode(padded, fb)
		return int64(len(out)), nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// Decompress reverses Compress, stripping the trailing sentinel byte
// before returning the original text.
func (this *Compressor) Decompress(data []byte) ([]byte, error) {
	var out []byte

	if _, err := tdc.WrapPhase(this.listeners, tdc.PhaseDecodeFactors, func() (int64, error) {
		var e error
		out, e = this.coder.Decode(data)
		return int64(len(out)), e
	}); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}

	if out[len(out)-1] != 0 {
		return nil, &lzss.FormatError{Msg: "decoded stream does not end with the sentinel byte"}
	}

	return out[:len(out)-1], nil
}
