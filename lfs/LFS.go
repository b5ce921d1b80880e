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

// Package lfs implements a grammar-based "longest first substitution"
// compressor: it computes a set of rules (non-terminal -> substring)
// and rewrites the text into an interleaving of literals and
// non-terminal references. The rule-computation step is pluggable
// through RuleStrategy; LCPStrategy, the only implementation carried
// here, delegates it to package lcpcomp's own factorizer, turning
// each (sorted, flattened) factor directly into one grammar rule.
package lfs

import (
	"github.com/pkg/errors"

	tdc "github.com/tudocomp-go/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/bitio"
	"github.com/tudocomp-go/lcpcomp/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/lzss"
	"github.com/tudocomp-go/lcpcomp/textindex"
)

// RuleStrategy computes the grammar a Compressor rewrites text
// against. It returns a sorted, flattened FactorBuffer: each Factor
// is one rule, Pos marking where in text the rule is substituted and
// [Src, Src+Len) giving the rule's right-hand side.
type RuleStrategy interface {
	ComputeRules(text []byte) (*lzss.FactorBuffer, error)
}

// LCPStrategy computes rules by running lcpcomp.Factorizer over text,
// exactly as package lcpcomp does for its own compressed output. A
// suffix-tree-based strategy mirroring tudocomp's STLFSCompressor was
// considered and rejected; see the module's design notes.
type LCPStrategy struct {
	factorizer *lcpcomp.Factorizer
	provider   textindex.Provider
}

// NewLCPStrategy creates an LCPStrategy with the given minimum rule length.
func NewLCPStrategy(threshold uint) (*LCPStrategy, error) {
	fz, err := lcpcomp.NewFactorizer(threshold)
	if err != nil {
		return nil, err
	}

	return &LCPStrategy{factorizer: fz, provider: textindex.SAISProvider{}}, nil
}

// ComputeRules implements RuleStrategy.
func (this *LCPStrategy) ComputeRules(text []byte) (*lzss.FactorBuffer, error) {
	padded := textindex.Sentinel(text)

	idx, err := this.provider.Build(padded)
	if err != nil {
		return nil, errors.Wrap(err, "lfs: building text index")
	}

	fb := this.factorizer.Factorize(idx)
	fb.Sort()
	fb.Flatten()

	return fb, nil
}

// Compressor implements tdc.CompressorAndDecompressor by rewriting
// text against a RuleStrategy's grammar.
type Compressor struct {
	strategy  RuleStrategy
	listeners []tdc.Listener
}

// NewCompressor creates a Compressor using strategy to compute rules.
func NewCompressor(strategy RuleStrategy) (*Compressor, error) {
	if strategy == nil {
		return nil, errors.New("lfs: a RuleStrategy is required")
	}

	return &Compressor{strategy: strategy}, nil
}

// AddListener registers a Listener. Compress notifies it at the start
// and end of PhaseFactorize (the rule computation, count 0); no other
// phase is reported.
func (this *Compressor) AddListener(l tdc.Listener) {
	this.listeners = append(this.listeners, l)
}

// Compress computes a grammar over text and serializes it: a rule
// table (count, then each rule's Src and Len, Elias-gamma coded) is
// followed by the body, a literal-bit+byte or reference-bit+ruleID
// per position, exactly mirroring lzss.Coder's own literal/factor
// alternation.
func (this *Compressor) Compress(text []byte) ([]byte, error) {
	var fb *lzss.FactorBuffer

	if _, err := tdc.WrapPhase(this.listeners, tdc.PhaseFactorize, func() (int64, error) {
		var e error
		fb, e = this.strategy.ComputeRules(text)
		return 0, e
	}); err != nil {
		return nil, errors.Wrap(err, "lfs: computing rules")
	}

	sink := bitio.NewBitSink()
	bitio.WriteEliasGamma(sink, uint64(fb.Len())+1)

	for i := 0; i < fb.Len(); i++ {
		r := fb.At(i)
		bitio.WriteEliasGamma(sink, uint64(r.Src)+1)
		bitio.WriteEliasGamma(sink, uint64(r.Len))
	}

	next := 0
	p := 0

	for p < len(text) {
		if next < fb.Len() && fb.At(next).Pos == p {
			sink.WriteBit(1)
			bitio.WriteEliasGamma(sink, uint64(next)+1)
			p += fb.At(next).Len
			next++
			continue
		}

		sink.WriteBit(0)
		sink.WriteInt(uint64(text[p]), 8)
		p++
	}

	sink.Close()
	return sink.Bytes(), nil
}

// Decompress reverses Compress.
func (this *Compressor) Decompress(data []byte) ([]byte, error) {
	src, err := bitio.NewBitSource(data)
	if err != nil {
		return nil, err
	}

	if src.EOF() {
		return []byte{}, nil
	}

	ruleCount := int(bitio.ReadEliasGamma(src)) - 1

	type rule struct{ src, len int }
	rules := make([]rule, ruleCount)

	for i := range rules {
		rules[i].src = int(bitio.ReadEliasGamma(src)) - 1
		rules[i].len = int(bitio.ReadEliasGamma(src))
	}

	out := make([]byte, 0, len(data)*2)

	for !src.EOF() {
		bit := src.ReadBit()

		if bit == 0 {
			out = append(out, byte(src.ReadInt(8)))
			continue
		}

		ruleID := int(bitio.ReadEliasGamma(src)) - 1

		if ruleID < 0 || ruleID >= len(rules) {
			return nil, errors.Errorf("lfs: rule id %d out of range [0,%d)", ruleID, len(rules))
		}

		r := rules[ruleID]

		if r.src < 0 || r.src >= len(out) {
			return nil, errors.Errorf("lfs: rule %d references outside the output produced so far", ruleID)
		}

		for k := 0; k < r.len; k++ {
			out = append(out, out[r.src+k])
		}
	}

	return out, nil
}

var _ tdc.CompressorAndDecompressor = (*Compressor)(nil)
