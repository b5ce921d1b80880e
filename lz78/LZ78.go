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

// Package lz78 implements the classic Lempel-Ziv 78 dictionary
// compressor: a trie of previously-seen phrases, each referenced by a
// growing-width binary index.
package lz78

import (
	"math/bits"

	tdc "github.com/tudocomp-go/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/bitio"
)

// rootID is the phrase ID for the empty phrase every trie walk starts
// from.
const rootID = 0

type trieNode struct {
	children map[byte]int
}

// bitsFor returns the number of bits needed to write any ID in
// [0, dictSize), i.e. ceil(log2(dictSize)), with a floor of 1 bit.
func bitsFor(dictSize int) uint {
	if dictSize <= 1 {
		return 1
	}

	return uint(bits.Len(uint(dictSize - 1)))
}

// Compressor implements tdc.CompressorAndDecompressor with the LZ78 algorithm.
type Compressor struct{}

// NewCompressor creates an LZ78 Compressor. It takes no parameters:
// LZ78's dictionary has no tunable window or threshold.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// Each dictionary entry in the bit stream is (phraseID, hasLiteral,
// [literal byte]): hasLiteral is 0 only for the single entry, if any,
// that flushes a phrase matched all the way to the end of text with
// no trailing byte to extend it with.
func (this *Compressor) Compress(text []byte) ([]byte, error) {
	sink := bitio.NewBitSink()

	nodes := []trieNode{{children: map[byte]int{}}} // index 0 is the root
	cur := rootID
	p := 0

	for p < len(text) {
		b := text[p]
		p++

		if child, ok := nodes[cur].children[b]; ok {
			cur = child
			continue
		}

		width := bitsFor(len(nodes))
		sink.WriteInt(uint64(cur), width)
		sink.WriteBit(1)
		sink.WriteInt(uint64(b), 8)

		nodes[cur].children[b] = len(nodes)
		nodes = append(nodes, trieNode{children: map[byte]int{}})
		cur = rootID
	}

	if cur != rootID {
		width := bitsFor(len(nodes))
		sink.WriteInt(uint64(cur), width)
		sink.WriteBit(0)
	}

	sink.Close()
	return sink.Bytes(), nil
}

// Decompress reverses Compress, rebuilding the same phrase table
// incrementally from the bit stream.
func (this *Compressor) Decompress(data []byte) ([]byte, error) {
	src, err := bitio.NewBitSource(data)
	if err != nil {
		return nil, err
	}

	phrases := [][]byte{{}} // index 0 is the empty phrase
	var out []byte

	for !src.EOF() {
		width := bitsFor(len(phrases))
		id := int(src.ReadInt(width))
		hasLiteral := src.ReadBit()

		phrase := append(append([]byte{}, phrases[id]...))

		if hasLiteral == 0 {
			out = append(out, phrase...)
			break
		}

		b := byte(src.ReadInt(8))
		phrase = append(phrase, b)
		out = append(out, phrase...)
		phrases = append(phrases, phrase)
	}

	return out, nil
}

var _ tdc.CompressorAndDecompressor = (*Compressor)(nil)
