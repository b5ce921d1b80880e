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

// Package lzss holds the shared vocabulary every factor-based
// compressor in this module builds on: a Factor, the FactorBuffer that
// collects and normalizes them, and the bit-stream Coder that turns a
// flattened buffer plus the original text into a compressed stream and
// back. lcpcomp and lzsw both produce lzss.Factor values; only their
// strategy for finding them differs.
package lzss

// Factor is a back-reference: the len bytes starting at Pos in the
// text are identical to the len bytes starting at Src. Src < Pos is
// an invariant enforced by every producer in this module; it is what
// makes Flatten a DAG traversal rather than a general graph problem.
type Factor struct {
	Pos int
	Src int
	Len int
}
