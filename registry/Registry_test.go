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

package registry

import (
	"bytes"
	"testing"

	tdc "github.com/tudocomp-go/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/algostr"
	"github.com/tudocomp-go/lcpcomp/lzss"
)

func TestBindPositionalAndKeyword(t *testing.T) {
	sig := []Param{{Name: "a", Required: true}, {Name: "b"}}
	v, err := algostr.Parse("f(1, b=2)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	b, err := Bind(sig, v.Args)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if id, _ := b.Ident("a"); id != "1" {
		t.Fatalf("a = %q, want 1", id)
	}

	if id, _ := b.Ident("b"); id != "2" {
		t.Fatalf("b = %q, want 2", id)
	}
}

func TestBindAppliesDefault(t *testing.T) {
	sig := []Param{{Name: "threshold", Default: &algostr.Value{Ident: "5"}}}

	b, err := Bind(sig, nil)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	n, ok, err := b.Uint("threshold")
	if err != nil || !ok || n != 5 {
		t.Fatalf("threshold = %d, %v, %v; want 5, true, nil", n, ok, err)
	}
}

func TestBindRejectsMissingRequired(t *testing.T) {
	sig := []Param{{Name: "a", Required: true}}

	if _, err := Bind(sig, nil); err == nil {
		t.Fatalf("expected an error for a missing required argument")
	}
}

func TestBindRejectsUnknownKeyword(t *testing.T) {
	sig := []Param{{Name: "a"}}
	v, _ := algostr.Parse("f(z=1)")

	if _, err := Bind(sig, v.Args); err == nil {
		t.Fatalf("expected an error for an unknown keyword argument")
	}
}

func TestBindRejectsDoubleBinding(t *testing.T) {
	sig := []Param{{Name: "a"}}
	v, _ := algostr.Parse("f(a=1, a=2)")

	if _, err := Bind(sig, v.Args); err == nil {
		t.Fatalf("expected an error for a keyword argument bound twice")
	}
}

func TestResolveStringConstructsCoder(t *testing.T) {
	r := Default()

	out, err := r.ResolveString("coder", "lzss")
	if err != nil {
		t.Fatalf("ResolveString: %v", err)
	}

	if _, ok := out.(*lzss.Coder); !ok {
		t.Fatalf("expected a *lzss.Coder, got %T", out)
	}
}

func TestResolveStringConstructsCompressor(t *testing.T) {
	r := Default()

	out, err := r.ResolveString("compressor", "lcpcomp(threshold=3, flatten=true)")
	if err != nil {
		t.Fatalf("ResolveString: %v", err)
	}

	c, ok := out.(tdc.CompressorAndDecompressor)
	if !ok {
		t.Fatalf("resolved value does not implement CompressorAndDecompressor: %T", out)
	}

	text := []byte("abababababababab")
	encoded, err := c.Compress(text)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	decoded, err := c.Decompress(encoded)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	if !bytes.Equal(decoded, text) {
		t.Fatalf("round trip mismatch: got %q, want %q", decoded, text)
	}
}

func TestResolveStringUnknownTypeAndName(t *testing.T) {
	r := Default()

	if _, err := r.ResolveString("nosuchtype", "x"); err == nil {
		t.Fatalf("expected an error for an unknown type")
	}

	if _, err := r.ResolveString("coder", "nosuchcoder"); err == nil {
		t.Fatalf("expected an error for an unknown name")
	}
}

func TestResolveStringLiteral(t *testing.T) {
	r := Default()

	out, err := r.ResolveString("anything", `"a literal value"`)
	if err != nil {
		t.Fatalf("ResolveString: %v", err)
	}

	if out.(string) != "a literal value" {
		t.Fatalf("got %v, want the literal string", out)
	}
}
