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
	"github.com/tudocomp-go/lcpcomp/lcpcomp"
	"github.com/tudocomp-go/lcpcomp/lfs"
	"github.com/tudocomp-go/lcpcomp/lz78"
	"github.com/tudocomp-go/lcpcomp/lzss"
	"github.com/tudocomp-go/lcpcomp/lzsw"
	"github.com/tudocomp-go/lcpcomp/rle"
	"github.com/tudocomp-go/lcpcomp/textindex"
)

// uintArg reads a uint argument with a fallback default, surfacing a
// malformed-value error instead of silently using the default.
func uintArg(b Bindings, name string, def uint64) (uint64, error) {
	v, ok, err := b.Uint(name)
	if err != nil {
		return 0, err
	}

	if !ok {
		return def, nil
	}

	return v, nil
}

func boolArg(b Bindings, name string, def bool) (bool, error) {
	v, ok, err := b.Bool(name)
	if err != nil {
		return false, err
	}

	if !ok {
		return def, nil
	}

	return v, nil
}

// Default returns a Registry with every type and standalone
// compressor named in this module's algorithm-string grammar already
// registered: type "coder" ("lzss"), type "ds" ("sais"), type "comp"
// ("arrays", the LCP factorizer wrapped for lfs.RuleStrategy), and
// the root-level compressors "lcpcomp", "lzsw", "lz78", "rle", "lfs".
func Default() *Registry {
	r := New()

	r.Register("coder", "lzss", nil, func(Bindings) (interface{}, error) {
		return lzss.NewCoder(), nil
	})

	r.Register("ds", "sais", nil, func(Bindings) (interface{}, error) {
		return textindex.SAISProvider{}, nil
	})

	r.Register("comp", "arrays", []Param{
		{Name: "threshold"},
	}, func(b Bindings) (interface{}, error) {
		threshold, err := uintArg(b, "threshold", uint64(lcpcomp.DefaultThreshold))
		if err != nil {
			return nil, err
		}

		return lfs.NewLCPStrategy(uint(threshold))
	})

	r.Register("compressor", "lcpcomp", []Param{
		{Name: "threshold"},
		{Name: "flatten"},
	}, func(b Bindings) (interface{}, error) {
		threshold, err := uintArg(b, "threshold", uint64(lcpcomp.DefaultThreshold))
		if err != nil {
			return nil, err
		}

		flatten, err := boolArg(b, "flatten", true)
		if err != nil {
			return nil, err
		}

		return lcpcomp.NewCompressor(lcpcomp.Options{Threshold: uint(threshold), Flatten: flatten})
	})

	r.Register("compressor", "lzsw", []Param{
		{Name: "window"},
		{Name: "threshold"},
	}, func(b Bindings) (interface{}, error) {
		window, err := uintArg(b, "window", uint64(lzsw.DefaultWindow))
		if err != nil {
			return nil, err
		}

		threshold, err := uintArg(b, "threshold", uint64(lzsw.DefaultThreshold))
		if err != nil {
			return nil, err
		}

		return lzsw.NewCompressor(lzsw.Options{Window: int(window), Threshold: int(threshold)})
	})

	r.Register("compressor", "lz78", nil, func(Bindings) (interface{}, error) {
		return lz78.NewCompressor(), nil
	})

	r.Register("compressor", "rle", nil, func(Bindings) (interface{}, error) {
		return rle.Compressor{}, nil
	})

	r.Register("compressor", "lfs", []Param{
		{Name: "threshold"},
	}, func(b Bindings) (interface{}, error) {
		threshold, err := uintArg(b, "threshold", uint64(lcpcomp.DefaultThreshold))
		if err != nil {
			return nil, err
		}

		strategy, err := lfs.NewLCPStrategy(uint(threshold))
		if err != nil {
			return nil, err
		}

		return lfs.NewCompressor(strategy)
	})

	return r
}
