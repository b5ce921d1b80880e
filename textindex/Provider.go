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

package textindex

// Provider builds an Index from a sentinel-terminated text. It exists
// as a seam for lcpcomp.Options even though, per this module's
// non-goals, SAISProvider is the only implementation: the core's own
// suffix-array construction algorithm is fixed to SA-IS, callers may
// not plug in an alternative construction algorithm.
type Provider interface {
	Build(text []byte) (*Index, error)
}

// SAISProvider builds an Index using the SA-IS linear-time suffix
// array construction algorithm and the Kasai-style LCP scan.
type SAISProvider struct{}

// Build implements Provider.
func (SAISProvider) Build(text []byte) (*Index, error) {
	return Build(text)
}
