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

// Package registry resolves an algostr AST against constructors
// registered under a (type, name) pair, binding positional and
// keyword arguments to a declared signature with default-value
// substitution. It is the dynamic counterpart of the original
// source's compile-time generic parameterization: every algorithm
// string, however it was written, bottoms out in a call through this
// registry rather than a type parameter.
package registry

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tudocomp-go/lcpcomp/algostr"
)

// ConfigError reports a registry-level configuration mistake: an
// unknown type or name, a duplicate or unknown keyword argument, or a
// missing required argument with no default.
type ConfigError struct {
	Msg string
}

func (this *ConfigError) Error() string {
	return "registry: " + this.Msg
}

// Param declares one argument of a registered constructor's signature.
type Param struct {
	Name     string
	Required bool
	Default  *algostr.Value
}

// Bindings maps a Param name to the algostr.Value bound to it (the
// caller's argument, or the Param's Default if none was given).
type Bindings map[string]*algostr.Value

// Ident returns the bare identifier bound to name (also used for the
// digit-run encoding of a bare number, see algostr.Parser's
// parseNumber), or ok=false if name is unbound or bound to a string
// literal.
func (this Bindings) Ident(name string) (string, bool) {
	v, ok := this[name]

	if !ok || v == nil || v.IsString {
		return "", false
	}

	return v.Ident, true
}

// String returns the string value bound to name: a quoted literal's
// Literal field, or a bare identifier's Ident field. ok is false only
// if name is unbound.
func (this Bindings) String(name string) (string, bool) {
	v, ok := this[name]

	if !ok || v == nil {
		return "", false
	}

	if v.IsString {
		return v.Literal, true
	}

	return v.Ident, true
}

// Uint parses the bare identifier bound to name as an unsigned
// integer. ok is false if name is unbound.
func (this Bindings) Uint(name string) (uint64, bool, error) {
	s, ok := this.Ident(name)

	if !ok {
		return 0, false, nil
	}

	var n uint64

	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, true, &ConfigError{Msg: fmt.Sprintf("argument %q: %q is not an unsigned integer", name, s)}
	}

	return n, true, nil
}

// Bool parses the bare identifier bound to name as a boolean: "1" or
// "true" is true, "0" or "false" is false. ok is false if name is unbound.
func (this Bindings) Bool(name string) (bool, bool, error) {
	s, ok := this.Ident(name)

	if !ok {
		return false, false, nil
	}

	switch s {
	case "1", "true":
		return true, true, nil
	case "0", "false":
		return false, true, nil
	default:
		return false, true, &ConfigError{Msg: fmt.Sprintf("argument %q: %q is not a boolean", name, s)}
	}
}

// Bind resolves args against sig: positional arguments fill sig in
// order, keyword arguments bind by name, and any Param left unbound
// takes its Default (or is rejected if Required and no Default is set).
// args must place every positional argument before any keyword
// argument (algostr.Parse already enforces this for a single
// invocation's own argument list, but Bind re-checks it since callers
// may assemble an Arg slice by hand).
func Bind(sig []Param, args []algostr.Arg) (Bindings, error) {
	byName := make(map[string]Param, len(sig))
	for _, p := range sig {
		byName[p.Name] = p
	}

	bound := make(Bindings, len(sig))
	posIdx := 0
	seenKeyword := false

	for _, a := range args {
		if a.Positional() {
			if seenKeyword {
				return nil, &ConfigError{Msg: "positional argument after keyword argument"}
			}

			if posIdx >= len(sig) {
				return nil, &ConfigError{Msg: fmt.Sprintf("too many positional arguments (expected at most %d)", len(sig))}
			}

			bound[sig[posIdx].Name] = a.Value
			posIdx++
			continue
		}

		seenKeyword = true

		if _, ok := byName[a.Keyword]; !ok {
			return nil, &ConfigError{Msg: fmt.Sprintf("unknown argument %q", a.Keyword)}
		}

		if _, ok := bound[a.Keyword]; ok {
			return nil, &ConfigError{Msg: fmt.Sprintf("argument %q bound more than once", a.Keyword)}
		}

		bound[a.Keyword] = a.Value
	}

	for _, p := range sig {
		if _, ok := bound[p.Name]; ok {
			continue
		}

		if p.Default != nil {
			bound[p.Name] = p.Default
			continue
		}

		if p.Required {
			return nil, &ConfigError{Msg: fmt.Sprintf("missing required argument %q", p.Name)}
		}
	}

	return bound, nil
}

// Constructor builds a value (a Compressor, a Coder, a Provider, ...)
// from its bound arguments.
type Constructor func(b Bindings) (interface{}, error)

type entry struct {
	sig  []Param
	ctor Constructor
}

// Registry maps (typeName, identName) to a Constructor and its
// signature.
type Registry struct {
	entries map[string]map[string]entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]map[string]entry)}
}

// Register adds a constructor under (typeName, name).
func (this *Registry) Register(typeName, name string, sig []Param, ctor Constructor) {
	byName, ok := this.entries[typeName]

	if !ok {
		byName = make(map[string]entry)
		this.entries[typeName] = byName
	}

	byName[name] = entry{sig: sig, ctor: ctor}
}

// Resolve evaluates v against typeName: a string literal resolves to
// its own Go string (for leaf arguments like a file path or an RLE
// mode name); an invocation resolves by looking up (typeName, v.Ident),
// binding v.Args against the registered signature, and calling the
// constructor.
func (this *Registry) Resolve(typeName string, v *algostr.Value) (interface{}, error) {
	if v.IsString {
		return v.Literal, nil
	}

	byName, ok := this.entries[typeName]

	if !ok {
		return nil, &ConfigError{Msg: fmt.Sprintf("unknown type %q", typeName)}
	}

	e, ok := byName[v.Ident]

	if !ok {
		return nil, &ConfigError{Msg: fmt.Sprintf("unknown %s %q", typeName, v.Ident)}
	}

	bindings, err := Bind(e.sig, v.Args)
	if err != nil {
		return nil, errors.Wrapf(err, "registry: resolving %s %q", typeName, v.Ident)
	}

	out, err := e.ctor(bindings)
	if err != nil {
		return nil, errors.Wrapf(err, "registry: constructing %s %q", typeName, v.Ident)
	}

	return out, nil
}

// ResolveString parses s with algostr.Parse and resolves the result
// against typeName. The CLI driver uses it to build a family's default
// decompressor from a bare name; its --algorithm flag is handled with
// algostr.Parse and Resolve directly.
func (this *Registry) ResolveString(typeName, s string) (interface{}, error) {
	v, err := algostr.Parse(s)
	if err != nil {
		return nil, err
	}

	return this.Resolve(typeName, v)
}
