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

// Package algostr parses the CLI's algorithm-construction grammar
// (an identifier, optionally applied to a parenthesized argument
// list, or a quoted string literal) into an AST that package registry
// resolves against a registered signature.
package algostr

import "fmt"

// Value is either an invocation (Ident plus zero or more Args) or a
// quoted string literal (IsString, Literal).
type Value struct {
	Ident    string
	Args     []Arg
	IsString bool
	Literal  string
}

// String renders v back in the grammar's own surface syntax.
func (this *Value) String() string {
	if this.IsString {
		return fmt.Sprintf("%q", this.Literal)
	}

	if len(this.Args) == 0 {
		return this.Ident
	}

	s := this.Ident + "("

	for i, a := range this.Args {
		if i > 0 {
			s += ", "
		}

		s += a.String()
	}

	return s + ")"
}

// Arg is one argument of an invocation: an optional keyword (with an
// optional ':[static] TYPE' annotation) followed by '=' and a Value,
// or, for positional arguments, just a bare Value.
type Arg struct {
	Keyword  string
	TypeName string
	Static   bool
	Value    *Value
}

// Positional reports whether this argument was written without a
// 'name=' prefix.
func (this Arg) Positional() bool {
	return this.Keyword == ""
}

// String renders a back in the grammar's own surface syntax.
func (this Arg) String() string {
	if this.Positional() {
		return this.Value.String()
	}

	typePart := ""

	if this.TypeName != "" {
		if this.Static {
			typePart = ":static " + this.TypeName
		} else {
			typePart = ":" + this.TypeName
		}
	}

	return this.Keyword + typePart + "=" + this.Value.String()
}

// ParseError reports a malformed algorithm string, with the byte
// offset into the input the parser had reached.
type ParseError struct {
	Pos int
	Msg string
}

func (this *ParseError) Error() string {
	return fmt.Sprintf("algostr: parse error at byte %d: %s", this.Pos, this.Msg)
}
