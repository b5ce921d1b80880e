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

package algostr

import (
	"github.com/pkg/errors"
)

// Parse parses s against the grammar:
//
//	Value ::= IDENT ['(' [Arg (',' Arg)*] ')'] | '"' STRING '"'
//	Arg   ::= [IDENT [':' ['static'] IDENT] '='] Value
//
// Identifiers match [A-Za-z_][A-Za-z0-9_]*, strings are double-quoted
// with no escape processing, and whitespace between tokens is
// ignored. Positional arguments must precede keyword arguments.
func Parse(s string) (*Value, error) {
	p := &parser{s: s}

	v, err := p.parseValue()
	if err != nil {
		return nil, errors.Wrap(err, "algostr: parse failed")
	}

	p.skipWS()

	if p.pos != len(p.s) {
		return nil, errors.Wrap(&ParseError{Pos: p.pos, Msg: "unexpected trailing input"}, "algostr: parse failed")
	}

	return v, nil
}

type parser struct {
	s   string
	pos int
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func (this *parser) skipWS() {
	for this.pos < len(this.s) {
		switch this.s[this.pos] {
		case ' ', '\t', '\n', '\r':
			this.pos++
		default:
			return
		}
	}
}

func (this *parser) errf(pos int, msg string) error {
	return &ParseError{Pos: pos, Msg: msg}
}

func (this *parser) parseIdent() (string, error) {
	this.skipWS()
	start := this.pos

	if this.pos >= len(this.s) || !isIdentStart(this.s[this.pos]) {
		return "", this.errf(this.pos, "expected identifier")
	}

	this.pos++

	for this.pos < len(this.s) && isIdentCont(this.s[this.pos]) {
		this.pos++
	}

	return this.s[start:this.pos], nil
}

// parseNumber parses a bare run of digits as a Value. The grammar's
// own IDENT production requires a non-digit first character, so a
// numeric argument like "threshold=5" would otherwise be impossible
// to write without quoting it; this extension keeps the common case
// unquoted while leaving IDENT itself untouched everywhere else (an
// invocation name, a keyword, or a type annotation still must match
// [A-Za-z_][A-Za-z0-9_]*).
func (this *parser) parseNumber() (*Value, error) {
	start := this.pos

	for this.pos < len(this.s) && this.s[this.pos] >= '0' && this.s[this.pos] <= '9' {
		this.pos++
	}

	return &Value{Ident: this.s[start:this.pos]}, nil
}

func (this *parser) parseString() (*Value, error) {
	start := this.pos
	this.pos++ // opening quote

	contentStart := this.pos

	for {
		if this.pos >= len(this.s) {
			return nil, this.errf(start, "unterminated string literal")
		}

		if this.s[this.pos] == '"' {
			break
		}

		this.pos++
	}

	content := this.s[contentStart:this.pos]
	this.pos++ // closing quote

	return &Value{IsString: true, Literal: content}, nil
}

// parseValue parses a Value starting at the current (pre-whitespace)
// position.
func (this *parser) parseValue() (*Value, error) {
	this.skipWS()

	if this.pos >= len(this.s) {
		return nil, this.errf(this.pos, "unexpected end of input, expected a value")
	}

	if this.s[this.pos] == '"' {
		return this.parseString()
	}

	if this.s[this.pos] >= '0' && this.s[this.pos] <= '9' {
		return this.parseNumber()
	}

	name, err := this.parseIdent()
	if err != nil {
		return nil, err
	}

	v := &Value{Ident: name}
	this.skipWS()

	if this.pos < len(this.s) && this.s[this.pos] == '(' {
		this.pos++
		this.skipWS()
		seenKeyword := false

		if this.pos < len(this.s) && this.s[this.pos] != ')' {
			for {
				arg, err := this.parseArg(&seenKeyword)
				if err != nil {
					return nil, err
				}

				v.Args = append(v.Args, arg)
				this.skipWS()

				if this.pos < len(this.s) && this.s[this.pos] == ',' {
					this.pos++
					this.skipWS()
					continue
				}

				break
			}
		}

		this.skipWS()

		if this.pos >= len(this.s) || this.s[this.pos] != ')' {
			return nil, this.errf(this.pos, "expected ')'")
		}

		this.pos++
	}

	return v, nil
}

// parseArg parses one Arg. Disambiguating a keyword ("name=value" or
// "name:type=value") from a bare positional invocation that merely
// starts with the same identifier requires lookahead past the
// identifier: only if '=' or ':' follows is it a keyword.
func (this *parser) parseArg(seenKeyword *bool) (Arg, error) {
	this.skipWS()

	if this.pos < len(this.s) && this.s[this.pos] != '"' {
		save := this.pos
		name, err := this.parseIdent()

		if err == nil {
			this.skipWS()

			if this.pos < len(this.s) && (this.s[this.pos] == '=' || this.s[this.pos] == ':') {
				arg, err := this.parseKeywordArg(name)
				if err != nil {
					return Arg{}, err
				}

				*seenKeyword = true
				return arg, nil
			}

			// Not a keyword after all: rewind and parse it as a
			// positional Value (an invocation starting with this ident).
			this.pos = save
		}
	}

	if *seenKeyword {
		return Arg{}, this.errf(this.pos, "positional argument after keyword argument")
	}

	val, err := this.parseValue()
	if err != nil {
		return Arg{}, err
	}

	return Arg{Value: val}, nil
}

func (this *parser) parseKeywordArg(name string) (Arg, error) {
	arg := Arg{Keyword: name}

	if this.s[this.pos] == ':' {
		this.pos++
		this.skipWS()

		t1, err := this.parseIdent()
		if err != nil {
			return Arg{}, err
		}

		if t1 == "static" {
			this.skipWS()

			t2, err := this.parseIdent()
			if err != nil {
				return Arg{}, err
			}

			arg.Static = true
			arg.TypeName = t2
		} else {
			arg.TypeName = t1
		}

		this.skipWS()
	}

	if this.pos >= len(this.s) || this.s[this.pos] != '=' {
		return Arg{}, this.errf(this.pos, "expected '='")
	}

	this.pos++
	this.skipWS()

	val, err := this.parseValue()
	if err != nil {
		return Arg{}, err
	}

	arg.Value = val
	return arg, nil
}
