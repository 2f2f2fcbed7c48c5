// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sexp

import (
	"unicode"

	"github.com/consensys/go-fol/pkg/util/source"
	"github.com/consensys/go-fol/pkg/util/source/lex"
)

// Token kinds produced when splitting S-expression text.
const (
	LPAREN uint = iota
	RPAREN
	SYMBOL
	WHITESPACE
	COMMENT
)

// A comment runs from a semi-colon to the end of its line.
var comment = lex.Then(lex.Unit(';'), lex.Many(lex.Satisfies(func(r rune) bool { return r != '\n' })))

// Every character matches exactly one of these rules, so lexing never stops
// early.
var rules = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(comment, COMMENT),
	lex.Rule(lex.Many(lex.Satisfies(unicode.IsSpace)), WHITESPACE),
	lex.Rule(lex.Many(lex.Satisfies(func(r rune) bool { return !isDelimiter(r) })), SYMBOL),
}

// Parse the contents of a source file as exactly one S-expression.  Upon
// success, a source map is returned giving the span of every node in the tree.
func Parse(srcfile *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := newParser(srcfile)
	//
	s, err := p.parse()
	if err != nil {
		return nil, nil, err
	} else if p.index < len(p.tokens) {
		return nil, nil, p.errorAt(p.tokens[p.index].Span, "unexpected remainder")
	}
	//
	return s, p.srcmap, nil
}

type parser struct {
	srcfile *source.File
	// Significant tokens only, i.e. no whitespace or comments.
	tokens []lex.Token
	index  int
	srcmap *source.Map[SExp]
}

func newParser(srcfile *source.File) *parser {
	var tokens []lex.Token
	//
	for _, t := range lex.NewLexer(srcfile.Contents(), rules...).Collect() {
		if t.Kind != WHITESPACE && t.Kind != COMMENT {
			tokens = append(tokens, t)
		}
	}
	//
	return &parser{srcfile, tokens, 0, source.NewSourceMap[SExp](srcfile)}
}

func (p *parser) parse() (SExp, *source.SyntaxError) {
	if p.index >= len(p.tokens) {
		return nil, p.errorAtEnd("unexpected end-of-file")
	}
	//
	start := p.tokens[p.index]
	p.index++
	//
	switch start.Kind {
	case RPAREN:
		return nil, p.errorAt(start.Span, "unexpected end-of-list")
	case SYMBOL:
		s := NewSymbol(p.srcfile.Text(start.Span))
		p.srcmap.Put(s, start.Span)
		//
		return s, nil
	}
	// Must be an opening parenthesis
	var elements []SExp
	//
	for {
		if p.index >= len(p.tokens) {
			return nil, p.errorAtEnd("unexpected end-of-file")
		} else if end := p.tokens[p.index]; end.Kind == RPAREN {
			p.index++
			l := NewList(elements)
			p.srcmap.Put(l, start.Span.Join(end.Span))
			//
			return l, nil
		}
		//
		element, err := p.parse()
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
}

func (p *parser) errorAt(span source.Span, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(span, msg)
}

func (p *parser) errorAtEnd(msg string) *source.SyntaxError {
	n := len(p.srcfile.Contents())
	return p.srcfile.SyntaxError(source.NewSpan(n, n), msg)
}
