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
package lex

import "github.com/consensys/go-fol/pkg/util/source"

// Token is a kind tag attached to a span of the input.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule tags whatever a given scanner accepts with a fixed kind.
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a lexing rule producing tokens of a given kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer splits a sequence of items into tokens.  At each position the rule
// with the longest match wins, with ties going to the earliest rule.
type Lexer[T any] struct {
	items []T
	rules []LexRule[T]
	index int
	// Token matched at the current position, if any.
	next *Token
	// Spans dropped by CollectSkipping, with neighbours merged.
	skipped []source.Span
}

// NewLexer constructs a lexer over some input using a given set of rules.
func NewLexer[T any](items []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{items: items, rules: rules}
}

// Index returns the current position within the input.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining returns the number of input items not yet consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Skipped returns the spans dropped by CollectSkipping.
func (p *Lexer[T]) Skipped() []source.Span {
	return p.skipped
}

// HasNext checks whether some rule matches at the current position.
func (p *Lexer[T]) HasNext() bool {
	if p.next == nil && p.index <= len(p.items) {
		p.next = p.match()
	}
	//
	return p.next != nil
}

// Next returns the token at the current position and moves past it.  This
// should only be called after HasNext has returned true.
func (p *Lexer[T]) Next() Token {
	token := *p.next
	p.next = nil
	//
	if p.index == len(p.items) {
		// A token at the end can only be matched once.
		p.index++
	} else {
		p.index = token.Span.End()
	}
	//
	return token
}

// Collect returns every token up to the first position where no rule matches.
// Anything from there on is left unconsumed.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

// CollectSkipping returns every token in the input.  Any item at which no rule
// matches is dropped and recorded as skipped.
func (p *Lexer[T]) CollectSkipping() []Token {
	var tokens []Token
	//
	for {
		tokens = append(tokens, p.Collect()...)
		//
		if p.Remaining() == 0 {
			return tokens
		}
		//
		p.skip()
	}
}

func (p *Lexer[T]) skip() {
	n := len(p.skipped)
	//
	if n > 0 && p.skipped[n-1].End() == p.index {
		p.skipped[n-1] = source.NewSpan(p.skipped[n-1].Start(), p.index+1)
	} else {
		p.skipped = append(p.skipped, source.NewSpan(p.index, p.index+1))
	}
	//
	p.index++
}

// Find the longest match at the current position.
func (p *Lexer[T]) match() *Token {
	var (
		longest uint
		kind    uint
		rest    = p.items[p.index:]
	)
	//
	for _, rule := range p.rules {
		if n := rule.scanner(rest); n > longest {
			longest, kind = n, rule.kind
		}
	}
	//
	if longest == 0 {
		return nil
	}
	// Zero-width matches at the end still report a length of one.
	end := min(len(p.items), p.index+int(longest))
	//
	return &Token{kind, source.NewSpan(p.index, end)}
}
