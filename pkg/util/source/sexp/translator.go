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
	"fmt"

	"github.com/consensys/go-fol/pkg/util/source"
)

// SymbolRule attempts to translate a symbol.  The boolean result signals
// whether the rule applies at all; if it does not, the next rule is tried.
type SymbolRule[T comparable] func(string) (T, bool, error)

// ListRule translates a whole list, reporting errors against its elements as it
// sees fit.
type ListRule[T comparable] func(*List) (T, []source.SyntaxError)

// RecursiveRule builds a value from the head of a list and its already
// translated arguments.
type RecursiveRule[T comparable] func(head string, args []T) (T, error)

// Translator turns S-expressions into values of type T.  Symbols are handed to
// each symbol rule in turn, whilst lists are dispatched on their head symbol.
// Every value produced is recorded in a source map against the span of the
// S-expression it came from.
type Translator[T comparable] struct {
	sexps    *source.Map[SExp]
	spans    *source.Map[T]
	symbols  []SymbolRule[T]
	lists    map[string]ListRule[T]
	fallback ListRule[T]
}

// NewTranslator constructs a translator without any rules, for S-expressions
// whose spans are given by a source map.
func NewTranslator[T comparable](srcmap *source.Map[SExp]) *Translator[T] {
	return &Translator[T]{
		sexps: srcmap,
		spans: source.NewSourceMap[T](srcmap.Source()),
		lists: make(map[string]ListRule[T]),
	}
}

// SourceMap gives the span of every value produced so far.
func (p *Translator[T]) SourceMap() *source.Map[T] {
	return p.spans
}

// AddSymbolRule appends a rule for translating symbols.
func (p *Translator[T]) AddSymbolRule(rule SymbolRule[T]) {
	p.symbols = append(p.symbols, rule)
}

// AddListRule registers a rule for lists with a given head, which is handed the
// whole list untranslated.
func (p *Translator[T]) AddListRule(head string, rule ListRule[T]) {
	p.lists[head] = rule
}

// AddRecursiveListRule registers a rule for lists with a given head, whose
// arguments are translated by this translator before the rule is applied.  The
// list must have exactly arity arguments, unless arity is negative.
func (p *Translator[T]) AddRecursiveListRule(head string, arity int, rule RecursiveRule[T]) {
	p.lists[head] = func(l *List) (T, []source.SyntaxError) {
		var (
			empty T
			errs  []source.SyntaxError
			args  = make([]T, l.Len()-1)
		)
		//
		if arity >= 0 && len(args) != arity {
			msg := fmt.Sprintf("incorrect number of arguments (found %d, expected %d)", len(args), arity)
			return empty, p.SyntaxErrors(l, msg)
		}
		//
		for i := range args {
			var aerrs []source.SyntaxError
			args[i], aerrs = p.Translate(l.Get(i + 1))
			errs = append(errs, aerrs...)
		}
		//
		if len(errs) != 0 {
			return empty, errs
		}
		//
		value, err := rule(head, args)
		if err != nil {
			return empty, p.SyntaxErrors(l, err.Error())
		}
		//
		return value, nil
	}
}

// AddDefaultListRule sets the rule applied to lists whose head has no rule of
// its own.
func (p *Translator[T]) AddDefaultListRule(rule ListRule[T]) {
	p.fallback = rule
}

// Translate an S-expression, returning one or more errors if it is malformed.
func (p *Translator[T]) Translate(s SExp) (T, []source.SyntaxError) {
	var (
		value T
		errs  []source.SyntaxError
	)
	//
	if l := s.AsList(); l != nil {
		value, errs = p.translateList(l)
	} else {
		value, errs = p.translateSymbol(s.AsSymbol())
	}
	//
	if len(errs) == 0 {
		p.spans.Put(value, p.sexps.Get(s))
	}
	//
	return value, errs
}

// SyntaxError reports a message against the span of an S-expression.
func (p *Translator[T]) SyntaxError(s SExp, msg string) *source.SyntaxError {
	return p.sexps.SyntaxError(s, msg)
}

// SyntaxErrors is SyntaxError wrapped as a singleton slice.
func (p *Translator[T]) SyntaxErrors(s SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(s, msg)}
}

func (p *Translator[T]) translateSymbol(s *Symbol) (T, []source.SyntaxError) {
	var empty T
	//
	for _, rule := range p.symbols {
		if value, ok, err := rule(s.Value); ok && err != nil {
			return empty, p.SyntaxErrors(s, err.Error())
		} else if ok {
			return value, nil
		}
	}
	//
	return empty, p.SyntaxErrors(s, fmt.Sprintf("unknown symbol \"%s\"", s.Value))
}

func (p *Translator[T]) translateList(l *List) (T, []source.SyntaxError) {
	var empty T
	//
	head := l.Head()
	//
	switch {
	case head == nil:
		return empty, p.SyntaxErrors(l, "invalid list")
	case p.lists[head.Value] != nil:
		return p.lists[head.Value](l)
	case p.fallback != nil:
		return p.fallback(l)
	}
	//
	return empty, p.SyntaxErrors(l, fmt.Sprintf("unknown list \"%s\"", head.Value))
}
