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
	"strconv"
	"strings"
	"unicode"
)

// SExp is a node in an S-expression tree: either a List or a Symbol.
type SExp interface {
	// AsList returns this node as a list, or nil if it is a symbol.
	AsList() *List
	// AsSymbol returns this node as a symbol, or nil if it is a list.
	AsSymbol() *Symbol
	// String renders this node as text.  When quote holds, any symbol which
	// could not be read back as a single symbol is written in double quotes.
	String(quote bool) string
}

// List is a parenthesised sequence of zero or more nodes.
type List struct {
	Elements []SExp
}

// Symbol is a maximal run of characters other than whitespace, parentheses and
// semi-colons.
type Symbol struct {
	Value string
}

var (
	_ SExp = (*List)(nil)
	_ SExp = (*Symbol)(nil)
)

// NewList constructs a list holding the given elements.
func NewList(elements []SExp) *List {
	return &List{elements}
}

// NewSymbol constructs a symbol with the given value.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

// AsList implementation for SExp interface.
func (l *List) AsList() *List { return l }

// AsSymbol implementation for SExp interface.
func (l *List) AsSymbol() *Symbol { return nil }

// Len returns the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get returns the ith element of this list.
func (l *List) Get(i int) SExp { return l.Elements[i] }

// Head returns the leading symbol of this list, or nil if the list is empty or
// starts with a nested list.
func (l *List) Head() *Symbol {
	if len(l.Elements) == 0 {
		return nil
	}
	//
	return l.Elements[0].AsSymbol()
}

// String implementation for SExp interface.
func (l *List) String(quote bool) string {
	parts := make([]string, len(l.Elements))
	//
	for i, e := range l.Elements {
		parts[i] = e.String(quote)
	}
	//
	return "(" + strings.Join(parts, " ") + ")"
}

// AsList implementation for SExp interface.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol implementation for SExp interface.
func (s *Symbol) AsSymbol() *Symbol { return s }

// String implementation for SExp interface.
func (s *Symbol) String(quote bool) string {
	if quote && (s.Value == "" || strings.IndexFunc(s.Value, isDelimiter) >= 0) {
		return strconv.Quote(s.Value)
	}
	//
	return s.Value
}

// isDelimiter identifies characters which terminate a symbol.
func isDelimiter(r rune) bool {
	return r == '(' || r == ')' || r == ';' || unicode.IsSpace(r)
}
