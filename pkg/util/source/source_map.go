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
package source

import (
	"fmt"
)

// Map records the span of text from which each node of a tree was parsed, so
// that later errors can point back into the original file.  Nodes are compared
// by identity, hence T is typically a pointer or interface type.
type Map[T comparable] struct {
	srcfile *File
	spans   map[T]Span
}

// NewSourceMap constructs an empty source map over a given file.
func NewSourceMap[T comparable](srcfile *File) *Map[T] {
	return &Map[T]{srcfile, make(map[T]Span)}
}

// Source file on which this map operates.
func (p *Map[T]) Source() *File {
	return p.srcfile
}

// Size returns the number of nodes in this map.
func (p *Map[T]) Size() int {
	return len(p.spans)
}

// Put records the span of a node.  Each node can be recorded at most once, and
// this panics otherwise.
func (p *Map[T]) Put(node T, span Span) {
	if _, ok := p.spans[node]; ok {
		panic(fmt.Sprintf("node %v already has a span", any(node)))
	}
	//
	p.spans[node] = span
}

// Has checks whether a span is recorded for a given node.
func (p *Map[T]) Has(node T) bool {
	_, ok := p.spans[node]
	return ok
}

// Get returns the span recorded for a given node, and panics if there is none.
func (p *Map[T]) Get(node T) Span {
	span, ok := p.spans[node]
	if !ok {
		panic(fmt.Sprintf("node %v has no span", any(node)))
	}
	//
	return span
}

// SyntaxError reports a message against the span of a given node.
func (p *Map[T]) SyntaxError(node T, msg string) *SyntaxError {
	return p.srcfile.SyntaxError(p.Get(node), msg)
}
