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

import "fmt"

// Span is the half-open range [start, end) of character offsets in a source
// file.
type Span struct {
	start int
	end   int
}

// NewSpan constructs the span [start, end), and panics if end precedes start.
func NewSpan(start int, end int) Span {
	if end < start {
		panic(fmt.Sprintf("span end %d precedes start %d", end, start))
	}
	//
	return Span{start, end}
}

// Start offset of this span.
func (s Span) Start() int { return s.start }

// End offset of this span, which is one past its last character.
func (s Span) End() int { return s.end }

// Length of this span in characters.
func (s Span) Length() int { return s.end - s.start }

// Join returns the smallest span enclosing both this span and another.
func (s Span) Join(other Span) Span {
	return Span{min(s.start, other.start), max(s.end, other.end)}
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.start, s.end)
}
