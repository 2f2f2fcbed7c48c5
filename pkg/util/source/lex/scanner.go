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

import (
	"cmp"
	"slices"
)

// Scanner reports how many leading items of its input it accepts, with zero
// meaning the input is rejected.  Scanners are built up from the combinators
// below.
type Scanner[T any] func(items []T) uint

// Unit accepts exactly the given sequence of items.
func Unit[T comparable](sequence ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(sequence) || !slices.Equal(items[:len(sequence)], sequence) {
			return 0
		}
		//
		return uint(len(sequence))
	}
}

// String accepts exactly the characters of a given string.
func String(s string) Scanner[rune] {
	return Unit([]rune(s)...)
}

// Satisfies accepts a single item for which a given predicate holds.
func Satisfies[T any](predicate func(T) bool) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 || !predicate(items[0]) {
			return 0
		}
		//
		return 1
	}
}

// Within accepts a single item in the (inclusive) range lowest..highest.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return Satisfies(func(item T) bool { return lowest <= item && item <= highest })
}

// Or accepts whatever the first accepting scanner accepts, trying each in
// turn.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n != 0 {
				return n
			}
		}
		//
		return 0
	}
}

// Then accepts a match of first, extended by whatever rest accepts of the
// remaining items.  Only first is required to match.
func Then[T any](first Scanner[T], rest Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := first(items)
		if n == 0 || int(n) >= len(items) {
			return n
		}
		//
		return n + rest(items[n:])
	}
}

// Many accepts as many consecutive matches of a scanner as possible, which may
// be none.
func Many[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var total uint
		//
		for int(total) < len(items) {
			n := scanner(items[total:])
			if n == 0 {
				break
			}
			//
			total += n
		}
		//
		return total
	}
}

// Eof accepts only empty input, producing a single (zero-width) token at the
// end of the stream.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) != 0 {
			return 0
		}
		//
		return 1
	}
}
