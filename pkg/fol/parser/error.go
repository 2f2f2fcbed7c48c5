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
package parser

import (
	"fmt"

	"github.com/consensys/go-fol/pkg/util/source"
)

// ErrorKind classifies the ways in which parsing can fail.
type ErrorKind uint

// UNEXPECTED_TOKEN signals that a token was found where a different token (or
// a formula) was required.
const UNEXPECTED_TOKEN ErrorKind = 0

// UNEXPECTED_END signals that the input ended whilst a production still
// required another token.
const UNEXPECTED_END ErrorKind = 1

// UNKNOWN_OPERATOR signals that the operator of a parenthesised binary formula
// was not one of "&", "|" or "->".
const UNKNOWN_OPERATOR ErrorKind = 2

// INVALID_BOUND_VARIABLE signals that a quantifier was not followed by a
// lowercase variable.
const INVALID_BOUND_VARIABLE ErrorKind = 3

// INVALID_TERM signals that a predicate argument was neither a variable nor a
// constant.
const INVALID_TERM ErrorKind = 4

// TRAILING_INPUT signals that tokens remained after a complete formula had
// been parsed.
const TRAILING_INPUT ErrorKind = 5

func (k ErrorKind) String() string {
	switch k {
	case UNEXPECTED_TOKEN:
		return "unexpected token"
	case UNEXPECTED_END:
		return "unexpected end of input"
	case UNKNOWN_OPERATOR:
		return "unknown binary operator"
	case INVALID_BOUND_VARIABLE:
		return "invalid bound variable"
	case INVALID_TERM:
		return "invalid term"
	case TRAILING_INPUT:
		return "trailing input"
	}
	//
	return fmt.Sprintf("unknown error kind (%d)", uint(k))
}

// ParseError reports why, and at which token, a formula could not be parsed.
type ParseError struct {
	// Kind of failure.
	Kind ErrorKind
	// Human-readable description of the failure.
	Message string
	// Index of the offending token within the token stream.  When the input
	// ended prematurely, this is the number of tokens.
	Index int
	// Offending token, or nil when the input ended prematurely.
	Token *Token
	// Text being parsed.
	srcfile *source.File
	// Position in the text where the input ended.
	end int
}

// AtEnd indicates whether this error arose because the input ended
// prematurely.
func (e *ParseError) AtEnd() bool {
	return e.Token == nil
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (token %d)", e.Message, e.Index)
}

// SyntaxError converts this error into a syntax error over the original text,
// which covers the offending token.  Premature end of input is reported as an
// empty span at the end of the input (normally the end of the text).
func (e *ParseError) SyntaxError() *source.SyntaxError {
	var span source.Span
	//
	if e.Token != nil {
		span = e.Token.Span
	} else {
		span = source.NewSpan(e.end, e.end)
	}
	//
	return e.srcfile.SyntaxError(span, e.Message)
}
