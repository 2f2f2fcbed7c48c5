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
	"slices"
	"unicode"

	"github.com/consensys/go-fol/pkg/util/source"
	"github.com/consensys/go-fol/pkg/util/source/lex"
)

// LPAREN signals "left parenthesis"
const LPAREN uint = 0

// RPAREN signals "right parenthesis"
const RPAREN uint = 1

// DOT separates a quantified variable from its body
const DOT uint = 2

// COMMA separates predicate arguments
const COMMA uint = 3

// NEG represents logical negation
const NEG uint = 4

// AND represents logical conjunction
const AND uint = 5

// OR represents logical disjunction
const OR uint = 6

// IMPLIES represents logical implication
const IMPLIES uint = 7

// IDENT_LOWER signals an identifier made up from lowercase letters and digits,
// such as a variable or a quantifier keyword.
const IDENT_LOWER uint = 8

// IDENT_UPPER signals an identifier made up from uppercase letters and digits,
// such as a constant or predicate name.
const IDENT_UPPER uint = 9

// WHITESPACE signals whitespace, which is discarded before parsing.
const WHITESPACE uint = 10

// FORALL_KEYWORD is the keyword introducing universal quantification.
const FORALL_KEYWORD = "forall"

// EXISTS_KEYWORD is the keyword introducing existential quantification.
const EXISTS_KEYWORD = "exists"

// IsBinaryConnective checks whether a given token kind joins two formulas.
func IsBinaryConnective(kind uint) bool {
	switch kind {
	case AND, OR, IMPLIES:
		return true
	default:
		return false
	}
}

// Token is a lexical unit of a formula.  Tokens retain their text, as well as
// the span of the original text they were formed from.
type Token struct {
	Kind uint
	Text string
	Span source.Span
}

func (t Token) String() string {
	return t.Text
}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Satisfies(unicode.IsSpace))

// Rule for describing lowercase identifiers, including quantifier keywords.
var lowerIdentifier lex.Scanner[rune] = lex.Then(
	lex.Within('a', 'z'),
	lex.Many(lex.Or(lex.Within('a', 'z'), lex.Within('0', '9'))))

// Rule for describing uppercase identifiers.
var upperIdentifier lex.Scanner[rune] = lex.Then(
	lex.Within('A', 'Z'),
	lex.Many(lex.Or(lex.Within('A', 'Z'), lex.Within('0', '9'))))

// lexing rules.  Since the lexer picks the longest match, "->" is never split.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LPAREN),
	lex.Rule(lex.Unit(')'), RPAREN),
	lex.Rule(lex.Unit('.'), DOT),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('~'), NEG),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.String("->"), IMPLIES),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lowerIdentifier, IDENT_LOWER),
	lex.Rule(upperIdentifier, IDENT_UPPER),
}

// Tokenize splits a given string into a sequence of tokens.  This never fails:
// whitespace is discarded, and any text which matches no lexical rule (e.g. a
// stray "$" or "_") is silently dropped.  Hence, problems with such text only
// surface when the tokens are parsed.
func Tokenize(text string) []Token {
	tokens, _ := tokenize(source.NewSourceFile("", []byte(text)))
	return tokens
}

// tokenize a given source file, returning both the tokens and the spans of any
// text which was dropped.
func tokenize(srcfile *source.File) ([]Token, []source.Span) {
	var (
		lexer  = lex.NewLexer(srcfile.Contents(), rules...)
		tokens = lexer.CollectSkipping()
	)
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	result := make([]Token, len(tokens))
	//
	for i, t := range tokens {
		result[i] = Token{t.Kind, srcfile.Text(t.Span), t.Span}
	}
	//
	return result, lexer.Skipped()
}

// KindName returns a human-readable name for a given token kind.
func KindName(kind uint) string {
	switch kind {
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case DOT:
		return "'.'"
	case COMMA:
		return "','"
	case NEG:
		return "'~'"
	case AND:
		return "'&'"
	case OR:
		return "'|'"
	case IMPLIES:
		return "'->'"
	case IDENT_LOWER:
		return "lowercase identifier"
	case IDENT_UPPER:
		return "uppercase identifier"
	case WHITESPACE:
		return "whitespace"
	}
	//
	return fmt.Sprintf("unknown token kind (%d)", kind)
}
