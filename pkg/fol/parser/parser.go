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

	"github.com/consensys/go-fol/pkg/fol/ast"
	"github.com/consensys/go-fol/pkg/util/source"
)

// Parse a given string into a formula.  The entire string must form exactly one
// formula, otherwise a *ParseError is returned.  Binary connectives must always
// be enclosed in parentheses, as in "(P(x) & Q(x))", whilst negations and
// quantifiers need not be.  For example:
//
//	forall x. (P(x) -> Q(x, A))
//	exists y. ~(P(y) & Q(y))
func Parse(text string) (ast.Formula, error) {
	formula, _, err := ParseSourceFile(source.NewSourceFile("", []byte(text)))
	// Avoid returning a typed nil as an error.
	if err != nil {
		return nil, err
	}
	//
	return formula, nil
}

// ParseSourceFile parses the contents of a given source file into a formula.
// On success, a source map is also returned which identifies the span of text
// from which each formula node was constructed.
func ParseSourceFile(srcfile *source.File) (ast.Formula, *source.Map[ast.Formula], *ParseError) {
	tokens, _ := TokenizeSourceFile(srcfile)
	parser := NewParser(srcfile, tokens)
	//
	formula, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}
	//
	return formula, parser.SourceMap(), nil
}

// TokenizeSourceFile splits the contents of a given source file into tokens, as
// for Tokenize.  The spans of any text which was silently dropped are also
// returned.
func TokenizeSourceFile(srcfile *source.File) ([]Token, []source.Span) {
	return tokenize(srcfile)
}

// Parser is a recursive-descent parser for formulas.  This operates over a
// sequence of tokens using a single cursor which only ever moves forwards:
// there is no backtracking.
type Parser struct {
	srcfile *source.File
	tokens  []Token
	// Position within the tokens
	index int
	// Position in the text where the input is considered to end.
	end int
	// Spans of constructed formulas
	srcmap *source.Map[ast.Formula]
}

// NewParser constructs a parser for a given sequence of tokens, where the
// tokens were produced from a given source file.
func NewParser(srcfile *source.File, tokens []Token) *Parser {
	return newParser(srcfile, tokens, len(srcfile.Contents()))
}

func newParser(srcfile *source.File, tokens []Token, end int) *Parser {
	return &Parser{srcfile, tokens, 0, end, source.NewSourceMap[ast.Formula](srcfile)}
}

// SourceMap returns the spans of all formula nodes constructed so far.
func (p *Parser) SourceMap() *source.Map[ast.Formula] {
	return p.srcmap
}

// Done determines whether or not the parser has consumed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index >= len(p.tokens)
}

// Parse exactly one formula which must consume all remaining tokens.
func (p *Parser) Parse() (ast.Formula, *ParseError) {
	formula, err := p.ParseFormula()
	//
	if err == nil && !p.Done() {
		token := p.tokens[p.index]
		return nil, p.errorAt(TRAILING_INPUT, fmt.Sprintf("unexpected token '%s' at end of expression", token.Text))
	}
	//
	return formula, err
}

// ParseFormula parses the next formula from the token stream, leaving any
// subsequent tokens unconsumed.
func (p *Parser) ParseFormula() (ast.Formula, *ParseError) {
	var (
		formula   ast.Formula
		err       *ParseError
		start     = p.index
		token, ok = p.lookahead()
	)
	//
	switch {
	case !ok:
		return nil, p.errorAtEnd("expected a formula")
	case token.Kind == LPAREN:
		formula, err = p.parseBinary()
	case token.Kind == NEG:
		formula, err = p.parseNegation()
	case token.Kind == IDENT_LOWER && isQuantifier(token):
		formula, err = p.parseQuantifier()
	case token.Kind == IDENT_UPPER:
		formula, err = p.parsePredicate()
	default:
		return nil, p.errorAt(UNEXPECTED_TOKEN, fmt.Sprintf("unexpected token for a formula: '%s'", token.Text))
	}
	//
	if err != nil {
		return nil, err
	}
	// Record span of formula, unless it was merely a parenthesised group whose
	// contents were already recorded.
	if !p.srcmap.Has(formula) {
		first, last := p.tokens[start].Span, p.tokens[p.index-1].Span
		p.srcmap.Put(formula, first.Join(last))
	}
	//
	return formula, nil
}

// Parse a parenthesised binary formula, such as "(P(x) -> Q(x))".  A
// parenthesised group without a connective, such as "(P(x))", is also accepted
// and yields the enclosed formula.  This is the form used when rendering the
// body of a negation or quantifier.
func (p *Parser) parseBinary() (ast.Formula, *ParseError) {
	p.expect(LPAREN)
	//
	left, err := p.ParseFormula()
	if err != nil {
		return nil, err
	}
	// Determine the connective
	op, ok := p.lookahead()
	//
	if !ok {
		return nil, p.errorAtEnd("expected a binary operator or ')'")
	} else if op.Kind == RPAREN {
		p.expect(RPAREN)
		return left, nil
	} else if !IsBinaryConnective(op.Kind) {
		return nil, p.errorAt(UNKNOWN_OPERATOR, fmt.Sprintf("unknown binary operator: '%s'", op.Text))
	}
	//
	p.expect(op.Kind)
	//
	right, err := p.ParseFormula()
	if err != nil {
		return nil, err
	} else if err = p.match(RPAREN); err != nil {
		return nil, err
	}
	//
	switch op.Kind {
	case AND:
		return ast.NewConjunction(left, right), nil
	case OR:
		return ast.NewDisjunction(left, right), nil
	default:
		return ast.NewImplication(left, right), nil
	}
}

// Parse a negation, such as "~P(x)" or "~(P(x) & Q(x))".
func (p *Parser) parseNegation() (ast.Formula, *ParseError) {
	p.expect(NEG)
	//
	operand, err := p.ParseFormula()
	if err != nil {
		return nil, err
	}
	//
	return ast.NewNegation(operand), nil
}

// Parse a quantified formula, such as "forall x. P(x)".  The body extends as far
// as the formula following the dot.
func (p *Parser) parseQuantifier() (ast.Formula, *ParseError) {
	keyword := p.expect(IDENT_LOWER)
	// Parse bound variable
	token, ok := p.lookahead()
	//
	if !ok {
		return nil, p.errorAtEnd("expected a lowercase variable after quantifier")
	} else if token.Kind != IDENT_LOWER {
		msg := fmt.Sprintf("expected a lowercase variable after quantifier, but got '%s'", token.Text)
		return nil, p.errorAt(INVALID_BOUND_VARIABLE, msg)
	}
	//
	variable := ast.NewVariable(p.expect(IDENT_LOWER).Text)
	//
	if err := p.match(DOT); err != nil {
		return nil, err
	}
	// Parse body
	body, err := p.ParseFormula()
	if err != nil {
		return nil, err
	}
	//
	if keyword.Text == FORALL_KEYWORD {
		return ast.NewForall(variable, body), nil
	}
	//
	return ast.NewExists(variable, body), nil
}

// Parse a predicate application, such as "P()" or "Q(x, A)".
func (p *Parser) parsePredicate() (ast.Formula, *ParseError) {
	var (
		name  = p.expect(IDENT_UPPER)
		terms []ast.Term
	)
	//
	if err := p.match(LPAREN); err != nil {
		return nil, err
	}
	// Parse arguments (if any)
	if !p.follows(RPAREN) {
		for {
			term, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			//
			terms = append(terms, term)
			//
			if p.follows(RPAREN) {
				break
			} else if !p.follows(COMMA) {
				return nil, p.expected("',' or ')'")
			}
			//
			p.expect(COMMA)
		}
	}
	//
	p.expect(RPAREN)
	//
	return ast.NewPredicate(name.Text, terms...), nil
}

// Parse a predicate argument, which is either a variable or a constant.
func (p *Parser) parseTerm() (ast.Term, *ParseError) {
	token, ok := p.lookahead()
	//
	switch {
	case !ok:
		return nil, p.errorAtEnd("expected a term")
	case token.Kind == IDENT_LOWER:
		p.index++
		return ast.NewVariableTerm(token.Text), nil
	case token.Kind == IDENT_UPPER:
		p.index++
		return ast.NewConstantTerm(token.Text), nil
	}
	//
	return nil, p.errorAt(INVALID_TERM, fmt.Sprintf("invalid term: '%s'", token.Text))
}

// ============================================================================
// Helpers
// ============================================================================

func isQuantifier(token Token) bool {
	return token.Text == FORALL_KEYWORD || token.Text == EXISTS_KEYWORD
}

// Lookahead returns the next token, or false if there are no more tokens.
func (p *Parser) lookahead() (Token, bool) {
	if p.index < len(p.tokens) {
		return p.tokens[p.index], true
	}
	//
	return Token{}, false
}

// Follows checks whether the next token has a given kind.
func (p *Parser) follows(kind uint) bool {
	token, ok := p.lookahead()
	return ok && token.Kind == kind
}

// Expect consumes a token of a given kind which is known to be next.  If it is
// not next, then this is an internal failure.
func (p *Parser) expect(kind uint) Token {
	if !p.follows(kind) {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

// Match consumes a token of a given kind, or reports an error if the next token
// is something else.
func (p *Parser) match(kind uint) *ParseError {
	if p.follows(kind) {
		p.index++
		return nil
	}
	//
	return p.expected(KindName(kind))
}

// Construct an error reporting that something other than the next token was
// expected.
func (p *Parser) expected(what string) *ParseError {
	if token, ok := p.lookahead(); ok {
		return p.errorAt(UNEXPECTED_TOKEN, fmt.Sprintf("expected %s but found '%s'", what, token.Text))
	}
	//
	return p.errorAtEnd("expected " + what)
}

// Construct an error at the current token.
func (p *Parser) errorAt(kind ErrorKind, msg string) *ParseError {
	token := p.tokens[p.index]
	return &ParseError{kind, msg, p.index, &token, p.srcfile, token.Span.End()}
}

// Construct an error for the input ending prematurely.
func (p *Parser) errorAtEnd(expected string) *ParseError {
	msg := "unexpected end of input, " + expected
	return &ParseError{UNEXPECTED_END, msg, len(p.tokens), nil, p.srcfile, p.end}
}
