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
package lisp

import (
	"fmt"

	"github.com/consensys/go-fol/pkg/fol/ast"
	"github.com/consensys/go-fol/pkg/util/source"
	"github.com/consensys/go-fol/pkg/util/source/sexp"
)

// Encode a given formula as S-expression text.  For example, the formula
// "forall x. (P(x) -> Q(x))" is encoded as "(forall x (implies (P x) (Q x)))".
func Encode(formula ast.Formula) string {
	return formula.Lisp().String(false)
}

// Decode a formula from the S-expression text held in a given source file.
// Upon success, a source map is returned which relates every node of the
// formula to the span of text it was decoded from.  Otherwise, one or more
// syntax errors are returned.
func Decode(srcfile *source.File) (ast.Formula, *source.Map[ast.Formula], []source.SyntaxError) {
	s, srcmap, err := sexp.Parse(srcfile)
	// Check for parsing errors
	if err != nil {
		return nil, nil, []source.SyntaxError{*err}
	}
	//
	translator := newTranslator(srcmap)
	// Translate S-expression into a formula
	formula, errs := translator.Translate(s)
	if len(errs) != 0 {
		return nil, nil, errs
	}
	//
	return formula, translator.SourceMap(), nil
}

// DecodeString is a convenience wrapper around Decode for formulas which do not
// originate from a file.
func DecodeString(text string) (ast.Formula, error) {
	formula, _, errs := Decode(source.NewSourceFile("<input>", []byte(text)))
	//
	if len(errs) != 0 {
		return nil, &errs[0]
	}
	//
	return formula, nil
}

func newTranslator(srcmap *source.Map[sexp.SExp]) *sexp.Translator[ast.Formula] {
	p := sexp.NewTranslator[ast.Formula](srcmap)
	// Bare terms are rejected
	p.AddSymbolRule(atomRule)
	// Connectives
	p.AddRecursiveListRule(ast.NOT_SYMBOL, 1, negationRule)
	p.AddRecursiveListRule(ast.AND_SYMBOL, 2, binaryRule)
	p.AddRecursiveListRule(ast.OR_SYMBOL, 2, binaryRule)
	p.AddRecursiveListRule(ast.IMPLIES_SYMBOL, 2, binaryRule)
	p.AddListRule(ast.FORALL_SYMBOL, quantifierRule(p))
	p.AddListRule(ast.EXISTS_SYMBOL, quantifierRule(p))
	// Everything else must be a predicate
	p.AddDefaultListRule(predicateRule(p))
	//
	return p
}

// A variable or constant is a term, which can only appear as a predicate
// argument or a bound variable, never where a formula is expected.
func atomRule(name string) (ast.Formula, bool, error) {
	if ast.IsLowerIdentifier(name) || ast.IsUpperIdentifier(name) {
		return nil, true, fmt.Errorf("expected a formula, found term \"%s\"", name)
	}
	//
	return nil, false, nil
}

func negationRule(_ string, args []ast.Formula) (ast.Formula, error) {
	return ast.NewNegation(args[0]), nil
}

func binaryRule(op string, args []ast.Formula) (ast.Formula, error) {
	switch op {
	case ast.AND_SYMBOL:
		return ast.NewConjunction(args[0], args[1]), nil
	case ast.OR_SYMBOL:
		return ast.NewDisjunction(args[0], args[1]), nil
	default:
		return ast.NewImplication(args[0], args[1]), nil
	}
}

// The bound variable of a quantifier is a term, hence it is read directly rather
// than being translated as a formula.
func quantifierRule(p *sexp.Translator[ast.Formula]) sexp.ListRule[ast.Formula] {
	return func(l *sexp.List) (ast.Formula, []source.SyntaxError) {
		if l.Len() != 3 {
			msg := fmt.Sprintf("incorrect number of arguments (found %d, expected 2)", l.Len()-1)
			return nil, p.SyntaxErrors(l, msg)
		}
		//
		symbol := l.Get(1).AsSymbol()
		if symbol == nil || !ast.IsLowerIdentifier(symbol.Value) {
			return nil, p.SyntaxErrors(l.Get(1), "expected a lowercase variable after quantifier")
		}
		//
		body, errs := p.Translate(l.Get(2))
		if len(errs) != 0 {
			return nil, errs
		}
		//
		bound := ast.NewVariable(symbol.Value)
		//
		if l.Head().Value == ast.FORALL_SYMBOL {
			return ast.NewForall(bound, body), nil
		}
		//
		return ast.NewExists(bound, body), nil
	}
}

// Predicate arguments are terms rather than formulas, hence they are not
// translated recursively.
func predicateRule(p *sexp.Translator[ast.Formula]) sexp.ListRule[ast.Formula] {
	return func(l *sexp.List) (ast.Formula, []source.SyntaxError) {
		var errs []source.SyntaxError
		//
		name := l.Get(0).AsSymbol().Value
		if !ast.IsUpperIdentifier(name) {
			return nil, p.SyntaxErrors(l.Get(0), fmt.Sprintf("unknown operator \"%s\"", name))
		}
		//
		terms := make([]ast.Term, l.Len()-1)
		//
		for i := 1; i < l.Len(); i++ {
			var (
				arg    = l.Get(i)
				symbol = arg.AsSymbol()
			)
			//
			switch {
			case symbol != nil && ast.IsLowerIdentifier(symbol.Value):
				terms[i-1] = ast.NewVariableTerm(symbol.Value)
			case symbol != nil && ast.IsUpperIdentifier(symbol.Value):
				terms[i-1] = ast.NewConstantTerm(symbol.Value)
			default:
				errs = append(errs, *p.SyntaxError(arg, "invalid term"))
			}
		}
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return ast.NewPredicate(name, terms...), nil
	}
}
