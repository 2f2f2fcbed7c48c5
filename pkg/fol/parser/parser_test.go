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
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/consensys/go-fol/pkg/fol/ast"
	"github.com/consensys/go-fol/pkg/util/assert"
	"github.com/consensys/go-fol/pkg/util/source"
)

// ============================================================================
// Positive Tests
// ============================================================================

func Test_Parse_01(t *testing.T) {
	expected := ast.NewForall(ast.NewVariable("x"),
		ast.NewImplication(pred("P", v("x")), pred("Q", v("x"), c("A"))))
	//
	checkParse(t, "forall x. (P(x) -> Q(x, A))", expected)
}

func Test_Parse_02(t *testing.T) {
	expected := ast.NewExists(ast.NewVariable("y"),
		ast.NewNegation(ast.NewConjunction(pred("P", v("y")), pred("Q", v("y")))))
	//
	checkParse(t, "exists y. ~(P(y) & Q(y))", expected)
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "R(B, z)", pred("R", c("B"), v("z")))
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "P()", pred("P"))
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "~~P(x)", ast.NewNegation(ast.NewNegation(pred("P", v("x")))))
}

func Test_Parse_06(t *testing.T) {
	expected := ast.NewForall(ast.NewVariable("x"), ast.NewExists(ast.NewVariable("y"),
		ast.NewConjunction(pred("P", v("x")), pred("Q", v("y")))))
	//
	checkParse(t, "forall x. exists y. (P(x) & Q(y))", expected)
}

func Test_Parse_07(t *testing.T) {
	expected := ast.NewImplication(pred("P", v("x")),
		ast.NewDisjunction(pred("Q", v("x")), pred("R", v("x"))))
	//
	checkParse(t, "(P(x) -> (Q(x) | R(x)))", expected)
}

func Test_Parse_08(t *testing.T) {
	// Quantifier scope ends with the smallest formula following the dot.
	expected := ast.NewConjunction(ast.NewForall(ast.NewVariable("x"), pred("P", v("x"))), pred("Q", v("x")))
	//
	checkParse(t, "(forall x. P(x) & Q(x))", expected)
}

func Test_Parse_09(t *testing.T) {
	checkParse(t, "  P1(x1, C2)\n", pred("P1", v("x1"), c("C2")))
}

func Test_Parse_10(t *testing.T) {
	// Quantifier keywords are only keywords at the start of a formula.
	checkParse(t, "forall forall. P(forall)", ast.NewForall(ast.NewVariable("forall"), pred("P", v("forall"))))
}

func Test_Parse_11(t *testing.T) {
	// Unrecognised text is dropped by the tokenizer.
	checkParse(t, "P(x_1) $", pred("P", v("x")))
}

func Test_Parse_12(t *testing.T) {
	checkParse(t, "~(P(x) | ~Q(x))", ast.NewNegation(ast.NewDisjunction(pred("P", v("x")),
		ast.NewNegation(pred("Q", v("x"))))))
}

func Test_Parse_13(t *testing.T) {
	expected := ast.NewDisjunction(ast.NewForall(ast.NewVariable("x"), pred("P", v("x"))),
		ast.NewExists(ast.NewVariable("y"), pred("Q", v("y"))))
	//
	checkParse(t, "( (forall x. P(x)) | (exists y. Q(y)) )", expected)
}

func Test_Parse_14(t *testing.T) {
	// Redundant parentheses are discarded.
	checkParse(t, "~((P(x)))", ast.NewNegation(pred("P", v("x"))))
}

func Test_Parse_15(t *testing.T) {
	checkParse(t, "forall x. (P(x))", ast.NewForall(ast.NewVariable("x"), pred("P", v("x"))))
}

// ============================================================================
// Negative Tests
// ============================================================================

func Test_Invalid_Parse_01(t *testing.T) {
	checkError(t, "forall x P(x)", UNEXPECTED_TOKEN, 2, "expected '.' but found 'P'")
}

func Test_Invalid_Parse_02(t *testing.T) {
	checkError(t, "(P(x) & Q(x)", UNEXPECTED_END, 10, "unexpected end of input, expected ')'")
}

func Test_Invalid_Parse_03(t *testing.T) {
	checkError(t, "", UNEXPECTED_END, 0, "unexpected end of input, expected a formula")
}

func Test_Invalid_Parse_04(t *testing.T) {
	checkError(t, "(P(x) ~ Q(x))", UNKNOWN_OPERATOR, 5, "unknown binary operator: '~'")
}

func Test_Invalid_Parse_05(t *testing.T) {
	checkError(t, "forall X. P(X)", INVALID_BOUND_VARIABLE, 1,
		"expected a lowercase variable after quantifier, but got 'X'")
}

func Test_Invalid_Parse_06(t *testing.T) {
	checkError(t, "P(x, ~)", INVALID_TERM, 4, "invalid term: '~'")
}

func Test_Invalid_Parse_07(t *testing.T) {
	checkError(t, "P(x) Q(x)", TRAILING_INPUT, 4, "unexpected token 'Q' at end of expression")
}

func Test_Invalid_Parse_08(t *testing.T) {
	checkError(t, "P(x y)", UNEXPECTED_TOKEN, 3, "expected ',' or ')' but found 'y'")
}

func Test_Invalid_Parse_09(t *testing.T) {
	checkError(t, "x", UNEXPECTED_TOKEN, 0, "unexpected token for a formula: 'x'")
}

func Test_Invalid_Parse_10(t *testing.T) {
	checkError(t, "P", UNEXPECTED_END, 1, "unexpected end of input, expected '('")
}

func Test_Invalid_Parse_11(t *testing.T) {
	checkError(t, "forall", UNEXPECTED_END, 1, "unexpected end of input, expected a lowercase variable after quantifier")
}

func Test_Invalid_Parse_12(t *testing.T) {
	checkError(t, "P(x,", UNEXPECTED_END, 4, "unexpected end of input, expected a term")
}

func Test_Invalid_Parse_13(t *testing.T) {
	checkError(t, "~", UNEXPECTED_END, 1, "unexpected end of input, expected a formula")
}

func Test_Invalid_Parse_14(t *testing.T) {
	checkError(t, "(P(x) &", UNEXPECTED_END, 6, "unexpected end of input, expected a formula")
}

func Test_Invalid_Parse_15(t *testing.T) {
	checkError(t, "(P(x)", UNEXPECTED_END, 5, "unexpected end of input, expected a binary operator or ')'")
}

func Test_Invalid_Parse_16(t *testing.T) {
	checkError(t, "Pa(x)", UNEXPECTED_TOKEN, 1, "expected '(' but found 'a'")
}

func Test_Invalid_Parse_17(t *testing.T) {
	checkError(t, "(P(x) Q(x))", UNKNOWN_OPERATOR, 5, "unknown binary operator: 'Q'")
}

func Test_Invalid_Parse_18(t *testing.T) {
	checkError(t, "exists y P(y)", UNEXPECTED_TOKEN, 2, "expected '.' but found 'P'")
}

func Test_Invalid_Parse_19(t *testing.T) {
	checkError(t, "P(x))", TRAILING_INPUT, 4, "unexpected token ')' at end of expression")
}

// ============================================================================
// Round Trip
// ============================================================================

func Test_RoundTrip(t *testing.T) {
	inputs := []string{
		"forall x. (P(x) -> Q(x, A))",
		"exists y. ~(P(y) & Q(y))",
		"R(B, z)",
		"P()",
		"~~P(x)",
		"(forall x. P(x) & Q(x))",
		"forall x. exists y. (P(x) & Q(y))",
		"((P(x) | Q(x)) -> ~(R(A, B, c) & S()))",
		"forall forall. P(forall)",
	}
	//
	for _, input := range inputs {
		checkRoundTrip(t, input)
	}
}

// Formulas built directly from the constructors survive a trip through their
// rendering.
func Test_RoundTrip_Generated(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	//
	for i := 0; i < 1000; i++ {
		formula := randomFormula(rng, 4)
		rendering := ast.String(formula)
		//
		parsed, err := Parse(rendering)
		if err != nil {
			t.Fatalf("parsing \"%s\" failed: %s", rendering, err)
		} else if !ast.Equal(formula, parsed) {
			t.Fatalf("parsing \"%s\" gave %s", rendering, parsed)
		}
	}
}

// Parsing shares no state between calls, and the resulting formulas can be
// read from any number of goroutines.
func Test_Parse_Concurrent(t *testing.T) {
	var (
		inputs = []string{
			"forall x. (P(x) -> exists y. Q(x, y))",
			"~(P(A) | (Q(x) & R()))",
			"exists z1. forall forall. P(z1, forall)",
		}
		shared, _ = Parse(inputs[0])
		rendering = shared.String()
		wg        sync.WaitGroup
		failures  = make(chan string, 16)
	)
	//
	for g := 0; g < 16; g++ {
		wg.Add(1)
		//
		go func(g int) {
			defer wg.Done()
			//
			for i := 0; i < 100; i++ {
				input := inputs[(g+i)%len(inputs)]
				formula, err := Parse(input)
				//
				if err != nil {
					failures <- err.Error()
					return
				}
				//
				reparsed, err := Parse(formula.String())
				//
				if err != nil || !ast.Equal(formula, reparsed) {
					failures <- "round trip failed for " + input
					return
				} else if shared.String() != rendering || (input == inputs[0] && !ast.Equal(shared, formula)) {
					failures <- "shared formula changed"
					return
				}
			}
		}(g)
	}
	//
	wg.Wait()
	close(failures)
	//
	for failure := range failures {
		t.Error(failure)
	}
}

func Test_Render(t *testing.T) {
	formula, err := Parse("forall x.(P(x)->~Q(x,A))")
	//
	assert.NoError(t, err)
	assert.Equal(t, "forall x. ((P(x) -> ~(Q(x, A))))", formula.String())
}

// ============================================================================
// Source Maps & Errors
// ============================================================================

func Test_SourceMap(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("~(P(x) & Q(A))"))
	formula, srcmap, err := ParseSourceFile(srcfile)
	//
	assert.True(t, err == nil)
	//
	neg := formula.(*ast.Negation)
	conj := neg.Operand().(*ast.Conjunction)
	//
	assert.Equal(t, source.NewSpan(0, 14), srcmap.Get(neg))
	assert.Equal(t, source.NewSpan(1, 14), srcmap.Get(conj))
	assert.Equal(t, source.NewSpan(2, 6), srcmap.Get(conj.Left()))
	assert.Equal(t, source.NewSpan(9, 13), srcmap.Get(conj.Right()))
	assert.Equal(t, 4, srcmap.Size())
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("forall x P(x)"))
	_, _, err := ParseSourceFile(srcfile)
	//
	serr := err.SyntaxError()
	//
	assert.Equal(t, source.NewSpan(9, 10), serr.Span())
	assert.Equal(t, "expected '.' but found 'P'", serr.Message())
	assert.False(t, err.AtEnd())
}

func Test_SyntaxError_02(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("P(x"))
	_, _, err := ParseSourceFile(srcfile)
	//
	serr := err.SyntaxError()
	//
	assert.Equal(t, source.NewSpan(3, 3), serr.Span())
	assert.True(t, err.AtEnd())
}

func Test_ErrorsAs(t *testing.T) {
	var perr *ParseError
	//
	_, err := Parse("forall x P(x)")
	//
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Index)
	assert.Equal(t, "P", perr.Token.Text)
	assert.Equal(t, "expected '.' but found 'P' (token 2)", err.Error())
}

// ============================================================================
// Helpers
// ============================================================================

func v(name string) ast.Term { return ast.NewVariableTerm(name) }

func c(name string) ast.Term { return ast.NewConstantTerm(name) }

func pred(name string, args ...ast.Term) *ast.Predicate { return ast.NewPredicate(name, args...) }

func checkParse(t *testing.T, input string, expected ast.Formula) {
	t.Helper()
	//
	actual, err := Parse(input)
	//
	if err != nil {
		t.Fatalf("unexpected error parsing \"%s\": %s", input, err)
	} else if !ast.Equal(expected, actual) {
		t.Fatalf("parsing \"%s\" gave %s, expected %s", input, actual, expected)
	}
	//
	checkRoundTrip(t, input)
}

func checkError(t *testing.T, input string, kind ErrorKind, index int, msg string) {
	t.Helper()
	//
	var perr *ParseError
	//
	formula, err := Parse(input)
	//
	if err == nil {
		t.Fatalf("parsing \"%s\" should have failed, but gave %s", input, formula)
	} else if !errors.As(err, &perr) {
		t.Fatalf("unexpected error type %T", err)
	}
	//
	assert.True(t, formula == nil)
	assert.Equal(t, kind, perr.Kind, "wrong error kind %s", perr.Kind)
	assert.Equal(t, index, perr.Index)
	assert.Equal(t, msg, perr.Message)
}

// Parsing the canonical rendering of a formula gives back the same formula,
// whose rendering is unchanged.
func checkRoundTrip(t *testing.T, input string) {
	t.Helper()
	//
	first, err := Parse(input)
	assert.NoError(t, err)
	//
	rendering := first.String()
	second, err := Parse(rendering)
	//
	if err != nil {
		t.Fatalf("reparsing \"%s\" failed: %s", rendering, err)
	} else if !ast.Equal(first, second) {
		t.Fatalf("reparsing \"%s\" gave %s", rendering, second)
	}
	//
	assert.Equal(t, rendering, second.String())
}

var (
	lowerNames = []string{"x", "y", "z1", "ab", "forall", "exists"}
	upperNames = []string{"P", "Q", "R2", "AB"}
)

// Build a random formula, nesting connectives and quantifiers at most depth
// deep.
func randomFormula(rng *rand.Rand, depth int) ast.Formula {
	if depth == 0 {
		return randomPredicate(rng)
	}
	//
	switch rng.IntN(7) {
	case 0:
		return randomPredicate(rng)
	case 1:
		return ast.NewNegation(randomFormula(rng, depth-1))
	case 2:
		return ast.NewConjunction(randomFormula(rng, depth-1), randomFormula(rng, depth-1))
	case 3:
		return ast.NewDisjunction(randomFormula(rng, depth-1), randomFormula(rng, depth-1))
	case 4:
		return ast.NewImplication(randomFormula(rng, depth-1), randomFormula(rng, depth-1))
	case 5:
		return ast.NewForall(ast.NewVariable(pick(rng, lowerNames)), randomFormula(rng, depth-1))
	default:
		return ast.NewExists(ast.NewVariable(pick(rng, lowerNames)), randomFormula(rng, depth-1))
	}
}

func randomPredicate(rng *rand.Rand) ast.Formula {
	args := make([]ast.Term, rng.IntN(4))
	//
	for i := range args {
		if rng.IntN(2) == 0 {
			args[i] = v(pick(rng, lowerNames))
		} else {
			args[i] = c(pick(rng, upperNames))
		}
	}
	//
	return pred(pick(rng, upperNames), args...)
}

func pick(rng *rand.Rand, names []string) string {
	return names[rng.IntN(len(names))]
}
