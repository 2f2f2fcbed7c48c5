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
	"reflect"
	"strconv"
	"testing"

	"github.com/consensys/go-fol/pkg/util/assert"
	"github.com/consensys/go-fol/pkg/util/source"
)

// ============================================================================
// Positive Tests
// ============================================================================

func TestSexp_01(t *testing.T) {
	e1 := List{nil}
	CheckOk(t, &e1, "()")
}

func TestSexp_02(t *testing.T) {
	e1 := List{nil}
	e2 := List{[]SExp{&e1}}
	CheckOk(t, &e2, "(())")
}

func TestSexp_03(t *testing.T) {
	e1 := Symbol{"symbol"}
	CheckOk(t, &e1, "symbol")
}

func TestSexp_04(t *testing.T) {
	e1 := Symbol{"symbol123"}
	e2 := List{[]SExp{&e1}}
	CheckOk(t, &e2, "(symbol123)")
}

func TestSexp_05(t *testing.T) {
	e1 := Symbol{"and"}
	e2 := Symbol{"P"}
	e3 := Symbol{"x"}
	e4 := List{[]SExp{&e2, &e3}}
	e5 := List{[]SExp{&e1, &e4, &e4}}
	CheckOk(t, &e5, "(and (P x) (P x))")
}

func TestSexp_06(t *testing.T) {
	e1 := Symbol{"hello"}
	e2 := Symbol{"world"}
	e3 := List{[]SExp{&e2}}
	e4 := List{[]SExp{&e1, &e3}}
	CheckOk(t, &e4, " ; greeting\n(hello\n\t(world)) ")
}

// ============================================================================
// Negative Tests
// ============================================================================

func TestSexp_Err1(t *testing.T) {
	CheckErr(t, ")", "unexpected end-of-list")
}

func TestSexp_Err2(t *testing.T) {
	CheckErr(t, "())", "unexpected remainder")
}

func TestSexp_Err3(t *testing.T) {
	CheckErr(t, "(string", "unexpected end-of-file")
}

func TestSexp_Err4(t *testing.T) {
	CheckErr(t, "", "unexpected end-of-file")
}

func TestSexp_Err5(t *testing.T) {
	CheckErr(t, "x y", "unexpected remainder")
}

// ============================================================================
// Source Maps
// ============================================================================

func TestSexp_SourceMap(t *testing.T) {
	srcfile := source.NewSourceFile("test", []byte("(not (P x))"))
	term, srcmap, err := Parse(srcfile)
	//
	assert.True(t, err == nil)
	assert.Equal(t, source.NewSpan(0, 11), srcmap.Get(term))
	assert.Equal(t, source.NewSpan(5, 10), srcmap.Get(term.AsList().Get(1)))
}

func TestSexp_String(t *testing.T) {
	list := NewList([]SExp{NewSymbol("P"), NewSymbol("hello world")})
	assert.Equal(t, "(P hello world)", list.String(false))
	assert.Equal(t, "(P \"hello world\")", list.String(true))
}

// ============================================================================
// Translation
// ============================================================================

func TestTranslator_01(t *testing.T) {
	value, srcmap, errs := translate("(add 1 (add 2 3))")
	//
	assert.True(t, len(errs) == 0)
	assert.Equal(t, 6, *value)
	assert.Equal(t, source.NewSpan(0, 17), srcmap.Get(value))
}

func TestTranslator_02(t *testing.T) {
	_, _, errs := translate("(add 1)")
	//
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "incorrect number of arguments (found 1, expected 2)", errs[0].Message())
}

func TestTranslator_03(t *testing.T) {
	_, _, errs := translate("(add one (add 2 three))")
	//
	assert.Equal(t, 2, len(errs))
	assert.Equal(t, "unknown symbol \"one\"", errs[0].Message())
	assert.Equal(t, "unknown symbol \"three\"", errs[1].Message())
}

func TestTranslator_04(t *testing.T) {
	_, _, errs := translate("(mul 1 2)")
	assert.Equal(t, "unknown list \"mul\"", errs[0].Message())
	//
	_, _, errs = translate("((add) 1 2)")
	assert.Equal(t, "invalid list", errs[0].Message())
}

// ============================================================================
// Helpers
// ============================================================================

// Translate a simple language of integer sums.
func translate(input string) (*int, *source.Map[*int], []source.SyntaxError) {
	s, srcmap, err := Parse(source.NewSourceFile("test", []byte(input)))
	if err != nil {
		return nil, nil, []source.SyntaxError{*err}
	}
	//
	translator := NewTranslator[*int](srcmap)
	translator.AddSymbolRule(func(symbol string) (*int, bool, error) {
		n, err := strconv.Atoi(symbol)
		return &n, err == nil, nil
	})
	translator.AddRecursiveListRule("add", 2, func(_ string, args []*int) (*int, error) {
		n := *args[0] + *args[1]
		return &n, nil
	})
	//
	value, errs := translator.Translate(s)
	//
	return value, translator.SourceMap(), errs
}

func CheckOk(t *testing.T, sexp1 SExp, input string) {
	sexp2, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err != nil {
		t.Error(err)
	} else if !reflect.DeepEqual(sexp1, sexp2) {
		t.Errorf("%s != %s", sexp1.String(true), sexp2.String(true))
	}
}

func CheckErr(t *testing.T, input string, msg string) {
	_, _, err := Parse(source.NewSourceFile("test", []byte(input)))
	//
	if err == nil {
		t.Errorf("input should not have parsed!")
	} else if err.Message() != msg {
		t.Errorf("unexpected error \"%s\" (expected \"%s\")", err.Message(), msg)
	}
}
