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
package ast

import (
	"slices"

	"github.com/consensys/go-fol/pkg/util/source/sexp"
)

// Formula represents a formula of first-order logic.  The set of formula kinds
// is closed: Variable, Constant, Predicate, Negation, Conjunction,
// Disjunction, Implication, Forall and Exists.  Formulas are immutable once
// constructed, and each composite formula exclusively owns its children.
type Formula interface {
	// Lisp converts this formula into a simple S-Expression, for example so it
	// can be printed or exchanged.
	Lisp() sexp.SExp
	// String returns the canonical rendering of this formula.
	String() string
	// Marks the closed set of formula kinds.
	isFormula()
}

// Connective symbols as used in the S-Expression form.
const (
	NOT_SYMBOL     = "not"
	AND_SYMBOL     = "and"
	OR_SYMBOL      = "or"
	IMPLIES_SYMBOL = "implies"
	FORALL_SYMBOL  = "forall"
	EXISTS_SYMBOL  = "exists"
)

// ============================================================================
// Variable
// ============================================================================

// Variable represents a variable standing as a formula in its own right.  This
// is also the kind of the variable bound by a quantifier.
type Variable struct {
	name string
}

// NewVariable constructs a new variable.  This panics if the name does not
// have the shape of a variable.
func NewVariable(name string) *Variable {
	checkLowerIdentifier(name)
	return &Variable{name}
}

// Name returns the name of this variable.
func (f *Variable) Name() string { return f.name }

// Lisp converts this formula into a simple S-Expression.
func (f *Variable) Lisp() sexp.SExp { return sexp.NewSymbol(f.name) }

func (f *Variable) String() string { return String(f) }

func (f *Variable) isFormula() {}

// ============================================================================
// Constant
// ============================================================================

// Constant represents a constant standing as a formula in its own right.
type Constant struct {
	name string
}

// NewConstant constructs a new constant.  This panics if the name does not
// have the shape of a constant.
func NewConstant(name string) *Constant {
	checkUpperIdentifier(name)
	return &Constant{name}
}

// Name returns the name of this constant.
func (f *Constant) Name() string { return f.name }

// Lisp converts this formula into a simple S-Expression.
func (f *Constant) Lisp() sexp.SExp { return sexp.NewSymbol(f.name) }

func (f *Constant) String() string { return String(f) }

func (f *Constant) isFormula() {}

// ============================================================================
// Predicate
// ============================================================================

// Predicate represents a named relation applied to an ordered list of zero or
// more terms.
type Predicate struct {
	name string
	args []Term
}

// NewPredicate constructs a new predicate application.  The given arguments
// are copied, hence subsequent changes to the slice do not affect the
// predicate.  This panics if the name does not have the shape of a constant,
// or any argument is nil.
func NewPredicate(name string, args ...Term) *Predicate {
	checkUpperIdentifier(name)
	//
	for _, arg := range args {
		if arg == nil {
			panic("nil predicate argument")
		}
	}
	//
	return &Predicate{name, slices.Clone(args)}
}

// Name returns the name of this predicate.
func (f *Predicate) Name() string { return f.name }

// Arity returns the number of arguments of this predicate.
func (f *Predicate) Arity() uint { return uint(len(f.args)) }

// Arg returns the ith argument of this predicate.
func (f *Predicate) Arg(i uint) Term { return f.args[i] }

// Args returns a copy of the arguments of this predicate.
func (f *Predicate) Args() []Term { return slices.Clone(f.args) }

// Lisp converts this formula into a simple S-Expression.
func (f *Predicate) Lisp() sexp.SExp {
	elements := make([]sexp.SExp, len(f.args)+1)
	elements[0] = sexp.NewSymbol(f.name)
	//
	for i, arg := range f.args {
		elements[i+1] = arg.Lisp()
	}
	//
	return sexp.NewList(elements)
}

func (f *Predicate) String() string { return String(f) }

func (f *Predicate) isFormula() {}

// ============================================================================
// Negation
// ============================================================================

// Negation represents the logical negation of a formula.
type Negation struct {
	operand Formula
}

// NewNegation constructs a new negation.
func NewNegation(operand Formula) *Negation {
	checkNotNil(operand)
	return &Negation{operand}
}

// Operand returns the formula being negated.
func (f *Negation) Operand() Formula { return f.operand }

// Lisp converts this formula into a simple S-Expression.
func (f *Negation) Lisp() sexp.SExp {
	return lispOf(NOT_SYMBOL, f.operand.Lisp())
}

func (f *Negation) String() string { return String(f) }

func (f *Negation) isFormula() {}

// ============================================================================
// Conjunction
// ============================================================================

// Conjunction represents the logical conjunction of two formulas.
type Conjunction struct {
	left  Formula
	right Formula
}

// NewConjunction constructs a new conjunction.
func NewConjunction(left Formula, right Formula) *Conjunction {
	checkNotNil(left, right)
	return &Conjunction{left, right}
}

// Left returns the left-hand side of this conjunction.
func (f *Conjunction) Left() Formula { return f.left }

// Right returns the right-hand side of this conjunction.
func (f *Conjunction) Right() Formula { return f.right }

// Lisp converts this formula into a simple S-Expression.
func (f *Conjunction) Lisp() sexp.SExp {
	return lispOf(AND_SYMBOL, f.left.Lisp(), f.right.Lisp())
}

func (f *Conjunction) String() string { return String(f) }

func (f *Conjunction) isFormula() {}

// ============================================================================
// Disjunction
// ============================================================================

// Disjunction represents the logical disjunction of two formulas.
type Disjunction struct {
	left  Formula
	right Formula
}

// NewDisjunction constructs a new disjunction.
func NewDisjunction(left Formula, right Formula) *Disjunction {
	checkNotNil(left, right)
	return &Disjunction{left, right}
}

// Left returns the left-hand side of this disjunction.
func (f *Disjunction) Left() Formula { return f.left }

// Right returns the right-hand side of this disjunction.
func (f *Disjunction) Right() Formula { return f.right }

// Lisp converts this formula into a simple S-Expression.
func (f *Disjunction) Lisp() sexp.SExp {
	return lispOf(OR_SYMBOL, f.left.Lisp(), f.right.Lisp())
}

func (f *Disjunction) String() string { return String(f) }

func (f *Disjunction) isFormula() {}

// ============================================================================
// Implication
// ============================================================================

// Implication represents a logical implication, where the left-hand side is
// the premise and the right-hand side the conclusion.
type Implication struct {
	left  Formula
	right Formula
}

// NewImplication constructs a new implication.
func NewImplication(left Formula, right Formula) *Implication {
	checkNotNil(left, right)
	return &Implication{left, right}
}

// Left returns the premise of this implication.
func (f *Implication) Left() Formula { return f.left }

// Right returns the conclusion of this implication.
func (f *Implication) Right() Formula { return f.right }

// Lisp converts this formula into a simple S-Expression.
func (f *Implication) Lisp() sexp.SExp {
	return lispOf(IMPLIES_SYMBOL, f.left.Lisp(), f.right.Lisp())
}

func (f *Implication) String() string { return String(f) }

func (f *Implication) isFormula() {}

// ============================================================================
// Forall
// ============================================================================

// Forall represents universal quantification of a variable over a body.
type Forall struct {
	bound *Variable
	body  Formula
}

// NewForall constructs a new universal quantifier.
func NewForall(bound *Variable, body Formula) *Forall {
	if bound == nil {
		panic("nil bound variable")
	}
	//
	checkNotNil(body)
	//
	return &Forall{bound, body}
}

// Bound returns the variable bound by this quantifier.
func (f *Forall) Bound() *Variable { return f.bound }

// Body returns the formula over which this quantifier ranges.
func (f *Forall) Body() Formula { return f.body }

// Lisp converts this formula into a simple S-Expression.
func (f *Forall) Lisp() sexp.SExp {
	return lispOf(FORALL_SYMBOL, f.bound.Lisp(), f.body.Lisp())
}

func (f *Forall) String() string { return String(f) }

func (f *Forall) isFormula() {}

// ============================================================================
// Exists
// ============================================================================

// Exists represents existential quantification of a variable over a body.
type Exists struct {
	bound *Variable
	body  Formula
}

// NewExists constructs a new existential quantifier.
func NewExists(bound *Variable, body Formula) *Exists {
	if bound == nil {
		panic("nil bound variable")
	}
	//
	checkNotNil(body)
	//
	return &Exists{bound, body}
}

// Bound returns the variable bound by this quantifier.
func (f *Exists) Bound() *Variable { return f.bound }

// Body returns the formula over which this quantifier ranges.
func (f *Exists) Body() Formula { return f.body }

// Lisp converts this formula into a simple S-Expression.
func (f *Exists) Lisp() sexp.SExp {
	return lispOf(EXISTS_SYMBOL, f.bound.Lisp(), f.body.Lisp())
}

func (f *Exists) String() string { return String(f) }

func (f *Exists) isFormula() {}

// ============================================================================
// Helpers
// ============================================================================

func lispOf(head string, args ...sexp.SExp) sexp.SExp {
	elements := make([]sexp.SExp, len(args)+1)
	elements[0] = sexp.NewSymbol(head)
	copy(elements[1:], args)
	//
	return sexp.NewList(elements)
}

func checkNotNil(formulas ...Formula) {
	for _, f := range formulas {
		if f == nil {
			panic("nil formula")
		}
	}
}
