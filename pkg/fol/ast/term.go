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
	"github.com/consensys/go-fol/pkg/util/source/sexp"
)

// Term represents an argument of a predicate, which is either a variable or a
// constant.  Terms only ever appear within the argument list of a predicate,
// and are kept distinct from the Variable and Constant formulas.
type Term interface {
	// Name returns the identifier of this term.
	Name() string
	// Lisp converts this term into a simple S-Expression, for example so it
	// can be printed.
	Lisp() sexp.SExp
	// String returns the canonical rendering of this term.
	String() string
	// Marks the closed set of term kinds.
	isTerm()
}

// ============================================================================
// VariableTerm
// ============================================================================

// VariableTerm represents a variable used as a predicate argument.
type VariableTerm struct {
	name string
}

// NewVariableTerm constructs a variable term.  This panics if the name does
// not have the shape of a variable.
func NewVariableTerm(name string) *VariableTerm {
	checkLowerIdentifier(name)
	return &VariableTerm{name}
}

// Name returns the name of this variable.
func (t *VariableTerm) Name() string { return t.name }

// Lisp converts this term into a simple S-Expression.
func (t *VariableTerm) Lisp() sexp.SExp { return sexp.NewSymbol(t.name) }

func (t *VariableTerm) String() string { return t.name }

func (t *VariableTerm) isTerm() {}

// ============================================================================
// ConstantTerm
// ============================================================================

// ConstantTerm represents a constant used as a predicate argument.
type ConstantTerm struct {
	name string
}

// NewConstantTerm constructs a constant term.  This panics if the name does
// not have the shape of a constant.
func NewConstantTerm(name string) *ConstantTerm {
	checkUpperIdentifier(name)
	return &ConstantTerm{name}
}

// Name returns the name of this constant.
func (t *ConstantTerm) Name() string { return t.name }

// Lisp converts this term into a simple S-Expression.
func (t *ConstantTerm) Lisp() sexp.SExp { return sexp.NewSymbol(t.name) }

func (t *ConstantTerm) String() string { return t.name }

func (t *ConstantTerm) isTerm() {}
