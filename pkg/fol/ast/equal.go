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

import "fmt"

// Equal determines whether two formulas are structurally identical.  That is,
// they are of the same kind, have the same names, and their children are
// pairwise structurally identical.
func Equal(lhs Formula, rhs Formula) bool {
	switch l := lhs.(type) {
	case *Variable:
		r, ok := rhs.(*Variable)
		return ok && l.name == r.name
	case *Constant:
		r, ok := rhs.(*Constant)
		return ok && l.name == r.name
	case *Predicate:
		r, ok := rhs.(*Predicate)
		return ok && l.name == r.name && equalTerms(l.args, r.args)
	case *Negation:
		r, ok := rhs.(*Negation)
		return ok && Equal(l.operand, r.operand)
	case *Conjunction:
		r, ok := rhs.(*Conjunction)
		return ok && Equal(l.left, r.left) && Equal(l.right, r.right)
	case *Disjunction:
		r, ok := rhs.(*Disjunction)
		return ok && Equal(l.left, r.left) && Equal(l.right, r.right)
	case *Implication:
		r, ok := rhs.(*Implication)
		return ok && Equal(l.left, r.left) && Equal(l.right, r.right)
	case *Forall:
		r, ok := rhs.(*Forall)
		return ok && l.bound.name == r.bound.name && Equal(l.body, r.body)
	case *Exists:
		r, ok := rhs.(*Exists)
		return ok && l.bound.name == r.bound.name && Equal(l.body, r.body)
	}
	//
	panic(fmt.Sprintf("unknown formula encountered (%T)", lhs))
}

// EqualTerm determines whether two terms are structurally identical.
func EqualTerm(lhs Term, rhs Term) bool {
	switch l := lhs.(type) {
	case *VariableTerm:
		r, ok := rhs.(*VariableTerm)
		return ok && l.name == r.name
	case *ConstantTerm:
		r, ok := rhs.(*ConstantTerm)
		return ok && l.name == r.name
	}
	//
	panic(fmt.Sprintf("unknown term encountered (%T)", lhs))
}

func equalTerms(lhs []Term, rhs []Term) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !EqualTerm(lhs[i], rhs[i]) {
			return false
		}
	}
	//
	return true
}
