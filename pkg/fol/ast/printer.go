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
	"fmt"
	"strings"
)

// String produces the canonical rendering of a given formula.  Predicates are
// written "P(t1, t2)", negations "~(f)", binary connectives as "(l & r)", "(l
// | r)" and "(l -> r)", and quantifiers as "forall x. (f)" or "exists x.
// (f)".  The canonical rendering of any parsed formula can be parsed back into
// a structurally identical formula.
func String(f Formula) string {
	var builder strings.Builder
	//
	writeFormula(&builder, f)
	//
	return builder.String()
}

func writeFormula(out *strings.Builder, f Formula) {
	switch f := f.(type) {
	case *Variable:
		out.WriteString(f.name)
	case *Constant:
		out.WriteString(f.name)
	case *Predicate:
		out.WriteString(f.name)
		out.WriteString("(")
		//
		for i, arg := range f.args {
			if i != 0 {
				out.WriteString(", ")
			}
			//
			out.WriteString(arg.Name())
		}
		//
		out.WriteString(")")
	case *Negation:
		out.WriteString("~(")
		writeFormula(out, f.operand)
		out.WriteString(")")
	case *Conjunction:
		writeBinary(out, f.left, "&", f.right)
	case *Disjunction:
		writeBinary(out, f.left, "|", f.right)
	case *Implication:
		writeBinary(out, f.left, "->", f.right)
	case *Forall:
		writeQuantifier(out, FORALL_SYMBOL, f.bound, f.body)
	case *Exists:
		writeQuantifier(out, EXISTS_SYMBOL, f.bound, f.body)
	default:
		panic(fmt.Sprintf("unknown formula encountered (%T)", f))
	}
}

func writeBinary(out *strings.Builder, left Formula, op string, right Formula) {
	out.WriteString("(")
	writeFormula(out, left)
	out.WriteString(" ")
	out.WriteString(op)
	out.WriteString(" ")
	writeFormula(out, right)
	out.WriteString(")")
}

func writeQuantifier(out *strings.Builder, keyword string, bound *Variable, body Formula) {
	out.WriteString(keyword)
	out.WriteString(" ")
	out.WriteString(bound.name)
	out.WriteString(". (")
	writeFormula(out, body)
	out.WriteString(")")
}
