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
package suite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-fol/pkg/fol/ast"
	"github.com/consensys/go-fol/pkg/fol/parser"
)

// Outcome records the result of running a single case.
type Outcome struct {
	// Case which was run.
	Case *Case
	// Formula produced by parsing (if any).
	Formula ast.Formula
	// Error produced by parsing (if any).
	Error *parser.ParseError
	// Reason why the case failed, or empty if it passed.
	Reason string
}

// Passed indicates whether the case met all of its expectations.
func (o Outcome) Passed() bool {
	return o.Reason == ""
}

// Run parses the input of this case and checks the result against what is
// expected.
func (c *Case) Run() Outcome {
	var (
		outcome = Outcome{Case: c}
		perr    *parser.ParseError
	)
	//
	formula, err := parser.Parse(c.Input)
	//
	if err != nil && !errors.As(err, &perr) {
		// Should be unreachable
		outcome.Reason = fmt.Sprintf("unexpected error: %s", err)
		return outcome
	}
	//
	outcome.Formula, outcome.Error = formula, perr
	//
	switch {
	case c.Expect.Ok && perr != nil:
		outcome.Reason = fmt.Sprintf("expected success, got \"%s\"", perr.Error())
	case c.Expect.Ok:
		outcome.Reason = c.checkFormula(formula)
	case perr == nil:
		outcome.Reason = fmt.Sprintf("expected failure, got %s", formula)
	default:
		outcome.Reason = c.checkError(perr)
	}
	//
	return outcome
}

func (c *Case) checkFormula(formula ast.Formula) string {
	rendering := ast.String(formula)
	//
	if c.Expect.Rendering != "" && c.Expect.Rendering != rendering {
		return fmt.Sprintf("expected \"%s\", got \"%s\"", c.Expect.Rendering, rendering)
	}
	// Rendering must be parseable back into the same formula
	reparsed, err := parser.Parse(rendering)
	if err != nil {
		return fmt.Sprintf("rendering \"%s\" does not parse (%s)", rendering, err)
	} else if !ast.Equal(formula, reparsed) {
		return fmt.Sprintf("rendering \"%s\" does not round trip", rendering)
	}
	//
	return ""
}

func (c *Case) checkError(perr *parser.ParseError) string {
	if c.Expect.Error != "" && !strings.Contains(perr.Message, c.Expect.Error) {
		return fmt.Sprintf("expected error containing \"%s\", got \"%s\"", c.Expect.Error, perr.Message)
	} else if c.Expect.Index != nil && *c.Expect.Index != perr.Index {
		return fmt.Sprintf("expected error at token %d, got token %d", *c.Expect.Index, perr.Index)
	}
	//
	return ""
}
