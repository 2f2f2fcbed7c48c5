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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a named collection of formula test cases, typically read from a
// YAML file such as the following:
//
//	name: quantifiers
//	cases:
//	  - name: nested
//	    input: "forall x. exists y. P(x, y)"
//	    expect:
//	      ok: true
//	      rendering: "forall x. (exists y. (P(x, y)))"
//	  - name: missing dot
//	    input: "forall x P(x)"
//	    expect:
//	      ok: false
//	      error: "expected '.'"
//	      index: 2
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a single formula along with what is expected from parsing it.
type Case struct {
	Name   string      `yaml:"name"`
	Input  string      `yaml:"input"`
	Expect Expectation `yaml:"expect"`
}

// Expectation describes the outcome expected for a given case.  Apart from Ok,
// every field is optional and only checked when present.
type Expectation struct {
	// Whether the input should parse successfully.
	Ok bool `yaml:"ok"`
	// Canonical rendering of a successfully parsed formula.
	Rendering string `yaml:"rendering,omitempty"`
	// Fragment which the error message of a failed parse should contain.
	Error string `yaml:"error,omitempty"`
	// Token index at which a failed parse should be reported.
	Index *int `yaml:"index,omitempty"`
}

// Load reads a suite from a given YAML file.
func Load(filename string) (*Suite, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return Decode(filename, data)
}

// Decode a suite from some YAML text.  Unknown fields are rejected, as are
// cases which are malformed (e.g. unnamed, or expecting both success and a
// specific error).
func Decode(filename string, data []byte) (*Suite, error) {
	var suite Suite
	//
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&suite); errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty test suite", filename)
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	// Default name
	if suite.Name == "" {
		suite.Name = filename
	}
	// Sanity check cases
	for i, c := range suite.Cases {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("%s: case %d: %w", filename, i+1, err)
		}
	}
	//
	return &suite, nil
}

// Run every case in this suite, in order.
func (s *Suite) Run() []Outcome {
	outcomes := make([]Outcome, len(s.Cases))
	//
	for i := range s.Cases {
		outcomes[i] = s.Cases[i].Run()
	}
	//
	return outcomes
}

func (c *Case) validate() error {
	switch {
	case c.Name == "":
		return errors.New("missing name")
	case c.Expect.Ok && c.Expect.Error != "":
		return fmt.Errorf("\"%s\" expects success, but gives an error", c.Name)
	case c.Expect.Ok && c.Expect.Index != nil:
		return fmt.Errorf("\"%s\" expects success, but gives an error index", c.Name)
	case !c.Expect.Ok && c.Expect.Rendering != "":
		return fmt.Errorf("\"%s\" expects failure, but gives a rendering", c.Name)
	}
	//
	return nil
}
