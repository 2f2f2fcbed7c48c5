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
package termio

import (
	"fmt"
	"strings"
)

// TERM_RED represents red
const TERM_RED = uint(1)

// TERM_GREEN represents green
const TERM_GREEN = uint(2)

// TERM_YELLOW represents yellow
const TERM_YELLOW = uint(3)

// TERM_CYAN represents cyan
const TERM_CYAN = uint(6)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal.  Escapes are built up by chaining, for example
// BoldAnsiEscape().FgColour(TERM_RED).Build().
type AnsiEscape struct {
	codes []string
}

// ResetAnsiEscape constructs an escape which resets all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"0"}}
}

// BoldAnsiEscape constructs an escape for bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"1"}}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(fmt.Sprintf("%d", 30+col))
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("\033[%sm", strings.Join(p.codes, ";"))
}

func (p AnsiEscape) with(code string) AnsiEscape {
	codes := make([]string, len(p.codes), len(p.codes)+1)
	copy(codes, p.codes)
	//
	return AnsiEscape{append(codes, code)}
}

// Colouriser wraps text in ANSI escapes, or leaves it untouched when colour is
// disabled (e.g. because output is not a terminal).
type Colouriser struct {
	enabled bool
}

// NewColouriser constructs a colouriser which is either enabled or disabled.
func NewColouriser(enabled bool) Colouriser {
	return Colouriser{enabled}
}

// Enabled indicates whether or not escapes are being emitted.
func (c Colouriser) Enabled() bool {
	return c.enabled
}

// Bold wraps text in a given colour, and emboldens it.
func (c Colouriser) Bold(col uint, text string) string {
	return c.wrap(BoldAnsiEscape().FgColour(col), text)
}

// Colour wraps text in a given foreground colour.
func (c Colouriser) Colour(col uint, text string) string {
	return c.wrap(AnsiEscape{}.FgColour(col), text)
}

func (c Colouriser) wrap(escape AnsiEscape, text string) string {
	if !c.enabled || text == "" {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}
