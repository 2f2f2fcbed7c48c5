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
	"strings"

	"github.com/consensys/go-fol/pkg/fol/ast"
	"github.com/consensys/go-fol/pkg/util/source"
)

// COMMENT_PREFIX marks a line which is ignored by ParseLines.
const COMMENT_PREFIX = "#"

// Line is the outcome of parsing a single line of a file holding one formula
// per line.  Exactly one of Formula and Error is non-nil.
type Line struct {
	// Line number, counting from 1.
	Number int
	// Span of the line within the file (excluding its terminator).
	Span source.Span
	// Formula parsed from this line (if successful).
	Formula ast.Formula
	// Spans of the formula nodes parsed from this line (if successful).
	SourceMap *source.Map[ast.Formula]
	// Error arising from this line (if unsuccessful).
	Error *ParseError
}

// ParseLines parses a source file holding one formula per line.  Lines which are
// blank, or whose first non-whitespace character is "#", are skipped.  Every
// other line is parsed independently of the others, such that errors are
// reported against the original file.
func ParseLines(srcfile *source.File) []Line {
	var (
		contents  = srcfile.Contents()
		tokens, _ = tokenize(srcfile)
		lines     []Line
		start     = 0
		number    = 1
	)
	//
	for start <= len(contents) {
		brk := lineEnd(contents, start)
		end := brk
		// Exclude the carriage return of a CRLF terminator
		if end > start && contents[end-1] == '\r' {
			end--
		}
		//
		text := strings.TrimSpace(string(contents[start:end]))
		// Identify tokens on this line
		n := 0
		for n < len(tokens) && tokens[n].Span.Start() < end {
			n++
		}
		//
		if text != "" && !strings.HasPrefix(text, COMMENT_PREFIX) {
			line := Line{Number: number, Span: source.NewSpan(start, end)}
			parser := newParser(srcfile, tokens[:n], end)
			//
			if formula, err := parser.Parse(); err != nil {
				line.Error = err
			} else {
				line.Formula, line.SourceMap = formula, parser.SourceMap()
			}
			//
			lines = append(lines, line)
		}
		// Move to next line
		tokens = tokens[n:]
		start = brk + 1
		number++
	}
	//
	return lines
}

// Find the end of the line starting at a given position.
func lineEnd(text []rune, start int) int {
	for i := start; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	//
	return len(text)
}
