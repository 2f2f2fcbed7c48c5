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
package source

import (
	"fmt"
	"os"
	"sort"
)

// File is a named piece of source text, held as runes so that spans count
// characters rather than bytes.  It may have come from disk or from a single
// formula given on the command line.
type File struct {
	filename string
	contents []rune
	// Offset at which each line begins.  The first entry is always zero.
	lines []int
}

// ReadFile loads a source file from disk.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// NewSourceFile constructs a source file from raw (UTF-8) bytes.
func NewSourceFile(filename string, bytes []byte) *File {
	var (
		contents = []rune(string(bytes))
		lines    = []int{0}
	)
	//
	for i, r := range contents {
		if r == '\n' {
			lines = append(lines, i+1)
		}
	}
	//
	return &File{filename, contents, lines}
}

// Filename of this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text covered by a given span of this file.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// SyntaxError reports a message against a given span of this file.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine returns the line containing the start of a given
// span.  A span starting at (or beyond) the end of the file is placed on the
// last line.  Spans can cross lines, so the result need not enclose the whole
// span.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	// Index of the first line starting strictly after the span
	n := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > span.start })
	// Which is never the first line, since that starts at zero.
	start, end := s.lines[n-1], len(s.contents)
	//
	if n < len(s.lines) {
		// Exclude the newline
		end = s.lines[n] - 1
	}
	//
	return Line{s.contents, Span{start, end}, n}
}

// Line is a single line of a source file, without its terminating newline.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (p Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number of this line, counting from 1.
func (p Line) Number() int {
	return p.number
}

// Start returns the offset of this line within the file.
func (p Line) Start() int {
	return p.span.start
}

// Length returns the number of characters on this line.
func (p Line) Length() int {
	return p.span.Length()
}

// SyntaxError is an error message attached to a span of a source file.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile in which this error arose.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span of text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message describing this error.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error renders this error as "file:line:column: message", where columns count
// from 1.
func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	col := p.span.start - line.Start() + 1
	//
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, line.Number(), col, p.msg)
}

// FirstEnclosingLine returns the line on which this error starts.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
