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
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// LineReader provides a source of input lines, such as for an interactive
// read-parse-print loop.  ReadLine returns io.EOF once input is exhausted.
type LineReader interface {
	io.Writer
	// ReadLine reads the next line of input, without its line terminator.
	ReadLine() (string, error)
	// Close releases any resources held by the reader.
	Close() error
}

// IsTerminal checks whether a given file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Terminal provides line editing (including history) over a raw-mode
// terminal.
type Terminal struct {
	// file descriptor for input.
	fd int
	// Underlying terminal
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
}

// NewTerminal constructs a new terminal over stdin / stdout which displays a
// given prompt before each line.
func NewTerminal(prompt string) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return nil, errors.New("invalid terminal")
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	return &Terminal{fd, term.NewTerminal(screen, prompt), state}, nil
}

// ReadLine reads the next line entered by the user.
func (t *Terminal) ReadLine() (string, error) {
	return t.xterm.ReadLine()
}

// Write some text to the terminal.  Since the terminal is in raw mode, line
// feeds are translated into carriage return / line feed pairs.
func (t *Terminal) Write(bytes []byte) (int, error) {
	return t.xterm.Write(bytes)
}

// Close restores the terminal to its original state.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.state)
}

// LineScanner reads lines from an arbitrary input stream, such as a pipe.  No
// prompt or line editing is provided.
type LineScanner struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineScanner constructs a line scanner reading from a given input, and
// writing to a given output.
func NewLineScanner(in io.Reader, out io.Writer) *LineScanner {
	return &LineScanner{bufio.NewScanner(in), out}
}

// ReadLine reads the next line from the input stream.
func (s *LineScanner) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	} else if err := s.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// Write some text to the output stream.
func (s *LineScanner) Write(bytes []byte) (int, error) {
	return s.out.Write(bytes)
}

// Close is a no-op, since the underlying streams are not owned by the scanner.
func (s *LineScanner) Close() error {
	return nil
}
