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
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-fol/pkg/fol/ast"
	"github.com/consensys/go-fol/pkg/fol/lisp"
	"github.com/consensys/go-fol/pkg/fol/parser"
	"github.com/consensys/go-fol/pkg/util/source"
	"github.com/consensys/go-fol/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure logging for a given command, and determine whether or not colour
// should be used when reporting errors.
func configure(cmd *cobra.Command) termio.Colouriser {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	return termio.NewColouriser(GetFlag(cmd, "colour") && termio.IsTerminal(os.Stdout))
}

// Read a given source file, or exit if this fails.
func readSourceFile(filename string) *source.File {
	srcfile, err := source.ReadFile(filename)
	// Handle error
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return srcfile
}

// Render a formula either in its usual notation, or as an S-expression.
func render(formula ast.Formula, asLisp bool) string {
	if asLisp {
		return lisp.Encode(formula)
	}
	//
	return ast.String(formula)
}

// Log the tokens making up a given source file, along with any text which the
// tokenizer dropped.
func logTokens(srcfile *source.File) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	tokens, skipped := parser.TokenizeSourceFile(srcfile)
	//
	log.Debugf("%s: %d tokens %v", srcfile.Filename(), len(tokens), tokens)
	//
	for _, span := range skipped {
		log.Debugf("%s: dropped %q at %d", srcfile.Filename(), srcfile.Text(span), span.Start())
	}
}

// Print a syntax error with appropriate highlighting.
func writeSyntaxError(out io.Writer, err *source.SyntaxError, colour termio.Colouriser) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line, but always highlights
	// something)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, colour.Bold(termio.TERM_RED, err.Message()))
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Fprintln(out, colour.Colour(termio.TERM_RED, strings.Repeat("^", length)))
}
