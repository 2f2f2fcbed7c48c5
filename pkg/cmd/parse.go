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

	"github.com/consensys/go-fol/pkg/fol/ast"
	"github.com/consensys/go-fol/pkg/fol/parser"
	"github.com/consensys/go-fol/pkg/util"
	"github.com/consensys/go-fol/pkg/util/source"
	"github.com/consensys/go-fol/pkg/util/termio"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [formula...]",
	Short: "parse formulas and print them in canonical form.",
	Long: `Parse one or more formulas and print each in its canonical form (or
	as an S-expression).  Formulas can be given directly on the command line,
	or read from files holding one formula per line.  Blank lines and lines
	starting with "#" are ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		colour := configure(cmd)
		asLisp := GetFlag(cmd, "lisp")
		files := GetStringArray(cmd, "file")
		//
		if len(args) == 0 && len(files) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var srcfiles []*source.File
		// Formulas given on the command line
		for i, arg := range args {
			srcfiles = append(srcfiles, source.NewSourceFile(fmt.Sprintf("<arg %d>", i+1), []byte(arg)))
		}
		// Formulas given in files
		for _, filename := range files {
			srcfiles = append(srcfiles, readSourceFile(filename))
		}
		//
		if !parseFiles(os.Stdout, srcfiles, len(args), asLisp, colour) {
			os.Exit(4)
		}
	},
}

// Parse a set of source files, the first n of which hold exactly one formula and
// the remainder of which hold one formula per line.  Each formula is printed in
// turn, or a syntax error is reported.  This returns false if any errors arose.
func parseFiles(out io.Writer, srcfiles []*source.File, n int, asLisp bool, colour termio.Colouriser) bool {
	ok := true
	//
	for i, srcfile := range srcfiles {
		logTokens(srcfile)
		//
		if i < n {
			formula, _, err := parser.ParseSourceFile(srcfile)
			ok = report(out, formula, err, asLisp, colour) && ok
		} else {
			stats := util.NewPerfStats()
			lines := parser.ParseLines(srcfile)
			stats.Log("%s: parsed %d formulas", srcfile.Filename(), len(lines))
			//
			for _, line := range lines {
				ok = report(out, line.Formula, line.Error, asLisp, colour) && ok
			}
		}
	}
	//
	return ok
}

func report(out io.Writer, formula ast.Formula, err *parser.ParseError, asLisp bool, colour termio.Colouriser) bool {
	if err != nil {
		writeSyntaxError(out, err.SyntaxError(), colour)
		return false
	}
	//
	fmt.Fprintln(out, render(formula, asLisp))
	//
	return true
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("lisp", false, "print formulas as S-expressions")
	parseCmd.Flags().StringArrayP("file", "f", nil, "read formulas (one per line) from a file")
}
