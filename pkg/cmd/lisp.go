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
	"github.com/consensys/go-fol/pkg/fol/lisp"
	"github.com/consensys/go-fol/pkg/util/source"
	"github.com/consensys/go-fol/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var lispCmd = &cobra.Command{
	Use:   "lisp [flags] [sexp...]",
	Short: "decode S-expression formulas into canonical form.",
	Long: `Decode one or more formulas written as S-expressions, such as
	"(forall x (implies (P x) (Q x)))", and print each in its canonical form.
	Formulas can be given directly on the command line, or read from files
	holding exactly one S-expression each.`,
	Run: func(cmd *cobra.Command, args []string) {
		colour := configure(cmd)
		files := GetStringArray(cmd, "file")
		//
		if len(args) == 0 && len(files) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		var srcfiles []*source.File
		//
		for i, arg := range args {
			srcfiles = append(srcfiles, source.NewSourceFile(fmt.Sprintf("<arg %d>", i+1), []byte(arg)))
		}
		//
		for _, filename := range files {
			srcfiles = append(srcfiles, readSourceFile(filename))
		}
		//
		if !decodeFiles(os.Stdout, srcfiles, colour) {
			os.Exit(4)
		}
	},
}

// Decode a set of source files, each holding exactly one S-expression, and print
// the resulting formulas in canonical form.  This returns false if any errors
// arose.
func decodeFiles(out io.Writer, srcfiles []*source.File, colour termio.Colouriser) bool {
	ok := true
	//
	for _, srcfile := range srcfiles {
		formula, srcmap, errs := lisp.Decode(srcfile)
		//
		for _, err := range errs {
			writeSyntaxError(out, &err, colour)
		}
		//
		if len(errs) != 0 {
			ok = false
			continue
		}
		//
		log.Debugf("%s: decoded %d formula nodes", srcfile.Filename(), srcmap.Size())
		fmt.Fprintln(out, ast.String(formula))
	}
	//
	return ok
}

func init() {
	rootCmd.AddCommand(lispCmd)
	lispCmd.Flags().StringArrayP("file", "f", nil, "read an S-expression from a file")
}
