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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-fol/pkg/fol/parser"
	"github.com/consensys/go-fol/pkg/util/source"
	"github.com/consensys/go-fol/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "interactively parse formulas.",
	Long: `Repeatedly read a formula, parse it and print it in canonical form
	(or report an error).  Line editing and history are available when the
	input is a terminal.  Press Ctrl-D to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		var reader termio.LineReader
		//
		colour := configure(cmd)
		asLisp := GetFlag(cmd, "lisp")
		prompt := GetString(cmd, "prompt")
		//
		if termio.IsTerminal(os.Stdin) {
			term, err := termio.NewTerminal(prompt)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			reader = term
		} else {
			reader = termio.NewLineScanner(os.Stdin, os.Stdout)
		}
		//
		err := runRepl(reader, asLisp, colour)
		// Restore terminal before reporting anything
		if cerr := reader.Close(); err == nil {
			err = cerr
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Read, parse and print formulas until the input is exhausted.
func runRepl(reader termio.LineReader, asLisp bool, colour termio.Colouriser) error {
	for n := 1; ; n++ {
		line, err := reader.ReadLine()
		//
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		} else if strings.TrimSpace(line) == "" {
			continue
		}
		//
		srcfile := source.NewSourceFile(fmt.Sprintf("<line %d>", n), []byte(line))
		logTokens(srcfile)
		//
		if formula, _, perr := parser.ParseSourceFile(srcfile); perr != nil {
			log.Debugf("%s: %s (%s)", srcfile.Filename(), perr.Kind, perr.Error())
			writeSyntaxError(reader, perr.SyntaxError(), colour)
		} else {
			fmt.Fprintln(reader, render(formula, asLisp))
		}
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("lisp", false, "print formulas as S-expressions")
	replCmd.Flags().String("prompt", "fol> ", "prompt to display before each formula")
}
