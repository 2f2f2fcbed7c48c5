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

	"github.com/consensys/go-fol/pkg/fol/suite"
	"github.com/consensys/go-fol/pkg/util"
	"github.com/consensys/go-fol/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test [flags] suite_file...",
	Short: "run one or more YAML suites of formula test cases.",
	Long: `Run one or more suites of formula test cases, where each case
	gives an input formula along with the expected outcome of parsing it.
	Suites are written in YAML, for example:

	name: example
	cases:
	  - name: implication
	    input: "(P(x) -> Q(x))"
	    expect: {ok: true, rendering: "(P(x) -> Q(x))"}
	  - name: missing dot
	    input: "forall x P(x)"
	    expect: {ok: false, error: "expected '.'", index: 2}`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		colour := configure(cmd)
		quiet := GetFlag(cmd, "quiet")
		//
		var suites []*suite.Suite
		// Load all suites up front
		for _, filename := range args {
			s, err := suite.Load(filename)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			suites = append(suites, s)
		}
		//
		if !runSuites(os.Stdout, suites, quiet, colour) {
			os.Exit(1)
		}
	},
}

// Run a set of suites, reporting the outcome of each case.  This returns false
// if any case failed.
func runSuites(out io.Writer, suites []*suite.Suite, quiet bool, colour termio.Colouriser) bool {
	var passed, total int
	//
	for _, s := range suites {
		log.Debugf("running suite \"%s\" (%d cases)", s.Name, len(s.Cases))
		//
		stats := util.NewPerfStats()
		outcomes := s.Run()
		stats.Log("ran suite \"%s\"", s.Name)
		//
		for _, outcome := range outcomes {
			total++
			//
			if outcome.Passed() {
				passed++
				//
				if !quiet {
					fmt.Fprintf(out, "%s %s/%s\n", colour.Bold(termio.TERM_GREEN, "PASS"), s.Name, outcome.Case.Name)
				}
			} else {
				fmt.Fprintf(out, "%s %s/%s: %s\n", colour.Bold(termio.TERM_RED, "FAIL"), s.Name, outcome.Case.Name,
					outcome.Reason)
			}
		}
	}
	//
	fmt.Fprintf(out, "%d/%d cases passed\n", passed, total)
	//
	return passed == total
}

func init() {
	rootCmd.AddCommand(testCmd)
	testCmd.Flags().BoolP("quiet", "q", false, "only report failing cases")
}
