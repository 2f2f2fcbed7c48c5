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
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at link time by release builds.
var Version string

var rootCmd = &cobra.Command{
	Use:   "fol",
	Short: "A parser for first-order logic formulas.",
	Long: `A parser (and general toolbox) for formulas of first-order logic,
	such as "forall x. (P(x) -> exists y. Q(x, y))".`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Printf("fol %s\n", version())
			return
		}
		//
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

// Determine the version of this executable, falling back on the module version
// recorded by "go install".
func version() string {
	if Version != "" {
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	//
	return "(unknown version)"
}

// Execute runs whichever command is named on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "print the version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debugging information (e.g. tokens and timings)")
	rootCmd.PersistentFlags().Bool("colour", true, "highlight errors using ANSI escapes (when output is a terminal)")
}
