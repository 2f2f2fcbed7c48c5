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
package ast

// IsLowerIdentifier checks whether a given name has the shape of a variable,
// namely a lowercase ASCII letter followed by zero or more lowercase ASCII
// letters or digits.
func IsLowerIdentifier(name string) bool {
	return isIdentifier(name, 'a', 'z')
}

// IsUpperIdentifier checks whether a given name has the shape of a constant or
// predicate name, namely an uppercase ASCII letter followed by zero or more
// uppercase ASCII letters or digits.
func IsUpperIdentifier(name string) bool {
	return isIdentifier(name, 'A', 'Z')
}

func isIdentifier(name string, first byte, last byte) bool {
	if len(name) == 0 || name[0] < first || name[0] > last {
		return false
	}
	//
	for i := 1; i < len(name); i++ {
		c := name[i]
		if (c < first || c > last) && (c < '0' || c > '9') {
			return false
		}
	}
	//
	return true
}

func checkLowerIdentifier(name string) {
	if !IsLowerIdentifier(name) {
		panic("invalid variable name \"" + name + "\"")
	}
}

func checkUpperIdentifier(name string) {
	if !IsUpperIdentifier(name) {
		panic("invalid constant name \"" + name + "\"")
	}
}
