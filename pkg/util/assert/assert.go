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
package assert

import (
	"reflect"
	"strings"
	"testing"
)

// Equal errors if actual is not equal to expected.  Unsigned and signed
// integers are compared by value, so that (for example) a uint returned by a
// scanner can be checked against an untyped constant.
func Equal(t testing.TB, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || sameInteger(expected, actual) {
		return
	}
	//
	fail(t, msg, "expected: %v, actual: %v", expected, actual)
}

// True errors if condition is false.
func True(t testing.TB, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		fail(t, msg, "condition is false")
	}
}

// False errors if condition is true.
func False(t testing.TB, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		fail(t, msg, "condition is true")
	}
}

// NoError errors if err is non-nil.
func NoError(t testing.TB, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		fail(t, msg, "unexpected error: %s", err.Error())
	}
}

// ErrorContains errors if err is nil, or its message does not contain a given
// fragment.
func ErrorContains(t testing.TB, err error, fragment string, msg ...any) {
	t.Helper()
	//
	if err == nil {
		fail(t, msg, "expected error containing %q", fragment)
	} else if !strings.Contains(err.Error(), fragment) {
		fail(t, msg, "expected error containing %q, got %q", fragment, err.Error())
	}
}

// Panics errors if fn returns without panicking.
func Panics(t testing.TB, fn func(), msg ...any) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			fail(t, msg, "expected panic")
		}
	}()
	//
	fn()
}

func fail(t testing.TB, msg []any, format string, args ...any) {
	t.Helper()
	t.Errorf(format, args...)
	//
	if len(msg) != 0 {
		if f, ok := msg[0].(string); ok {
			t.Errorf(f, msg[1:]...)
		}
	}
	//
	t.FailNow()
}

// sameInteger returns whether expected and actual are both integers which
// represent the same value.
func sameInteger(expected, actual any) bool {
	a, aSigned, aOk := integer(expected)
	b, bSigned, bOk := integer(actual)
	//
	if !aOk || !bOk {
		return false
	} else if aSigned == bSigned {
		return a == b
	}
	// Mixed signedness: a negative value never equals an unsigned one.
	if (aSigned && int64(a) < 0) || (bSigned && int64(b) < 0) {
		return false
	}
	//
	return a == b
}

// integer extracts the bits of an integer value, and whether it was signed.
func integer(x any) (uint64, bool, bool) {
	switch x := x.(type) {
	case int:
		return uint64(x), true, true
	case int8:
		return uint64(x), true, true
	case int16:
		return uint64(x), true, true
	case int32:
		return uint64(x), true, true
	case int64:
		return uint64(x), true, true
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	}
	//
	return 0, false, false
}
