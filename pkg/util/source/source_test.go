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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-fol/pkg/util/assert"
)

func Test_Span_01(t *testing.T) {
	span := NewSpan(2, 5)
	//
	assert.Equal(t, 2, span.Start())
	assert.Equal(t, 5, span.End())
	assert.Equal(t, 3, span.Length())
	assert.Panics(t, func() { NewSpan(5, 2) })
}

func Test_Span_02(t *testing.T) {
	lhs, rhs := NewSpan(2, 5), NewSpan(7, 9)
	//
	assert.Equal(t, NewSpan(2, 9), lhs.Join(rhs))
	assert.Equal(t, NewSpan(2, 9), rhs.Join(lhs))
	assert.Equal(t, NewSpan(2, 5), lhs.Join(NewSpan(3, 4)))
}

func Test_Line_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("P(x)\n~Q(y)\n\nR(z)"))
	// First line
	line := srcfile.FindFirstEnclosingLine(NewSpan(2, 3))
	assert.Equal(t, "P(x)", line.String())
	assert.Equal(t, 1, line.Number())
	assert.Equal(t, 0, line.Start())
	// Second line
	line = srcfile.FindFirstEnclosingLine(NewSpan(6, 8))
	assert.Equal(t, "~Q(y)", line.String())
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, 5, line.Start())
	assert.Equal(t, 5, line.Length())
	// Empty line
	line = srcfile.FindFirstEnclosingLine(NewSpan(11, 11))
	assert.Equal(t, "", line.String())
	assert.Equal(t, 3, line.Number())
}

func Test_Line_02(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("P(x)\n(Q(y) &"))
	// End of file is reported on the last line
	line := srcfile.FindFirstEnclosingLine(NewSpan(12, 12))
	assert.Equal(t, "(Q(y) &", line.String())
	assert.Equal(t, 2, line.Number())
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("forall x P(x)"))
	err := srcfile.SyntaxError(NewSpan(9, 10), "expected '.'")
	//
	assert.Equal(t, "P", srcfile.Text(err.Span()))
	assert.Equal(t, "expected '.'", err.Message())
	assert.Equal(t, "test:1:10: expected '.'", err.Error())
	assert.Equal(t, "test", err.SourceFile().Filename())
	assert.Equal(t, 1, err.FirstEnclosingLine().Number())
}

func Test_SourceMap_01(t *testing.T) {
	type node struct{ name string }
	//
	var (
		srcfile = NewSourceFile("test", []byte("P(x) & Q(y)"))
		srcmap  = NewSourceMap[*node](srcfile)
		p       = &node{"P"}
		q       = &node{"Q"}
	)
	//
	srcmap.Put(p, NewSpan(0, 4))
	//
	assert.True(t, srcmap.Has(p))
	assert.False(t, srcmap.Has(q))
	assert.Equal(t, 1, srcmap.Size())
	assert.Equal(t, NewSpan(0, 4), srcmap.Get(p))
	assert.Panics(t, func() { srcmap.Put(p, NewSpan(7, 11)) })
	assert.Panics(t, func() { srcmap.Get(q) })
	//
	err := srcmap.SyntaxError(p, "unknown")
	assert.Equal(t, "P(x)", srcfile.Text(err.Span()))
}

func Test_ReadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "formula.txt")
	assert.NoError(t, os.WriteFile(filename, []byte("forall x. P(x)"), 0600))
	//
	srcfile, err := ReadFile(filename)
	assert.NoError(t, err)
	assert.Equal(t, filename, srcfile.Filename())
	assert.Equal(t, "forall x. P(x)", string(srcfile.Contents()))
	//
	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, err != nil)
}
