// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"svlang.org/sv/ast"
)

func TestParseNameRoundTrip(t *testing.T) {
	cases := []string{
		"x",
		"a.b.c",
		"pkg::x",
		"pkg::a::b",
		"$unit::x",
		"$root.x",
		"local::x",
	}
	for _, s := range cases {
		n, err := ast.ParseName(s)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(n.String(), s))
	}
}

func TestParseNameRejectsEmpty(t *testing.T) {
	_, err := ast.ParseName("")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseNameRejectsWhitespace(t *testing.T) {
	_, err := ast.ParseName("a b")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseNameKinds(t *testing.T) {
	n, err := ast.ParseName("x")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n.Kind(), ast.SyntaxKindIdentifierName))

	n, err = ast.ParseName("a.b")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n.Kind(), ast.SyntaxKindHierarchicalName))

	n, err = ast.ParseName("pkg::x")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n.Kind(), ast.SyntaxKindScopedName))
}

func TestParseParenExprWithinLimitHasNoDiagnostics(t *testing.T) {
	src := strings.Repeat("(", 3) + "x" + strings.Repeat(")", 3)
	expr, diags := ast.ParseParenExpr(src, ast.ParseConfig{MaxRecursionDepth: 10})
	qt.Assert(t, qt.HasLen(diags, 0))
	qt.Assert(t, qt.IsNotNil(expr))
	qt.Assert(t, qt.Equals(expr.Kind(), ast.SyntaxKindParenthesizedExpression))
}

func TestParseParenExprTooDeepEmitsOneDiagnosticAndRecovers(t *testing.T) {
	src := strings.Repeat("(", 20) + "x" + strings.Repeat(")", 20)
	expr, diags := ast.ParseParenExpr(src, ast.ParseConfig{MaxRecursionDepth: 5})
	qt.Assert(t, qt.HasLen(diags, 1))
	qt.Assert(t, qt.Equals(diags[0].Code(), ast.CodeTooDeeplyNested))
	qt.Assert(t, qt.IsNotNil(expr)) // recovery always yields a best-effort tree
}

func TestParseParenExprDefaultMaxDepth(t *testing.T) {
	src := strings.Repeat("(", ast.DefaultMaxRecursionDepth+1) + "x" + strings.Repeat(")", ast.DefaultMaxRecursionDepth+1)
	_, diags := ast.ParseParenExpr(src, ast.ParseConfig{})
	qt.Assert(t, qt.HasLen(diags, 1))
}

func TestIsValidIdent(t *testing.T) {
	qt.Assert(t, qt.IsTrue(ast.IsValidIdent("_foo$1")))
	qt.Assert(t, qt.IsFalse(ast.IsValidIdent("")))
	qt.Assert(t, qt.IsFalse(ast.IsValidIdent("1foo")))
	qt.Assert(t, qt.IsFalse(ast.IsValidIdent("foo bar")))
}
