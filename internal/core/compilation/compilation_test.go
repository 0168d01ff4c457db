// Copyright 2020 CUE Authors
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

package compilation_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"svlang.org/sv/ast"
	"svlang.org/sv/internal/core/compilation"
	"svlang.org/sv/internal/core/defs"
	"svlang.org/sv/internal/core/sym"
	"svlang.org/sv/token"
)

type fakeUnit struct{ loc token.Pos }

func (f fakeUnit) Kind() ast.SyntaxKind { return ast.SyntaxKindUnknown }
func (f fakeUnit) Pos() token.Pos       { return f.loc }

func TestNewCompilationIsOpenAndNotFinalized(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	qt.Assert(t, qt.IsFalse(c.IsFinalized()))
}

func TestGetRootOnEmptyCompilation(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	root := c.GetRoot()
	qt.Assert(t, qt.IsNotNil(root))
	qt.Assert(t, qt.Equals(root.Kind, sym.KindRoot))
	qt.Assert(t, qt.IsTrue(c.IsFinalized()))
}

func TestGetRootIsIdempotent(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	first := c.GetRoot()
	second := c.GetRoot()
	qt.Assert(t, qt.Equals(first, second))
}

func TestAddSyntaxTreeRegistersCompilationUnit(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	unit := c.AddSyntaxTree(&compilation.SyntaxTree{Unit: fakeUnit{loc: token.NoPos}})
	qt.Assert(t, qt.IsNotNil(unit))
	qt.Assert(t, qt.HasLen(c.CompilationUnits(), 1))

	root := c.GetRoot()
	names := map[string]bool{}
	for _, m := range root.Members() {
		names[m.Name] = true
	}
	_ = names // compilation units are unnamed; presence is what matters
	qt.Assert(t, qt.HasLen(root.Members(), 1))
}

func TestAddSyntaxTreeAfterFinalizePanics(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	c.GetRoot()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding a syntax tree to a finalized compilation")
		}
	}()
	c.AddSyntaxTree(&compilation.SyntaxTree{Unit: fakeUnit{loc: token.NoPos}})
}

func TestTopLevelDefinitionInstantiatedAtRoot(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	unit := c.AddSyntaxTree(&compilation.SyntaxTree{Unit: fakeUnit{loc: token.NoPos}})

	def := &defs.Definition{Symbol: sym.NewScope(sym.KindDefinition, "counter")}
	c.AddDefinition(def, unit)

	root := c.GetRoot()
	found := false
	for _, m := range root.Members() {
		if m.Name == "counter" {
			found = true
		}
	}
	qt.Assert(t, qt.IsTrue(found))
	qt.Assert(t, qt.IsTrue(def.Instantiated))
}

func TestCreateScriptScopeAfterFinalizeExcludedFromTopLevel(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	c.GetRoot()

	before := len(c.CompilationUnits())
	scope := c.CreateScriptScope()
	qt.Assert(t, qt.IsNotNil(scope))
	// A post-finalization script scope is tracked in ScriptScopes, but
	// must not be retroactively added to CompilationUnits (finalization
	// already ran).
	qt.Assert(t, qt.Equals(len(c.CompilationUnits()), before))
	qt.Assert(t, qt.HasLen(c.ScriptScopes(), 1))
}

func TestAddPackageDuplicateDiagnostic(t *testing.T) {
	c := compilation.New(ast.ParseConfig{})
	first := &defs.Package{Symbol: sym.NewScope(sym.KindPackage, "util")}
	second := &defs.Package{Symbol: sym.NewScope(sym.KindPackage, "util")}
	c.AddPackage(first)
	c.AddPackage(second)

	qt.Assert(t, qt.Equals(c.Package("util"), first))

	diags := c.SemanticDiagnostics()
	found := false
	for _, d := range diags {
		if d.Code() == defs.DuplicatePackage {
			found = true
		}
	}
	qt.Assert(t, qt.IsTrue(found))
}
