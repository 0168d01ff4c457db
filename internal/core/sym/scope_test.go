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

package sym_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"svlang.org/sv/internal/core/sym"
)

func member(kind sym.Kind, name string) *sym.Symbol {
	return &sym.Symbol{Kind: kind, Name: name}
}

func TestScopeAddAndLookupLocal(t *testing.T) {
	s := sym.NewScope(sym.KindInstance, "top")
	a := member(sym.KindVariable, "a")
	b := member(sym.KindVariable, "b")
	s.AddMember(a)
	s.AddMember(b)

	qt.Assert(t, qt.Equals(len(s.Members()), 2))
	qt.Assert(t, qt.Equals(a.Parent, s))

	got, ok := s.LookupLocalAny("a")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, a))

	_, ok = s.LookupLocalAny("missing")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestScopeLookupLocalRespectsPosition(t *testing.T) {
	s := sym.NewScope(sym.KindInstance, "top")
	a := member(sym.KindVariable, "x")
	s.AddMember(a)
	b := member(sym.KindVariable, "x")
	s.AddMember(b)

	// Before any declaration, nothing is visible (forward-reference
	// prevention, spec §4.2 step 1).
	_, ok := s.LookupLocal("x", 0)
	qt.Assert(t, qt.IsFalse(ok))

	// At index 1, only the first declaration of x is visible.
	got, ok := s.LookupLocal("x", 1)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, a))

	// At index 2 (after both), the later declaration shadows.
	got, ok = s.LookupLocal("x", 2)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, b))
}

func TestScopeIndexOf(t *testing.T) {
	s := sym.NewScope(sym.KindInstance, "top")
	a := member(sym.KindVariable, "a")
	b := member(sym.KindVariable, "b")
	s.AddMember(a)
	s.AddMember(b)

	qt.Assert(t, qt.Equals(s.IndexOf(a), 0))
	qt.Assert(t, qt.Equals(s.IndexOf(b), 1))
	qt.Assert(t, qt.Equals(s.IndexOf(member(sym.KindVariable, "c")), -1))
}

func TestSymbolParentChainRoot(t *testing.T) {
	root := sym.NewScope(sym.KindRoot, "$root")
	inst := sym.NewScope(sym.KindInstance, "top")
	root.AddMember(&inst.Symbol)
	v := member(sym.KindVariable, "x")
	inst.AddMember(v)

	qt.Assert(t, qt.Equals(v.ParentChainRoot(), root))
}

func TestSymbolParentChainRootPanicsOnBrokenChain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a symbol with no root-terminated parent chain")
		}
	}()
	orphan := &sym.Symbol{Kind: sym.KindVariable, Name: "x"}
	orphan.ParentChainRoot()
}
