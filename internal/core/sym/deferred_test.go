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

// deferredHost is a minimal sym.Host for deferred-materialization tests:
// one DeferredMemberData record per scope, allocated lazily and wired
// back into the scope's handle, like compilation.Compilation does.
type deferredHost struct {
	data map[*sym.Scope]*sym.DeferredMemberData
}

func newDeferredHost() *deferredHost {
	return &deferredHost{data: map[*sym.Scope]*sym.DeferredMemberData{}}
}

func (h *deferredHost) GetOrAddDeferredData(s *sym.Scope) *sym.DeferredMemberData {
	if d, ok := h.data[s]; ok {
		return d
	}
	d := &sym.DeferredMemberData{}
	h.data[s] = d
	s.SetDeferredIndex(sym.DeferredMemberIndex(len(h.data)))
	return d
}

func (h *deferredHost) TrackImport(s *sym.Scope, imp *sym.WildcardImport) {}

func (h *deferredHost) QueryImports(s *sym.Scope) []*sym.WildcardImport { return nil }

func TestMaterializeConvertsDeferredSyntaxInOrder(t *testing.T) {
	host := newDeferredHost()
	scope := sym.NewScope(sym.KindInstance, "m")

	scope.AddDeferred(host, sym.DeferredSyntax{Node: "a"})
	scope.AddDeferred(host, sym.DeferredSyntax{Node: "b"})

	var seen []string
	bind := func(s *sym.Scope, pending []sym.DeferredSyntax) []*sym.Symbol {
		out := make([]*sym.Symbol, len(pending))
		for i, p := range pending {
			n := p.Node.(string)
			seen = append(seen, n)
			out[i] = &sym.Symbol{Kind: sym.KindVariable, Name: n}
		}
		return out
	}

	scope.Materialize(host, bind)

	qt.Assert(t, qt.DeepEquals(seen, []string{"a", "b"}))
	_, res := sym.Lookup(scope, "a", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Found))
	_, res = sym.Lookup(scope, "b", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Found))
}

func TestMaterializeIsANoOpTheSecondTime(t *testing.T) {
	host := newDeferredHost()
	scope := sym.NewScope(sym.KindInstance, "m")
	scope.AddDeferred(host, sym.DeferredSyntax{Node: "a"})

	calls := 0
	bind := func(s *sym.Scope, pending []sym.DeferredSyntax) []*sym.Symbol {
		calls++
		return nil
	}

	scope.Materialize(host, bind)
	scope.Materialize(host, bind)

	qt.Assert(t, qt.Equals(calls, 1))
}

func TestIsMaterializedTrueForScopeWithNoDeferredData(t *testing.T) {
	scope := sym.NewScope(sym.KindInstance, "m")
	host := newDeferredHost()
	qt.Assert(t, qt.IsTrue(scope.IsMaterialized(host)))
}

func TestIsMaterializedFalseUntilMaterializeRuns(t *testing.T) {
	host := newDeferredHost()
	scope := sym.NewScope(sym.KindInstance, "m")
	scope.AddDeferred(host, sym.DeferredSyntax{Node: "a"})

	qt.Assert(t, qt.IsFalse(scope.IsMaterialized(host)))
	scope.Materialize(host, func(s *sym.Scope, pending []sym.DeferredSyntax) []*sym.Symbol { return nil })
	qt.Assert(t, qt.IsTrue(scope.IsMaterialized(host)))
}

func TestAddDeferredAfterMaterializePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling AddDeferred on an already-materialized scope")
		}
	}()

	host := newDeferredHost()
	scope := sym.NewScope(sym.KindInstance, "m")
	scope.AddDeferred(host, sym.DeferredSyntax{Node: "a"})
	scope.Materialize(host, func(s *sym.Scope, pending []sym.DeferredSyntax) []*sym.Symbol { return nil })

	scope.AddDeferred(host, sym.DeferredSyntax{Node: "b"})
}
