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

	"svlang.org/sv/internal/core/stats"
	"svlang.org/sv/internal/core/sym"
)

// fakeHost is a minimal sym.Host for lookup tests: wildcard imports are
// tracked per scope in a plain map, with no deferred-member support.
type fakeHost struct {
	imports map[*sym.Scope][]*sym.WildcardImport
}

func newFakeHost() *fakeHost { return &fakeHost{imports: map[*sym.Scope][]*sym.WildcardImport{}} }

func (h *fakeHost) GetOrAddDeferredData(s *sym.Scope) *sym.DeferredMemberData {
	return &sym.DeferredMemberData{}
}

func (h *fakeHost) TrackImport(s *sym.Scope, imp *sym.WildcardImport) {
	h.imports[s] = append(h.imports[s], imp)
}

func (h *fakeHost) QueryImports(s *sym.Scope) []*sym.WildcardImport {
	return h.imports[s]
}

func TestLookupFindsLocalBeforeParent(t *testing.T) {
	parent := sym.NewScope(sym.KindCompilationUnit, "")
	outer := member(sym.KindVariable, "x")
	parent.AddMember(outer)

	child := sym.NewScope(sym.KindInstance, "top")
	parent.AddMember(&child.Symbol)
	inner := member(sym.KindVariable, "x")
	child.AddMember(inner)

	host := newFakeHost()
	got, res := sym.Lookup(child, "x", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Found))
	qt.Assert(t, qt.Equals(got, inner))
}

func TestLookupTalliesCounts(t *testing.T) {
	parent := sym.NewScope(sym.KindCompilationUnit, "")
	outer := member(sym.KindVariable, "x")
	parent.AddMember(outer)

	child := sym.NewScope(sym.KindInstance, "top")
	parent.AddMember(&child.Symbol)

	host := newFakeHost()
	counts := &stats.Counts{}
	sym.Lookup(child, "x", sym.NoLocation, host, counts)
	sym.Lookup(child, "x", sym.NoLocation, host, counts)
	qt.Assert(t, qt.Equals(counts.Lookups, int64(2)))
}

func TestLookupFallsThroughToParent(t *testing.T) {
	parent := sym.NewScope(sym.KindCompilationUnit, "")
	outer := member(sym.KindVariable, "y")
	parent.AddMember(outer)

	child := sym.NewScope(sym.KindInstance, "top")
	parent.AddMember(&child.Symbol)

	host := newFakeHost()
	got, res := sym.Lookup(child, "y", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Found))
	qt.Assert(t, qt.Equals(got, outer))
}

func TestLookupNotFound(t *testing.T) {
	root := sym.NewScope(sym.KindRoot, "$root")
	host := newFakeHost()
	_, res := sym.Lookup(root, "nope", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.NotFound))
}

func TestLookupWildcardImportSingleResolve(t *testing.T) {
	pkg := sym.NewScope(sym.KindPackage, "p")
	v := member(sym.KindVariable, "z")
	pkg.AddMember(v)

	origin := sym.NewScope(sym.KindInstance, "top")
	host := newFakeHost()
	pkgSym := &sym.Symbol{Kind: sym.KindPackage, Name: "p", Payload: pkg}
	host.TrackImport(origin, &sym.WildcardImport{PackageName: "p", Symbol: pkgSym})

	got, res := sym.Lookup(origin, "z", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Found))
	qt.Assert(t, qt.Equals(got, v))
}

func TestLookupWildcardImportAmbiguous(t *testing.T) {
	pkgA := sym.NewScope(sym.KindPackage, "a")
	va := member(sym.KindVariable, "z")
	pkgA.AddMember(va)

	pkgB := sym.NewScope(sym.KindPackage, "b")
	vb := member(sym.KindVariable, "z")
	pkgB.AddMember(vb)

	origin := sym.NewScope(sym.KindInstance, "top")
	host := newFakeHost()
	host.TrackImport(origin, &sym.WildcardImport{PackageName: "a", Symbol: &sym.Symbol{Payload: pkgA}})
	host.TrackImport(origin, &sym.WildcardImport{PackageName: "b", Symbol: &sym.Symbol{Payload: pkgB}})

	_, res := sym.Lookup(origin, "z", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Ambiguous))
}

func TestLookupWildcardImportSameSymbolNotAmbiguous(t *testing.T) {
	pkg := sym.NewScope(sym.KindPackage, "p")
	v := member(sym.KindVariable, "z")
	pkg.AddMember(v)

	origin := sym.NewScope(sym.KindInstance, "top")
	host := newFakeHost()
	host.TrackImport(origin, &sym.WildcardImport{PackageName: "p", Symbol: &sym.Symbol{Payload: pkg}})
	host.TrackImport(origin, &sym.WildcardImport{PackageName: "p", Symbol: &sym.Symbol{Payload: pkg}})

	got, res := sym.Lookup(origin, "z", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Found))
	qt.Assert(t, qt.Equals(got, v))
}

func TestLookupDirectMemberShadowsWildcardImport(t *testing.T) {
	pkg := sym.NewScope(sym.KindPackage, "p")
	imported := member(sym.KindVariable, "z")
	pkg.AddMember(imported)

	origin := sym.NewScope(sym.KindInstance, "top")
	direct := member(sym.KindVariable, "z")
	origin.AddMember(direct)

	host := newFakeHost()
	host.TrackImport(origin, &sym.WildcardImport{PackageName: "p", Symbol: &sym.Symbol{Payload: pkg}})

	got, res := sym.Lookup(origin, "z", sym.NoLocation, host, nil)
	qt.Assert(t, qt.Equals(res, sym.Found))
	qt.Assert(t, qt.Equals(got, direct))
}

func TestLookupHierarchical(t *testing.T) {
	top := sym.NewScope(sym.KindInstance, "top")
	sub := sym.NewScope(sym.KindInstance, "sub")
	sub.Payload = sub // intermediate segments are reached through a *Scope Payload
	top.AddMember(&sub.Symbol)
	leaf := member(sym.KindVariable, "leaf")
	sub.AddMember(leaf)

	got, ok := sym.LookupHierarchical(top, []string{"sub", "leaf"})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(got, leaf))

	_, ok = sym.LookupHierarchical(top, []string{"missing", "leaf"})
	qt.Assert(t, qt.IsFalse(ok))
}
