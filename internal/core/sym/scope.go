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

package sym

// DeferredMemberIndex addresses a scope's side-band DeferredMemberData,
// stored on the Compilation rather than the scope itself (spec §4.2,
// §9 "deferred member side-band"). NoDeferredIndex (-1) is the reserved
// "not yet assigned" sentinel.
type DeferredMemberIndex int

// NoDeferredIndex is the sentinel meaning a scope has no deferred data
// yet.
const NoDeferredIndex DeferredMemberIndex = -1

// ImportDataIndex addresses a scope's side-band wildcard-import list.
type ImportDataIndex int

// NoImportIndex is the sentinel meaning a scope has recorded no wildcard
// imports yet.
const NoImportIndex ImportDataIndex = -1

// DeferredSyntax is an opaque placeholder for a syntax construct that
// cannot be resolved until sibling members are known: port lists,
// generate blocks, wildcard imports, parameter overrides (spec §4.2).
// The compile-time binder that knows how to turn a DeferredSyntax into
// real member Symbols is supplied by the caller of Materialize, keeping
// this package free of a dependency on the (out-of-scope) statement and
// expression binders.
type DeferredSyntax struct {
	// Node is the binder-specific syntax node; opaque to this package.
	Node any
}

// DeferredMemberData is the side-band record a scope's DeferredMemberIndex
// addresses: the deferred syntax accumulated so far, in declaration
// order, and whether it has already been consumed.
type DeferredMemberData struct {
	Pending    []DeferredSyntax
	Materialized bool
}

// WildcardImport represents a single `pkg::*` directive.
type WildcardImport struct {
	// PackageName is the imported package's name.
	PackageName string
	// Symbol is the KindWildcardImport symbol created for this import
	// directive (used as a lookup anchor and for position reporting).
	Symbol *Symbol
}

// ImportData is the side-band record an ImportDataIndex addresses: the
// wildcard imports accumulated so far, in declaration order.
type ImportData struct {
	Imports []*WildcardImport
}

// Scope is a symbol that contains other symbols (spec §3). It maintains
// an ordered member list (creation order is observable), a name map from
// unqualified name to member, and opaque handles into the Compilation's
// deferred-member and import side tables.
type Scope struct {
	Symbol

	members []*Symbol
	nameMap map[string]*Symbol

	deferredIndex DeferredMemberIndex
	importIndex   ImportDataIndex
}

// NewScope returns a Scope with empty member lists and unassigned
// side-table handles. Callers embed this in a larger Symbol.Payload or
// allocate it directly from the arena; Scope itself performs no
// allocation.
func NewScope(kind Kind, name string) *Scope {
	s := &Scope{}
	Init(s, kind, name)
	return s
}

// Init initializes a zero-valued Scope in place, for callers (notably
// the Compilation's arena) that allocate the storage themselves and
// only need this package to set up the invariant fields.
func Init(s *Scope, kind Kind, name string) {
	s.Kind = kind
	s.Name = name
	s.nameMap = map[string]*Symbol{}
	s.deferredIndex = NoDeferredIndex
	s.importIndex = NoImportIndex
}

// Members returns the scope's members in creation order. Callers must not
// mutate the returned slice.
func (s *Scope) Members() []*Symbol { return s.members }

// DeferredIndex returns the scope's deferred-member handle, which may be
// NoDeferredIndex if no deferred data has been requested yet.
func (s *Scope) DeferredIndex() DeferredMemberIndex { return s.deferredIndex }

// SetDeferredIndex assigns the scope's deferred-member handle. Called
// exactly once by the Compilation the first time deferred data is
// requested for this scope.
func (s *Scope) SetDeferredIndex(idx DeferredMemberIndex) { s.deferredIndex = idx }

// ImportIndex returns the scope's wildcard-import handle, which may be
// NoImportIndex if no import has been tracked yet.
func (s *Scope) ImportIndex() ImportDataIndex { return s.importIndex }

// SetImportIndex assigns the scope's wildcard-import handle.
func (s *Scope) SetImportIndex(idx ImportDataIndex) { s.importIndex = idx }

// AddMember appends sym to the member list and, if sym has a non-empty
// name, records it in the name map. A later member with the same name
// shadows an earlier one in the name map (spec §4.2 shadowing rule: an
// inner/later declaration wins for ordinary lookup), but both remain in
// the ordered member list since creation order must stay observable.
func (s *Scope) AddMember(sym *Symbol) {
	sym.Parent = s
	s.members = append(s.members, sym)
	if sym.Name != "" {
		s.nameMap[sym.Name] = sym
	}
}

// LookupLocal returns the member named name declared before position
// beforeOrAt, i.e. among the members at indices 0..beforeOrAt-1,
// honoring positional visibility (spec §4.2 step 1: ordinary identifiers
// cannot be forward-referenced). A negative or out-of-range beforeOrAt
// makes every member visible. The position is a declaration index
// within s, used as a proxy for source position within the scope.
func (s *Scope) LookupLocal(name string, beforeOrAt int) (*Symbol, bool) {
	// Walk backward from beforeOrAt so that a later shadowing
	// declaration within visibility range wins, matching nameMap's
	// last-write-wins semantics while still respecting positional
	// visibility.
	if beforeOrAt < 0 || beforeOrAt > len(s.members) {
		beforeOrAt = len(s.members)
	}
	for i := beforeOrAt - 1; i >= 0; i-- {
		if s.members[i].Name == name {
			return s.members[i], true
		}
	}
	return nil, false
}

// LookupLocalAny returns the member named name regardless of position,
// used by scoped/hierarchical lookup which bypasses positional
// visibility entirely (spec §4.2).
func (s *Scope) LookupLocalAny(name string) (*Symbol, bool) {
	m, ok := s.nameMap[name]
	return m, ok
}

// IndexOf returns the declaration index of sym within s, or -1 if sym is
// not a direct member. Used to compute the "position within scope"
// argument to Lookup.
func (s *Scope) IndexOf(sym *Symbol) int {
	for i, m := range s.members {
		if m == sym {
			return i
		}
	}
	return -1
}
